package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/shushruth21/estre/internal/configuration"
)

var ErrReportNotFound = errors.New("inspection report not found")

type CheckStatus string

const (
	StatusPass    CheckStatus = "pass"
	StatusFail    CheckStatus = "fail"
	StatusNA      CheckStatus = "na"
	StatusPending CheckStatus = "pending"
)

type DefectSeverity string

const (
	SeverityCritical DefectSeverity = "critical"
	SeverityMajor    DefectSeverity = "major"
	SeverityMinor    DefectSeverity = "minor"
)

type CheckItem struct {
	ID       string      `json:"id"`
	Label    string      `json:"label"`
	Required bool        `json:"required"`
	Status   CheckStatus `json:"status"`
}

type CheckCategory struct {
	CategoryID string      `json:"category_id"`
	Label      string      `json:"label"`
	Items      []CheckItem `json:"items"`
}

type Defect struct {
	ID          string         `json:"id"`
	CheckItemID string         `json:"check_item_id,omitempty"`
	Severity    DefectSeverity `json:"severity"`
	Description string         `json:"description"`
}

// Scores summarizes one submitted checklist. Score counts only non-N/A
// items; a single pending item keeps the whole report pending.
type Scores struct {
	Total   int     `json:"total"`
	Passed  int     `json:"passed"`
	Failed  int     `json:"failed"`
	NA      int     `json:"na"`
	Pending int     `json:"pending"`
	Score   float64 `json:"score"`
	Status  string  `json:"status"`
}

type ReworkPriority string

const (
	ReworkNone     ReworkPriority = "none"
	ReworkLow      ReworkPriority = "low"
	ReworkMedium   ReworkPriority = "medium"
	ReworkHigh     ReworkPriority = "high"
	ReworkCritical ReworkPriority = "critical"
)

type ReworkDecision struct {
	Required bool           `json:"required"`
	Priority ReworkPriority `json:"priority"`
}

// InspectionReport is the persisted outcome of one quality inspection.
type InspectionReport struct {
	ID            uuid.UUID                          `json:"id" gorm:"type:uuid;primaryKey"`
	JobCardNumber string                             `json:"job_card_number" gorm:"type:text;not null;index"`
	Category      string                             `json:"category" gorm:"type:text"`
	Checklist     datatypes.JSONType[[]CheckCategory] `json:"checklist" gorm:"type:jsonb"`
	Defects       datatypes.JSONType[[]Defect]        `json:"defects" gorm:"type:jsonb"`
	Scores        datatypes.JSONType[Scores]          `json:"scores" gorm:"type:jsonb"`
	Rework        datatypes.JSONType[ReworkDecision]  `json:"rework" gorm:"type:jsonb"`
	Status        string                             `json:"status" gorm:"type:text;index"`
	InspectedBy   string                             `json:"inspected_by" gorm:"type:text"`
	InspectedAt   time.Time                          `json:"inspected_at"`
	CreatedAt     time.Time                          `json:"created_at"`
	UpdatedAt     time.Time                          `json:"updated_at"`
}

func (InspectionReport) TableName() string { return "inspection_reports" }

type SubmitRequest struct {
	JobCardNumber string          `json:"job_card_number"`
	Category      string          `json:"category"`
	Checklist     []CheckCategory `json:"checklist"`
	Defects       []Defect        `json:"defects"`
	InspectedBy   string          `json:"inspected_by"`
}

type Repository interface {
	Create(ctx context.Context, report *InspectionReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*InspectionReport, error)
	ListByJobCard(ctx context.Context, jobCardNumber string) ([]*InspectionReport, error)
}

type Service interface {
	Checklist(category configuration.Category) []CheckCategory
	Submit(ctx context.Context, req SubmitRequest) (*InspectionReport, error)
	Get(ctx context.Context, id uuid.UUID) (*InspectionReport, error)
	ListByJobCard(ctx context.Context, jobCardNumber string) ([]*InspectionReport, error)
}
