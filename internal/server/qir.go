package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shushruth21/estre/internal/configuration"
	qirdomain "github.com/shushruth21/estre/internal/qir/domain"
)

func (s *Server) GetChecklist(c *gin.Context) {
	category := configuration.ParseCategory(strings.TrimSpace(c.Query("category")))

	c.JSON(http.StatusOK, gin.H{"data": s.qirSvc.Checklist(category)})
}

func (s *Server) SubmitInspection(c *gin.Context) {
	var req qirdomain.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	report, err := s.qirSvc.Submit(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (s *Server) GetInspection(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid report id"))
		return
	}

	report, err := s.qirSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (s *Server) ListInspections(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))

	reports, err := s.qirSvc.ListByJobCard(c.Request.Context(), number)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reports})
}
