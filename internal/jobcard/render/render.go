// Package render turns job card payloads into printable PDF documents for
// the factory floor.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/shushruth21/estre/internal/jobcard/domain"
)

type Renderer interface {
	RenderJobCard(ctx context.Context, data domain.GeneratedData) (io.Reader, error)
}

type pdfRenderer struct{}

func New() Renderer {
	return &pdfRenderer{}
}

func (r *pdfRenderer) RenderJobCard(ctx context.Context, data domain.GeneratedData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Job Card "+data.JobCardNumber, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)
	m.AddRow(8,
		text.NewCol(6, "Category: "+data.Category),
		text.NewCol(6, fmt.Sprintf("Total fabric: %.2f m", data.TotalFabricMeters), props.Text{Align: align.Right}),
	)

	m.AddRow(8, text.NewCol(12, "Sections", props.Text{Style: fontstyle.Bold}))
	m.AddRow(6,
		text.NewCol(3, "Position", props.Text{Style: fontstyle.Bold}),
		text.NewCol(4, "Seater", props.Text{Style: fontstyle.Bold}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold}),
		text.NewCol(3, "Fabric (m)", props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)
	for _, section := range data.Sections {
		m.AddRow(6,
			text.NewCol(3, section.Position),
			text.NewCol(4, section.SeaterType),
			text.NewCol(2, fmt.Sprintf("%d", section.Quantity)),
			text.NewCol(3, fmt.Sprintf("%.2f", section.FabricMeters), props.Text{Align: align.Right}),
		)
	}

	if data.Console.Required {
		m.AddRow(8,
			text.NewCol(6, "Console: "+data.Console.Size),
			text.NewCol(3, fmt.Sprintf("Qty %d", data.Console.Quantity)),
			text.NewCol(3, fmt.Sprintf("%.2f m", data.Console.FabricMeters), props.Text{Align: align.Right}),
		)
	}
	if data.DummySeats.Quantity > 0 {
		m.AddRow(8,
			text.NewCol(6, "Dummy seats"),
			text.NewCol(3, fmt.Sprintf("Qty %d", data.DummySeats.Quantity)),
			text.NewCol(3, fmt.Sprintf("%.2f m", data.DummySeats.FabricMeters), props.Text{Align: align.Right}),
		)
	}

	m.AddRow(8, text.NewCol(12, "Fabric Plan", props.Text{Style: fontstyle.Bold}))
	m.AddRow(6, text.NewCol(12, "Mode: "+data.FabricPlan.ColourMode))
	if data.FabricPlan.StructureCode != "" {
		m.AddRow(6, text.NewCol(12, "Structure fabric: "+data.FabricPlan.StructureCode))
	}
	if data.FabricPlan.StructureMeters > 0 {
		m.AddRow(6,
			text.NewCol(6, fmt.Sprintf("Structure: %.2f m", data.FabricPlan.StructureMeters)),
			text.NewCol(6, fmt.Sprintf("Armrest: %.2f m", data.FabricPlan.ArmrestMeters), props.Text{Align: align.Right}),
		)
	}

	m.AddRow(8, text.NewCol(12, "Pricing", props.Text{Style: fontstyle.Bold}))
	m.AddRow(6,
		col.New(6).Add(
			text.New(fmt.Sprintf("Subtotal: %.2f", data.Pricing.Subtotal)),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("Total: %.2f", data.Pricing.Total), props.Text{Style: fontstyle.Bold, Align: align.Right}),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate job card pdf: %w", err)
	}
	return bytes.NewReader(doc.GetBytes()), nil
}
