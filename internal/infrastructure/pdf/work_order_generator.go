// Package pdf renders a printable work order for a logged sale.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company + division   │  Work order # + date        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUSTOMER: name, phone, email, full address                 │
//	│  EQUIPMENT: type, tonnage, notes                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALE: amount, financing, down payment, monthly payment     │
//	│  INSTALLATION: date + notes                                 │
//	│  FOOTER: rep, submission date, sale ID                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jarad-ux/eccocontrol-center/internal/application/usecase"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
)

var _ usecase.WorkOrderGenerator = (*WorkOrderGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 11, Green: 83, Blue: 148}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// WorkOrderGenerator renders work orders with Maroto v2.
type WorkOrderGenerator struct {
	companyName string
}

func NewWorkOrderGenerator(companyName string) *WorkOrderGenerator {
	if companyName == "" {
		companyName = "Ecco Control Center"
	}
	return &WorkOrderGenerator{companyName: companyName}
}

// GenerateWorkOrder renders the sale as a PDF and returns its bytes.
func (g *WorkOrderGenerator) GenerateWorkOrder(_ context.Context, s *entity.Submission) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Work Order "+s.ID, true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(equipmentRow(s))
	m.AddRows(saleRow(s))
	m.AddRows(installationRow(s))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(s))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate work order: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *WorkOrderGenerator) headerRow(s *entity.Submission) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Division: "+s.Division, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("WORK ORDER", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(s.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+s.SubmittedAt.Format("01/02/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func customerRow(s *entity.Submission) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("CUSTOMER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(s.CustomerName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Phone: %s   |   Email: %s",
				s.CustomerPhone, nonEmpty(s.CustomerEmail, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New(s.FullAddress(), props.Text{Size: 8, Top: 17, Color: colorGray}),
		),
	)
}

func equipmentRow(s *entity.Submission) core.Row {
	tonnage := nonEmpty(s.Tonnage, "—")
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EQUIPMENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Type: %s   |   Tonnage: %s",
				s.EquipmentType, tonnage,
			), props.Text{Size: 9, Top: 7}),
			text.New(nonEmpty(s.EquipmentNotes, ""), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

func saleRow(s *entity.Submission) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("SALE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Amount: $"+s.SaleAmount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 7,
			}),
			text.New("Lead source: "+entity.LeadSourceName(s.LeadSource), props.Text{
				Size: 8, Top: 13, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("FINANCING", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Bank: "+nonEmpty(s.FinancingBank, "—"), props.Text{Size: 9, Top: 7}),
			text.New(fmt.Sprintf("Down: %s   |   Monthly: %s",
				moneyOrDash(s.DownPayment), moneyOrDash(s.MonthlyPayment),
			), props.Text{Size: 8, Top: 13, Color: colorGray}),
		),
	)
}

func installationRow(s *entity.Submission) core.Row {
	date := "To be scheduled"
	if s.InstallationDate != nil {
		date = s.InstallationDate.Format("January 2, 2006")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("INSTALLATION", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(date, props.Text{Style: fontstyle.Bold, Size: 9, Top: 7}),
			text.New(nonEmpty(s.InstallationNotes, ""), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

func footerRow(s *entity.Submission) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Sales rep: "+s.SubmittedByName, props.Text{Size: 8, Top: 2}),
			text.New("Sale ID: "+s.ID, props.Text{Size: 6.5, Top: 7, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Status: "+s.Status, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func moneyOrDash(d decimal.NullDecimal) string {
	if !d.Valid {
		return "—"
	}
	return "$" + d.Decimal.StringFixed(2)
}

// shortID is the human-facing work order number, the first UUID block upper-cased.
func shortID(id string) string {
	if len(id) >= 8 {
		id = id[:8]
	}
	out := make([]byte, len(id))
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return "WO-" + string(out)
}
