// Package pdf implementa el render del reporte comercial del dashboard.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: GTM PRO + usuario  │  Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FUNIL: partners por etapa del pipeline                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Parceiro | IES alvo | Etapa | Contato principal      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTOQUE CRÍTICO: Item | Qtd | Mínimo                        │
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

	"github.com/jhoicas/gtmpro-api/internal/application/report"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

var _ report.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 76, Blue: 129}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePipelinePDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePipelinePDF(_ context.Context, rep *report.PipelineReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Comercial GTM PRO", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("PIPELINE POR ETAPA"))
	m.AddRows(stageRows(rep.StageCounts)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("PARCEIROS"))
	m.AddRows(partnerHeaderRow())
	m.AddRows(partnerRows(rep.Partners)...)

	if len(rep.CriticalItems) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitleRow("ESTOQUE CRÍTICO"))
		m.AddRows(criticalRows(rep.CriticalItems)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(rep *report.PipelineReport) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("GTM PRO", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório comercial de "+rep.GeneratedFor, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Gerado em "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func stageRows(stages []report.StageCount) []core.Row {
	rows := make([]core.Row, 0, len(stages))
	for _, s := range stages {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(stageLabel(s.Status), props.Text{Size: 9})),
			col.New(6).Add(text.New(fmt.Sprintf("%d", s.Count), props.Text{
				Size: 9, Style: fontstyle.Bold, Align: align.Right,
			})),
		))
	}
	return rows
}

func partnerHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}
	return row.New(6).Add(
		col.New(4).Add(text.New("Parceiro", header)),
		col.New(3).Add(text.New("IES alvo", header)),
		col.New(2).Add(text.New("Etapa", header)),
		col.New(3).Add(text.New("Contato principal", header)),
	)
}

func partnerRows(partners []*entity.Partner) []core.Row {
	rows := make([]core.Row, 0, len(partners))
	for _, p := range partners {
		contact := "—"
		if c := p.PrimaryContact(); c != nil {
			contact = c.Name
		}
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8})),
			col.New(3).Add(text.New(nonEmpty(p.TargetIES, "—"), props.Text{Size: 8})),
			col.New(2).Add(text.New(stageLabel(p.Status), props.Text{Size: 8})),
			col.New(3).Add(text.New(contact, props.Text{Size: 8})),
		))
	}
	return rows
}

func criticalRows(items []*entity.InventoryItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, i := range items {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(i.Name, props.Text{Size: 8})),
			col.New(3).Add(text.New("Qtd: "+i.Quantity.String(), props.Text{
				Size: 8, Color: colorAlert, Style: fontstyle.Bold, Align: align.Right,
			})),
			col.New(3).Add(text.New("Mín: "+i.MinQuantity.String(), props.Text{
				Size: 8, Align: align.Right, Color: colorGray,
			})),
		))
	}
	return rows
}

func stageLabel(status string) string {
	switch status {
	case entity.StatusProspect:
		return "Prospecção"
	case entity.StatusContacted:
		return "Contato feito"
	case entity.StatusNegotiation:
		return "Negociação"
	case entity.StatusPartner:
		return "Parceiro"
	case entity.StatusChurn:
		return "Churn"
	default:
		return status
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
