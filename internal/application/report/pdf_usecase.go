// Package report genera el reporte comercial descargable del dashboard:
// pipeline de partners por etapa más los ítems críticos del stock.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// StageCount partners agrupados por etapa del pipeline, en orden de progresión.
type StageCount struct {
	Status string
	Count  int
}

// PipelineReport datos ya agregados que consume el generador.
type PipelineReport struct {
	GeneratedFor  string // nombre del usuario dueño del pipeline
	GeneratedAt   time.Time
	StageCounts   []StageCount
	Partners      []*entity.Partner
	CriticalItems []*entity.InventoryItem
}

// PDFGenerator puerto de salida hacia el motor de documentos (DIP).
type PDFGenerator interface {
	GeneratePipelinePDF(ctx context.Context, rep *PipelineReport) ([]byte, error)
}

// PDFUseCase arma el PipelineReport desde los snapshots de los contenedores
// y delega el render al generador.
type PDFUseCase struct {
	generator PDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(generator PDFGenerator) *PDFUseCase {
	return &PDFUseCase{generator: generator}
}

// PipelinePDF genera el PDF del reporte para el usuario indicado.
func (uc *PDFUseCase) PipelinePDF(
	ctx context.Context,
	user *entity.User,
	partners []*entity.Partner,
	critical []*entity.InventoryItem,
) ([]byte, error) {
	rep := &PipelineReport{
		GeneratedFor:  user.Name,
		GeneratedAt:   time.Now(),
		StageCounts:   countStages(partners),
		Partners:      partners,
		CriticalItems: critical,
	}
	pdf, err := uc.generator.GeneratePipelinePDF(ctx, rep)
	if err != nil {
		return nil, fmt.Errorf("reporte pipeline: %w", err)
	}
	return pdf, nil
}

// countStages agrupa por etapa manteniendo el orden de progresión del pipeline.
func countStages(partners []*entity.Partner) []StageCount {
	order := []string{
		entity.StatusProspect,
		entity.StatusContacted,
		entity.StatusNegotiation,
		entity.StatusPartner,
		entity.StatusChurn,
	}
	counts := make(map[string]int, len(order))
	for _, p := range partners {
		counts[entity.NormalizePipelineStatus(p.Status)]++
	}
	out := make([]StageCount, 0, len(order))
	for _, status := range order {
		out = append(out, StageCount{Status: status, Count: counts[status]})
	}
	return out
}
