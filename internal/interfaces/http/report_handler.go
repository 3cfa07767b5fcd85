package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gtmpro-api/internal/application/dto"
	"github.com/jhoicas/gtmpro-api/internal/application/report"
	"github.com/jhoicas/gtmpro-api/internal/application/store"
)

// ReportHandler descarga del reporte comercial en PDF.
type ReportHandler struct {
	manager *store.Manager
	uc      *report.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(manager *store.Manager, uc *report.PDFUseCase) *ReportHandler {
	return &ReportHandler{manager: manager, uc: uc}
}

// PipelinePDF godoc
// @Summary      Baixar relatório do pipeline em PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/pipeline [get]
func (h *ReportHandler) PipelinePDF(c *fiber.Ctx) error {
	user := CurrentUser(c)
	app := h.manager.ForUser(c.Context(), user)

	pdf, err := h.uc.PipelinePDF(c.Context(), user, app.Partners.Snapshot(), app.Inventory.Critical())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-pipeline.pdf"`)
	return c.Send(pdf)
}
