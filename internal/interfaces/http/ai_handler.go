package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gtmpro-api/internal/application/dto"
	"github.com/jhoicas/gtmpro-api/internal/application/usecase"
	"github.com/jhoicas/gtmpro-api/pkg/validator"
)

// AIHandler expone el asistente de reportes.
type AIHandler struct {
	uc       *usecase.AIUseCase
	validate *validator.Validator
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase, validate *validator.Validator) *AIHandler {
	return &AIHandler{uc: uc, validate: validate}
}

// GenerateReport godoc
// @Summary      Gerar relatório com IA
// @Description  Encaminha o prompt ao provedor selecionado (anthropic por
// @Description  padrão). Credencial inválida e cota esgotada voltam como
// @Description  flags no corpo, não como erro HTTP.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AIReportRequest  true  "prompt, style, provider"
// @Success      200   {object}  dto.AIReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/ai/report [post]
func (h *AIHandler) GenerateReport(c *fiber.Ctx) error {
	var in dto.AIReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	out, err := h.uc.GenerateReport(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_PROVIDER", Message: err.Error()})
	}
	return c.JSON(out)
}
