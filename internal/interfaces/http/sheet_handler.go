package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gtmpro-api/internal/application/dto"
	"github.com/jhoicas/gtmpro-api/internal/application/store"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/pkg/validator"
)

// SheetHandler CRUD de planillas vinculadas.
type SheetHandler struct {
	manager  *store.Manager
	validate *validator.Validator
}

// NewSheetHandler construye el handler.
func NewSheetHandler(manager *store.Manager, validate *validator.Validator) *SheetHandler {
	return &SheetHandler{manager: manager, validate: validate}
}

// List godoc
// @Summary      Listar planilhas vinculadas
// @Tags         sheets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.SheetResponse
// @Router       /api/sheets [get]
func (h *SheetHandler) List(c *fiber.Ctx) error {
	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	return c.JSON(dto.NewSheetList(app.Sheets.Snapshot()))
}

// Save godoc
// @Summary      Vincular ou atualizar planilha
// @Tags         sheets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SheetRequest  true  "planilha"
// @Success      200   {object}  dto.OpResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sheets [post]
func (h *SheetHandler) Save(c *fiber.Ctx) error {
	var in dto.SheetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	res := app.SaveSheet(c.Context(), &entity.LinkedSheet{
		ID:          in.ID,
		Title:       in.Title,
		URL:         in.URL,
		Category:    in.Category,
		Description: in.Description,
	})
	return opResultJSON(c, res)
}

// Delete godoc
// @Summary      Excluir planilha vinculada
// @Tags         sheets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id da planilha"
// @Success      200  {object}  dto.OpResult
// @Router       /api/sheets/{id} [delete]
func (h *SheetHandler) Delete(c *fiber.Ctx) error {
	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	res := app.RemoveSheet(c.Context(), c.Params("id"))
	return opResultJSON(c, res)
}
