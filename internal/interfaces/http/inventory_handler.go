package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gtmpro-api/internal/application/dto"
	"github.com/jhoicas/gtmpro-api/internal/application/store"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/pkg/validator"
)

// InventoryHandler CRUD y ajustes del stock comercial.
type InventoryHandler struct {
	manager  *store.Manager
	validate *validator.Validator
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(manager *store.Manager, validate *validator.Validator) *InventoryHandler {
	return &InventoryHandler{manager: manager, validate: validate}
}

// List godoc
// @Summary      Listar itens do estoque
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.InventoryItemResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	return c.JSON(dto.NewInventoryList(app.Inventory.Snapshot()))
}

// Save godoc
// @Summary      Criar ou atualizar item do estoque
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.InventoryItemRequest  true  "item"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Save(c *fiber.Ctx) error {
	var in dto.InventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	saved := app.SaveInventoryItem(c.Context(), &entity.InventoryItem{
		ID:          in.ID,
		Name:        in.Name,
		Category:    in.Category,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
	})
	status := fiber.StatusOK
	if in.ID == "" {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.NewInventoryItemResponse(saved))
}

// Adjust godoc
// @Summary      Ajustar quantidade de um item
// @Description  Delta positivo ou negativo; a quantidade resultante nunca
// @Description  fica abaixo de zero.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "id do item"
// @Param        body  body  dto.AdjustStockRequest  true  "delta"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	item := app.AdjustStock(c.Context(), c.Params("id"), in.Delta)
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item não encontrado"})
	}
	return c.JSON(dto.NewInventoryItemResponse(item))
}

// Delete godoc
// @Summary      Excluir item do estoque
// @Tags         inventory
// @Security     BearerAuth
// @Param        id   path  string  true  "id do item"
// @Success      204
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	app.RemoveInventoryItem(c.Context(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
