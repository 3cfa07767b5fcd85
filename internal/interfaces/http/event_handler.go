package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gtmpro-api/internal/application/dto"
	"github.com/jhoicas/gtmpro-api/internal/application/store"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/pkg/validator"
)

// EventHandler CRUD del calendario comercial.
type EventHandler struct {
	manager  *store.Manager
	validate *validator.Validator
}

// NewEventHandler construye el handler.
func NewEventHandler(manager *store.Manager, validate *validator.Validator) *EventHandler {
	return &EventHandler{manager: manager, validate: validate}
}

// List godoc
// @Summary      Listar eventos do calendário
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.EventResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	return c.JSON(dto.NewEventList(app.Events.Snapshot()))
}

// Save godoc
// @Summary      Criar ou atualizar evento manual
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.EventRequest  true  "evento"
// @Success      200   {object}  dto.OpResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *EventHandler) Save(c *fiber.Ctx) error {
	var in dto.EventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date inválido"})
	}

	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	res := app.SaveEvent(c.Context(), &entity.CommercialEvent{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Date:        date,
		Time:        in.Time,
		Location:    in.Location,
		Type:        entity.EventManual,
	})
	return opResultJSON(c, res)
}

// Delete godoc
// @Summary      Excluir evento
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id do evento"
// @Success      200  {object}  dto.OpResult
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	res := app.RemoveEvent(c.Context(), c.Params("id"))
	return opResultJSON(c, res)
}
