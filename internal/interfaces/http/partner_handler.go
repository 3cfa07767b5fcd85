package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/gtmpro-api/internal/application/dto"
	"github.com/jhoicas/gtmpro-api/internal/application/store"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/pkg/validator"
)

// PartnerHandler CRUD del pipeline de partners.
type PartnerHandler struct {
	manager  *store.Manager
	validate *validator.Validator
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(manager *store.Manager, validate *validator.Validator) *PartnerHandler {
	return &PartnerHandler{manager: manager, validate: validate}
}

// List godoc
// @Summary      Listar parceiros
// @Tags         partners
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.PartnerResponse
// @Router       /api/partners [get]
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	return c.JSON(dto.NewPartnerList(app.Partners.Snapshot()))
}

// Save godoc
// @Summary      Criar ou atualizar parceiro
// @Tags         partners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PartnerRequest  true  "parceiro"
// @Success      200   {object}  dto.PartnerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/partners [post]
func (h *PartnerHandler) Save(c *fiber.Ctx) error {
	var in dto.PartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	contacts := make([]entity.Contact, 0, len(in.Contacts))
	for _, cIn := range in.Contacts {
		id := cIn.ID
		if id == "" {
			id = uuid.New().String()
		}
		contacts = append(contacts, entity.Contact{
			ID:       id,
			Name:     cIn.Name,
			Role:     cIn.Role,
			WhatsApp: cIn.WhatsApp,
			Email:    cIn.Email,
		})
	}

	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	saved := app.SavePartner(c.Context(), &entity.Partner{
		ID:        in.ID,
		Name:      in.Name,
		TargetIES: in.TargetIES,
		Status:    in.Status,
		Contacts:  contacts,
	})
	status := fiber.StatusOK
	if in.ID == "" {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.NewPartnerResponse(saved))
}

// Delete godoc
// @Summary      Excluir parceiro
// @Tags         partners
// @Security     BearerAuth
// @Param        id   path  string  true  "id do parceiro"
// @Success      204
// @Router       /api/partners/{id} [delete]
func (h *PartnerHandler) Delete(c *fiber.Ctx) error {
	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	app.RemovePartner(c.Context(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
