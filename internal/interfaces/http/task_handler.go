package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gtmpro-api/internal/application/dto"
	"github.com/jhoicas/gtmpro-api/internal/application/store"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/pkg/validator"
)

// TaskHandler CRUD del tablero kanban.
type TaskHandler struct {
	manager  *store.Manager
	validate *validator.Validator
}

// NewTaskHandler construye el handler.
func NewTaskHandler(manager *store.Manager, validate *validator.Validator) *TaskHandler {
	return &TaskHandler{manager: manager, validate: validate}
}

// List godoc
// @Summary      Listar tarefas
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TaskResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	return c.JSON(dto.NewTaskList(app.Tasks.Snapshot()))
}

// Columns godoc
// @Summary      Colunas fixas do kanban
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.KanbanColumn
// @Router       /api/tasks/columns [get]
func (h *TaskHandler) Columns(c *fiber.Ctx) error {
	return c.JSON(entity.Columns())
}

// Save godoc
// @Summary      Criar ou atualizar tarefa
// @Description  Uma tarefa com due_date mantém exatamente um evento AUTO_TASK
// @Description  no calendário; sem due_date, o evento derivado é removido.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.TaskRequest  true  "tarefa"
// @Success      200   {object}  dto.OpResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Save(c *fiber.Ctx) error {
	var in dto.TaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	var due *time.Time
	if in.DueDate != "" {
		d, err := time.Parse("2006-01-02", in.DueDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "due_date inválido"})
		}
		due = &d
	}

	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	res := app.SaveTask(c.Context(), &entity.Task{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     due,
	})
	return opResultJSON(c, res)
}

// Move godoc
// @Summary      Mover tarefa de coluna
// @Description  Aplica o patch otimista em memória antes de persistir; em
// @Description  falha o patch é revertido e o erro volta para a view.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string               true  "id da tarefa"
// @Param        body  body  dto.MoveTaskRequest  true  "nova coluna"
// @Success      200   {object}  dto.OpResult
// @Router       /api/tasks/{id}/move [post]
func (h *TaskHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	res := app.MoveTask(c.Context(), c.Params("id"), in.Status)
	return opResultJSON(c, res)
}

// Delete godoc
// @Summary      Excluir tarefa
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id da tarefa"
// @Success      200  {object}  dto.OpResult
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	app := h.manager.ForUser(c.Context(), CurrentUser(c))
	res := app.RemoveTask(c.Context(), c.Params("id"))
	return opResultJSON(c, res)
}

// opResultJSON serializa un OpResult con el status HTTP que corresponde:
// entidad inexistente → 404, cualquier otro fallo de escritura → 500.
func opResultJSON(c *fiber.Ctx, res dto.OpResult) error {
	if !res.Success {
		status := fiber.StatusInternalServerError
		if res.Code == dto.OpCodeNotFound {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(res)
	}
	return c.JSON(res)
}
