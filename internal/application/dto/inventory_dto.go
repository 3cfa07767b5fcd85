package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// InventoryItemRequest entrada para crear o actualizar un ítem del stock.
type InventoryItemRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Category    string          `json:"category" validate:"max=100"`
	Quantity    decimal.Decimal `json:"quantity"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
}

// AdjustStockRequest entrada para un ajuste de stock (delta positivo o negativo).
type AdjustStockRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

// InventoryItemResponse salida de un ítem del stock, con el estado crítico derivado.
type InventoryItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    decimal.Decimal `json:"quantity"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
	Critical    bool            `json:"critical"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewInventoryItemResponse mapea la entidad a su DTO de salida.
func NewInventoryItemResponse(i *entity.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Category:    i.Category,
		Quantity:    i.Quantity,
		MinQuantity: i.MinQuantity,
		Critical:    i.IsCritical(),
		UpdatedAt:   i.UpdatedAt,
	}
}

// NewInventoryList mapea una colección de ítems.
func NewInventoryList(list []*entity.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(list))
	for _, i := range list {
		out = append(out, NewInventoryItemResponse(i))
	}
	return out
}
