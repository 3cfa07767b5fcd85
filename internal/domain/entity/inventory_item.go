package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un ítem del control de stock comercial.
type InventoryItem struct {
	ID          string
	Name        string
	Category    string
	Quantity    decimal.Decimal // nunca negativa después de una mutación
	MinQuantity decimal.Decimal // umbral mínimo antes de considerarse crítico
	UpdatedAt   time.Time
}

// Adjust aplica un incremento o decremento a la cantidad, con clamp en cero:
// ninguna secuencia de ajustes puede dejar Quantity negativa.
func (i *InventoryItem) Adjust(delta decimal.Decimal) {
	q := i.Quantity.Add(delta)
	if q.IsNegative() {
		q = decimal.Zero
	}
	i.Quantity = q
	i.UpdatedAt = time.Now()
}

// IsCritical indica si el ítem está por debajo de su umbral mínimo.
func (i *InventoryItem) IsCritical() bool {
	return i.Quantity.LessThan(i.MinQuantity)
}
