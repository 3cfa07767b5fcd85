package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// Ninguna secuencia de ajustes puede dejar la cantidad negativa: el
// decremento hace clamp en cero sin importar la magnitud.
func TestInventoryItem_Adjust_NuncaNegativo(t *testing.T) {
	item := &InventoryItem{Quantity: decimal.NewFromInt(5)}

	item.Adjust(decimal.NewFromInt(3))
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(8)))

	item.Adjust(decimal.NewFromInt(-100))
	assert.True(t, item.Quantity.Equal(decimal.Zero), "decremento mayor al stock hace clamp en cero")

	item.Adjust(decimal.NewFromInt(-1))
	assert.True(t, item.Quantity.Equal(decimal.Zero), "ajustar desde cero sigue en cero")

	item.Adjust(decimal.NewFromInt(2))
	item.Adjust(decimal.NewFromInt(-1))
	item.Adjust(decimal.NewFromInt(-5))
	assert.False(t, item.Quantity.IsNegative())
}

func TestInventoryItem_IsCritical(t *testing.T) {
	item := &InventoryItem{
		Quantity:    decimal.NewFromInt(4),
		MinQuantity: decimal.NewFromInt(5),
	}
	assert.True(t, item.IsCritical(), "quantity < minQuantity es crítico")

	item.Quantity = decimal.NewFromInt(5)
	assert.False(t, item.IsCritical(), "igual al umbral no es crítico")
}
