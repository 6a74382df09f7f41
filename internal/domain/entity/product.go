package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock es la cantidad disponible (entero, nunca negativo por ventas);
// MinStock es el umbral de reposición para el listado de stock bajo.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta (precisión de moneda)
	Stock       int
	MinStock    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NeedsRestock indica si el producto está por debajo de su umbral de reposición.
func (p *Product) NeedsRestock() bool {
	return p.Stock < p.MinStock
}
