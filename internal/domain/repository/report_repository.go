package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DayTotal total de ventas de un día (clave YYYY-MM-DD).
type DayTotal struct {
	Day   string
	Total decimal.Decimal
}

// ProductTotal total vendido de un producto en el período.
type ProductTotal struct {
	ProductID   string
	ProductName string
	Total       decimal.Decimal
}

// ReportRepository define las consultas de agregación de ventas.
// Las implementaciones son read-only.
type ReportRepository interface {
	// TotalsByDay agrupa el total de ventas por día, ordenado por fecha ascendente.
	TotalsByDay(ctx context.Context, filter SaleFilter) ([]DayTotal, error)
	// TotalsByProduct agrupa la suma de subtotales por producto, ordenado por total descendente.
	TotalsByProduct(ctx context.Context, filter SaleFilter) ([]ProductTotal, error)
}
