package repository

import "github.com/jcastan/inventario-ventas/internal/domain/entity"

// StockMovementRepository define el puerto para el libro de movimientos.
// Los movimientos solo se crean; nunca se editan ni se borran.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByProduct devuelve los últimos movimientos del producto, más recientes primero.
	ListByProduct(productID string, limit int) ([]*entity.StockMovement, error)
}
