package repository

import "github.com/jcastan/inventario-ventas/internal/domain/entity"

// ProductFilter criterios del listado de productos.
// Query busca sobre sku, nombre y descripción; LowStock restringe a stock < min_stock.
type ProductFilter struct {
	Query    string
	LowStock bool
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	// ListLowStock devuelve productos con stock < min_stock, ordenados por stock ascendente.
	ListLowStock() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// SetStock fija el stock absoluto (ajustes).
	SetStock(productID string, stock int) error
	// AddStock suma qty con un UPDATE atómico (stock = stock + qty), sin
	// depender de un stock leído antes (entradas).
	AddStock(productID string, qty int) error
	// DecrementStock descuenta qty de forma condicional y atómica
	// (stock = stock - qty WHERE stock >= qty). Retorna domain.ErrInsufficientStock
	// si el stock disponible no alcanza, sin modificar nada.
	DecrementStock(productID string, qty int) error
	// Delete retorna domain.ErrProtected si el producto está referenciado por ventas.
	Delete(id string) error
}
