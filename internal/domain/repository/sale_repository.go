package repository

import (
	"time"

	"github.com/jcastan/inventario-ventas/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SaleFilter criterios del listado de ventas.
// From es inclusivo; To es un límite superior exclusivo (el caso de uso
// convierte la fecha "hasta" inclusiva al inicio del día siguiente).
type SaleFilter struct {
	From       *time.Time
	To         *time.Time
	CustomerID string
	Limit      int
	Offset     int
}

// SaleRepository define el puerto de persistencia para Sale y sus ítems.
// Las ventas son de solo lectura después de creadas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	// UpdateTotal escribe el total acumulado en la cabecera al cierre de la transacción.
	UpdateTotal(saleID string, total decimal.Decimal) error
	GetByID(id string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
	List(filter SaleFilter) ([]*entity.Sale, error)
}
