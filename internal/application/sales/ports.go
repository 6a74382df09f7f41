package sales

import (
	"context"

	"github.com/jcastan/inventario-ventas/internal/domain/entity"
	"github.com/jcastan/inventario-ventas/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción que incluye los
// repos de ventas e inventario atados a la tx. Una venta escribe cabecera,
// ítems, descuentos de stock y movimientos: todo confirma o nada confirma.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// SalePDFGenerator renderiza el detalle de una venta como documento PDF.
type SalePDFGenerator interface {
	GenerateSalePDF(
		ctx context.Context,
		sale *entity.Sale,
		customer *entity.Customer,
		items []SaleItemForPDF,
	) ([]byte, error)
}

// SaleItemForPDF línea de venta enriquecida con el nombre del producto.
type SaleItemForPDF struct {
	entity.SaleItem
	ProductName string
}
