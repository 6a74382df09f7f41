package inventory

import (
	"context"

	"github.com/jcastan/inventario-ventas/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con repos de
// inventario atados a la tx. Commit si fn retorna nil; Rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
