package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcastan/inventario-ventas/internal/domain"
	"github.com/jcastan/inventario-ventas/internal/domain/entity"
	"github.com/jcastan/inventario-ventas/internal/domain/repository"
)

// AdjustIntent declara cómo interpretar la cantidad de un ajuste en la
// frontera del caso de uso, en lugar de inferirlo del punto de entrada:
// SetAbsolute fija el stock en Quantity; ApplyDelta suma Quantity (con signo).
type AdjustIntent int

const (
	SetAbsolute AdjustIntent = iota
	ApplyDelta
)

// MovementInput entrada para registrar un movimiento manual.
// Para Type "ajuste", Intent decide el significado de Quantity; los otros dos
// tipos exigen Quantity > 0.
type MovementInput struct {
	ProductID string
	Type      string // entrada, salida, ajuste
	Quantity  int
	Intent    AdjustIntent
	Reason    string
	Actor     string
}

// AdjustInput entrada para el flujo dedicado de ajuste de stock (valor absoluto).
type AdjustInput struct {
	ProductID string
	Target    int
	Reason    string
	Actor     string
}

// AdjustResult resultado de un ajuste. Changed es false si target == stock
// previo: no se registró movimiento.
type AdjustResult struct {
	Changed bool
	Delta   int
	Stock   int
}

// MovementUseCase registra movimientos de stock (entrada, salida, ajuste) de
// forma transaccional: la fila del movimiento y el nuevo stock del producto se
// confirman juntos o no se confirma ninguno.
type MovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// RegisterMovement registra un movimiento manual sobre un producto.
//   - entrada: suma con un UPDATE atómico (stock = stock + cantidad); siempre
//     procede.
//   - salida:  descuenta con un UPDATE condicional atómico; si la cantidad
//     supera el stock retorna domain.ErrInsufficientStock sin tocar nada.
//   - ajuste + SetAbsolute: la cantidad es el stock objetivo; el movimiento
//     registrado lleva |objetivo − stock previo| como cantidad (convención del
//     libro: registrar el delta) aunque el caller envió un valor absoluto.
//   - ajuste + ApplyDelta: la cantidad es el delta con signo; el resultado no
//     puede quedar negativo.
//
// Un ajuste cuyo objetivo coincide con el stock actual no cambia nada: retorna
// (nil, nil) sin registrar movimiento (el libro solo admite cantidades > 0).
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementAjuste && in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == entity.MovementAjuste && in.Intent == SetAbsolute && in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Date:      now,
		CreatedBy: in.Actor,
	}

	var target int
	if in.Type == entity.MovementAjuste {
		target = in.Quantity
		if in.Intent == ApplyDelta {
			target = product.Stock + in.Quantity
			if target < 0 {
				return nil, domain.ErrInsufficientStock
			}
		}
		if target == product.Stock {
			// Sin cambio: ni stock ni movimiento que registrar.
			return nil, nil
		}
		// El libro registra el delta absoluto, no el valor objetivo.
		mov.Quantity = abs(target - product.Stock)
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		switch in.Type {
		case entity.MovementEntrada:
			if err := productRepo.AddStock(in.ProductID, in.Quantity); err != nil {
				return err
			}
		case entity.MovementSalida:
			if err := productRepo.DecrementStock(in.ProductID, in.Quantity); err != nil {
				return err
			}
		case entity.MovementAjuste:
			if err := productRepo.SetStock(in.ProductID, target); err != nil {
				return err
			}
		}
		return movementRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// AdjustStock fija el stock de un producto en un valor absoluto (flujo de
// ajuste dedicado). Si el objetivo coincide con el stock actual no se registra
// movimiento y se informa que nada cambió; si difiere, se registra un ajuste
// con cantidad |delta| y se persiste el nuevo stock, ambos en una transacción.
func (uc *MovementUseCase) AdjustStock(ctx context.Context, in AdjustInput) (*AdjustResult, error) {
	if in.Target < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	delta := in.Target - product.Stock
	if delta == 0 {
		return &AdjustResult{Changed: false, Delta: 0, Stock: product.Stock}, nil
	}

	reason := in.Reason
	if reason == "" {
		reason = "Ajuste de stock"
	}
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      entity.MovementAjuste,
		Quantity:  abs(delta),
		Reason:    reason,
		Date:      time.Now(),
		CreatedBy: in.Actor,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := productRepo.SetStock(in.ProductID, in.Target); err != nil {
			return err
		}
		return movementRepo.Create(mov)
	})
	if err != nil {
		return nil, fmt.Errorf("ajustar stock: %w", err)
	}
	return &AdjustResult{Changed: true, Delta: delta, Stock: in.Target}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
