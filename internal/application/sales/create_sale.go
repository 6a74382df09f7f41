package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jcastan/inventario-ventas/internal/application/dto"
	"github.com/jcastan/inventario-ventas/internal/domain"
	"github.com/jcastan/inventario-ventas/internal/domain/entity"
	"github.com/jcastan/inventario-ventas/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ValidationError agrupa los errores de campo de una venta rechazada más el
// banner agregado de faltantes de stock. Ningún write ocurre cuando se retorna.
type ValidationError struct {
	FieldErrors []dto.FieldError
	Shortages   []string
}

// Error implementa error. El mensaje agregado lista cada faltante.
func (e *ValidationError) Error() string {
	if len(e.Shortages) > 0 {
		return "Stock insuficiente para: " + strings.Join(e.Shortages, "; ")
	}
	return "la venta tiene errores de validación"
}

// Banner devuelve el mensaje agregado para el usuario, vacío si no hay faltantes.
func (e *ValidationError) Banner() string {
	if len(e.Shortages) == 0 {
		return ""
	}
	return "Stock insuficiente para: " + strings.Join(e.Shortages, "; ")
}

// CreateSaleUseCase crea una venta y descuenta el stock en una sola transacción.
//
// Dos pasadas: primero se validan todas las líneas sin escribir nada
// (cantidades, productos, disponibilidad) acumulando errores por campo; solo
// si todo pasa se abre la transacción que persiste cabecera, ítems, descuentos
// y movimientos. El precio unitario se toma siempre del producto al momento
// del commit, nunca del cliente.
type CreateSaleUseCase struct {
	txRunner     SaleTxRunner
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner SaleTxRunner,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, customerRepo: customerRepo, productRepo: productRepo}
}

// CreateSale valida y persiste una venta. Retorna *ValidationError con todos
// los errores de campo recolectados (y el banner de faltantes) si alguna línea
// es inválida; en ese caso no se escribe nada.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, actor string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	verr := &ValidationError{}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		verr.FieldErrors = append(verr.FieldErrors, dto.FieldError{
			Index: -1, Field: "customer_id", Message: "Seleccione un cliente válido.",
		})
	}

	// Pasada de validación: sin writes. Las líneas excluidas no se validan.
	type acceptedItem struct {
		index   int
		product *entity.Product
		qty     int
	}
	var accepted []acceptedItem
	for i, item := range in.Items {
		if item.Exclude {
			continue
		}
		if item.Quantity <= 0 {
			verr.FieldErrors = append(verr.FieldErrors, dto.FieldError{
				Index: i, Field: "quantity", Message: "La cantidad debe ser mayor que 0.",
			})
			continue
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			verr.FieldErrors = append(verr.FieldErrors, dto.FieldError{
				Index: i, Field: "product_id", Message: "Seleccione un producto válido.",
			})
			continue
		}
		if item.Quantity > product.Stock {
			verr.FieldErrors = append(verr.FieldErrors, dto.FieldError{
				Index: i, Field: "quantity",
				Message: fmt.Sprintf("Sólo hay %d unidades disponibles de %s.", product.Stock, product.Name),
			})
			verr.Shortages = append(verr.Shortages, fmt.Sprintf("%s: %d disponibles", product.Name, product.Stock))
			continue
		}
		accepted = append(accepted, acceptedItem{index: i, product: product, qty: item.Quantity})
	}
	if len(accepted) == 0 && len(verr.FieldErrors) == 0 {
		verr.FieldErrors = append(verr.FieldErrors, dto.FieldError{
			Index: -1, Field: "items", Message: "Agregue al menos un producto.",
		})
	}
	if len(verr.FieldErrors) > 0 {
		return nil, verr
	}

	now := time.Now()
	code := in.Code
	if code == "" {
		code = entity.NewSaleCode()
	}
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		Code:       code,
		CustomerID: customer.ID,
		Date:       now,
		Total:      decimal.Zero,
		CreatedAt:  now,
	}
	var items []*entity.SaleItem

	// Pasada de commit: una sola transacción; cualquier fallo revierte todo.
	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		// 1) Cabecera con total temporal en cero, para obtener el ID.
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// 2) Ítems en orden de entrada. El precio se lee del producto dentro
		// de la tx; el descuento de stock es un UPDATE condicional atómico
		// (stock >= cantidad), lo que cierra la carrera entre ventas
		// concurrentes que validaron contra el mismo stock.
		total := decimal.Zero
		for _, a := range accepted {
			product, err := productRepo.GetByID(a.product.ID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			qty := decimal.NewFromInt(int64(a.qty))
			subtotal := qty.Mul(product.Price)
			item := &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: product.ID,
				Quantity:  a.qty,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			if err := productRepo.DecrementStock(product.ID, a.qty); err != nil {
				return err
			}
			if err := movementRepo.Create(&entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Type:      entity.MovementSalida,
				Quantity:  a.qty,
				Reason:    "Venta " + sale.Code,
				Date:      now,
				CreatedBy: actor,
			}); err != nil {
				return err
			}
			items = append(items, item)
			total = total.Add(subtotal)
		}

		// 3) Total acumulado de vuelta en la cabecera.
		sale.Total = total
		return saleRepo.UpdateTotal(sale.ID, total)
	})
	if err != nil {
		return nil, err
	}

	out := &dto.SaleResponse{
		ID:            sale.ID,
		Code:          sale.Code,
		CustomerID:    sale.CustomerID,
		CustomerLabel: customer.Label(),
		Date:          sale.Date.Format(time.RFC3339),
		Total:         sale.Total,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return out, nil
}
