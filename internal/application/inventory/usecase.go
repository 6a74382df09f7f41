package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jcastan/inventario-ventas/internal/application/dto"
	"github.com/jcastan/inventario-ventas/internal/domain"
	"github.com/jcastan/inventario-ventas/internal/domain/entity"
	"github.com/jcastan/inventario-ventas/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD de productos.
type ProductUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo, movementRepo: movementRepo}
}

// Create crea un producto. Si el stock inicial es mayor que cero, registra un
// movimiento "entrada" con motivo "Stock inicial" en la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, actor string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if in.Stock > 0 {
			return movementRepo.Create(&entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Type:      entity.MovementEntrada,
				Quantity:  in.Stock,
				Reason:    "Stock inicial",
				Date:      now,
				CreatedBy: actor,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto con sus últimos 10 movimientos.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductDetailResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	movements, err := uc.movementRepo.ListByProduct(id, 10)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductDetailResponse{ProductResponse: *toProductResponse(product)}
	for _, m := range movements {
		out.Movements = append(out.Movements, toMovementResponse(m))
	}
	return out, nil
}

// List lista productos, con búsqueda libre (sku, nombre, descripción) y filtro
// opcional de stock bajo.
func (uc *ProductUseCase) List(query string, lowStock bool, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.productRepo.List(repository.ProductFilter{
		Query:    query,
		LowStock: lowStock,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ListLowStock devuelve los productos bajo su umbral de reposición, ordenados
// por stock ascendente.
func (uc *ProductUseCase) ListLowStock() ([]*dto.ProductResponse, error) {
	list, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update actualiza nombre, descripción, precio y umbral. El stock no se toca
// por esta vía (se maneja con movimientos y ajustes).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.MinStock = in.MinStock
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Retorna domain.ErrProtected si está referenciado
// por alguna venta.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		NeedsRestock: p.NeedsRestock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Date:      m.Date,
		CreatedBy: m.CreatedBy,
	}
}
