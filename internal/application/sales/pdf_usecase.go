package sales

import (
	"context"
	"fmt"

	"github.com/jcastan/inventario-ventas/internal/domain"
	"github.com/jcastan/inventario-ventas/internal/domain/repository"
)

// PDFUseCase genera el PDF del detalle de una venta.
// Si el generador no está disponible (deshabilitado por configuración) el
// endpoint degrada a una respuesta de error fija en lugar de fallar.
type PDFUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    SalePDFGenerator // nil cuando el renderizador está deshabilitado
}

// NewPDFUseCase construye el caso de uso. generator puede ser nil.
func NewPDFUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator SalePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// DownloadSalePDF carga la venta completa y la renderiza.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrPDFUnavailable    si el renderizador está deshabilitado.
//   - domain.ErrNotFound          si la venta no existe.
func (uc *PDFUseCase) DownloadSalePDF(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	if uc.generator == nil {
		return nil, "", domain.ErrPDFUnavailable
	}

	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(sale.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}

	rawItems, err := uc.saleRepo.GetItems(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener ítems: %w", err)
	}
	enriched := make([]SaleItemForPDF, 0, len(rawItems))
	for _, it := range rawItems {
		name := "Producto " + it.ProductID // fallback
		if product, pErr := uc.productRepo.GetByID(it.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		enriched = append(enriched, SaleItemForPDF{SaleItem: *it, ProductName: name})
	}

	pdfBytes, err = uc.generator.GenerateSalePDF(ctx, sale, customer, enriched)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("venta_%s.pdf", sale.Code), nil
}
