package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jcastan/inventario-ventas/internal/application/dto"
	"github.com/jcastan/inventario-ventas/internal/domain"
	"github.com/jcastan/inventario-ventas/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// QueryUseCase listados y agregaciones de ventas (solo lectura).
type QueryUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	reportRepo   repository.ReportRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	reportRepo repository.ReportRepository,
) *QueryUseCase {
	return &QueryUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		reportRepo:   reportRepo,
	}
}

// List lista ventas filtradas por rango de fechas inclusivo y por cliente.
// Un filtro de cliente sin coincidencias o ambiguo no filtra y se informa en
// FilterMessage.
func (uc *QueryUseCase) List(ctx context.Context, in dto.SaleListRequest) (*dto.SaleListResponse, error) {
	in.DefaultPage()
	filter, msg, err := uc.buildFilter(in)
	if err != nil {
		return nil, err
	}
	filter.Limit = in.Limit
	filter.Offset = in.Offset

	list, err := uc.saleRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{
		Sales:         make([]dto.SaleResponse, 0, len(list)),
		FilterMessage: msg,
		Page:          dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}
	for _, s := range list {
		resp := dto.SaleResponse{
			ID:         s.ID,
			Code:       s.Code,
			CustomerID: s.CustomerID,
			Date:       s.Date.Format(time.RFC3339),
			Total:      s.Total,
		}
		if c, err := uc.customerRepo.GetByID(s.CustomerID); err == nil && c != nil {
			resp.CustomerLabel = c.Label()
		}
		out.Sales = append(out.Sales, resp)
	}
	return out, nil
}

// GetByID obtiene una venta con sus ítems y nombres de producto.
func (uc *QueryUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	items, err := uc.saleRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleResponse{
		ID:         sale.ID,
		Code:       sale.Code,
		CustomerID: sale.CustomerID,
		Date:       sale.Date.Format(time.RFC3339),
		Total:      sale.Total,
	}
	if c, err := uc.customerRepo.GetByID(sale.CustomerID); err == nil && c != nil {
		out.CustomerLabel = c.Label()
	}
	for _, it := range items {
		line := dto.SaleItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		}
		if p, err := uc.productRepo.GetByID(it.ProductID); err == nil && p != nil {
			line.ProductName = p.Name
		}
		out.Items = append(out.Items, line)
	}
	return out, nil
}

// TotalsByDay agrega el total vendido por día bajo los mismos filtros del listado.
func (uc *QueryUseCase) TotalsByDay(ctx context.Context, in dto.SaleListRequest) ([]dto.DayTotalResponse, string, error) {
	filter, msg, err := uc.buildFilter(in)
	if err != nil {
		return nil, "", err
	}
	rows, err := uc.reportRepo.TotalsByDay(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	out := make([]dto.DayTotalResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DayTotalResponse{Date: r.Day, Total: r.Total.InexactFloat64()})
	}
	return out, msg, nil
}

// TotalsByProduct agrega el total vendido por producto bajo los mismos filtros.
func (uc *QueryUseCase) TotalsByProduct(ctx context.Context, in dto.SaleListRequest) ([]dto.ProductTotalResponse, string, error) {
	filter, msg, err := uc.buildFilter(in)
	if err != nil {
		return nil, "", err
	}
	rows, err := uc.reportRepo.TotalsByProduct(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	out := make([]dto.ProductTotalResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductTotalResponse{Product: r.ProductName, Total: r.Total.InexactFloat64()})
	}
	return out, msg, nil
}

// buildFilter arma el SaleFilter desde los query params: fechas inclusivas y
// resolución del token de cliente.
func (uc *QueryUseCase) buildFilter(in dto.SaleListRequest) (repository.SaleFilter, string, error) {
	var filter repository.SaleFilter
	if in.From != "" {
		from, err := time.Parse(dateLayout, in.From)
		if err != nil {
			return filter, "", fmt.Errorf("%w: fecha desde inválida", domain.ErrInvalidInput)
		}
		filter.From = &from
	}
	if in.To != "" {
		to, err := time.Parse(dateLayout, in.To)
		if err != nil {
			return filter, "", fmt.Errorf("%w: fecha hasta inválida", domain.ErrInvalidInput)
		}
		// El límite es inclusivo: se convierte al inicio del día siguiente y
		// el repo compara con fecha < límite.
		to = to.Add(24 * time.Hour)
		filter.To = &to
	}
	customerID, msg := uc.resolveCustomerToken(in.Customer)
	filter.CustomerID = customerID
	return filter, msg, nil
}

// resolveCustomerToken interpreta el filtro de cliente: un UUID directo, un
// token "id - etiqueta" (como lo produce el autocompletado) o un fragmento
// libre buscado contra nombre, apellido y documento. Cero o varias
// coincidencias producen un mensaje informativo y ningún filtro.
func (uc *QueryUseCase) resolveCustomerToken(token string) (customerID, message string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ""
	}

	// Token "id - etiqueta": quedarse con el prefijo.
	candidate := token
	if idx := strings.Index(token, " - "); idx > 0 {
		candidate = strings.TrimSpace(token[:idx])
	}
	if _, err := uuid.Parse(candidate); err == nil {
		c, err := uc.customerRepo.GetByID(candidate)
		if err == nil && c != nil {
			return c.ID, ""
		}
		return "", fmt.Sprintf("No se encontraron clientes para %q.", token)
	}

	matches, err := uc.customerRepo.Search(token)
	if err != nil {
		return "", ""
	}
	switch len(matches) {
	case 0:
		return "", fmt.Sprintf("No se encontraron clientes para %q.", token)
	case 1:
		return matches[0].ID, ""
	default:
		return "", fmt.Sprintf("Varios clientes coinciden con %q; refine la búsqueda.", token)
	}
}
