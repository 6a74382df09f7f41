package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest body para POST /api/sales.
// Code es opcional; si va vacío se genera uno único al guardar.
type CreateSaleRequest struct {
	CustomerID string            `json:"customer_id"`
	Code       string            `json:"code,omitempty"`
	Items      []SaleItemRequest `json:"items"`
}

// SaleItemRequest línea candidata de una venta. Exclude marca la línea como no
// enviada (equivalente a quitarla del formulario); no se valida ni se persiste.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Exclude   bool   `json:"exclude,omitempty"`
}

// SaleItemResponse línea persistida en respuestas.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta con detalle para GET /api/sales/:id.
type SaleResponse struct {
	ID            string             `json:"id"`
	Code          string             `json:"code"`
	CustomerID    string             `json:"customer_id"`
	CustomerLabel string             `json:"customer_label,omitempty"`
	Date          string             `json:"date"`
	Total         decimal.Decimal    `json:"total"`
	Items         []SaleItemResponse `json:"items,omitempty"`
}

// SaleListRequest query params para GET /api/sales.
// Customer acepta un UUID, un token "id - etiqueta" o un fragmento libre que se
// busca contra nombre, apellido y documento del cliente.
type SaleListRequest struct {
	From     string `query:"from"`     // YYYY-MM-DD, inclusivo
	To       string `query:"to"`       // YYYY-MM-DD, inclusivo
	Customer string `query:"customer"` // id | "id - etiqueta" | fragmento
	PageRequest
}

// SaleListResponse listado de ventas. FilterMessage informa filtros de cliente
// ambiguos o sin coincidencias (en esos casos el filtro no se aplica).
type SaleListResponse struct {
	Sales         []SaleResponse `json:"sales"`
	FilterMessage string         `json:"filter_message,omitempty"`
	Page          PageResponse   `json:"page"`
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// DayTotalResponse par {date, total} de la agregación por día.
// Total es float para el consumidor JSON (gráficas).
type DayTotalResponse struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// ProductTotalResponse par {product, total} de la agregación por producto.
type ProductTotalResponse struct {
	Product string  `json:"product"`
	Total   float64 `json:"total"`
}
