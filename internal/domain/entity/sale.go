package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale es la cabecera de una venta: cliente, fecha y total derivado de sus ítems.
// Code se genera en la primera persistencia si viene vacío.
type Sale struct {
	ID         string
	Code       string // único, 10 caracteres hex en mayúsculas
	CustomerID string
	Date       time.Time
	Total      decimal.Decimal
	CreatedAt  time.Time
}

// SaleItem es una línea de venta. UnitPrice se captura del producto al momento
// de la venta y no se re-deriva después; Subtotal = Quantity × UnitPrice.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// NewSaleCode genera un código de venta: los primeros 10 caracteres hex de un
// UUID v4, en mayúsculas.
func NewSaleCode() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(hex[:10])
}
