package dto

import "time"

// RegisterMovementRequest body para POST /api/products/:id/movements.
// Para tipo "ajuste", quantity se interpreta como el stock absoluto deseado;
// el movimiento registrado guardará |target − stock previo| como cantidad.
type RegisterMovementRequest struct {
	Type     string `json:"type" validate:"required,oneof=entrada salida ajuste"`
	Quantity int    `json:"quantity" validate:"required"`
	Reason   string `json:"reason,omitempty"`
}

// AdjustStockRequest body para POST /api/products/:id/adjust.
// Target es el valor absoluto de stock a dejar.
type AdjustStockRequest struct {
	Target int    `json:"target" validate:"min=0"`
	Reason string `json:"reason,omitempty"`
}

// MovementResponse movimiento en respuestas.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	Date      time.Time `json:"date"`
	CreatedBy string    `json:"created_by,omitempty"`
}

// AdjustStockResponse resultado de un ajuste de stock.
// Changed es false cuando el target coincide con el stock previo: no se
// registra movimiento y se informa que nada cambió.
type AdjustStockResponse struct {
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
	Changed   bool   `json:"changed"`
	Message   string `json:"message"`
}
