package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementEntrada = "entrada"
	MovementSalida  = "salida"
	MovementAjuste  = "ajuste"
)

// ValidMovementType indica si el tipo es uno de los tres conocidos.
func ValidMovementType(t string) bool {
	return t == MovementEntrada || t == MovementSalida || t == MovementAjuste
}

// StockMovement es una fila del libro de movimientos (append-only): justifica
// cada cambio de stock de un producto posterior a su creación.
// Quantity es siempre la magnitud positiva del delta aplicado, también para
// ajustes (el valor absoluto de la diferencia contra el stock previo).
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // entrada, salida, ajuste
	Quantity  int
	Reason    string
	Date      time.Time
	CreatedBy string // etiqueta del actor (username o "Sistema")
}
