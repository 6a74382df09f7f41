package entity

import (
	"fmt"
	"time"
)

// Customer representa un cliente. Document (cédula/NIT) es único.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Document  string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Label devuelve la etiqueta con la que el cliente se muestra en listados y
// filtros: "Apellido, Nombre (documento)".
func (c *Customer) Label() string {
	return fmt.Sprintf("%s, %s (%s)", c.LastName, c.FirstName, c.Document)
}
