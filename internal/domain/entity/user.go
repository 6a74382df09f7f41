package entity

import "time"

// User representa un usuario de la aplicación. GroupName determina sus permisos.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	GroupName    string // administradores, stock, ventas
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
