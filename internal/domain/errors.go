package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrProtected: el registro está referenciado por ventas y la capa de
	// almacenamiento rechaza el borrado (FK RESTRICT).
	ErrProtected = errors.New("no se puede eliminar: tiene ventas asociadas")

	// ErrPDFUnavailable: el renderizador de PDF está deshabilitado o ausente;
	// el endpoint responde un error fijo en lugar de fallar el proceso.
	ErrPDFUnavailable = errors.New("renderizador de PDF no disponible")
)
