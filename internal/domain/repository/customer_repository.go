package repository

import "github.com/jcastan/inventario-ventas/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByDocument(document string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	// Search busca por fragmento (case-insensitive) contra nombre, apellido y documento.
	Search(fragment string) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	// Delete retorna domain.ErrProtected si el cliente tiene ventas asociadas.
	Delete(id string) error
}
