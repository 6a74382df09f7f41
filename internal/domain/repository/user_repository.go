package repository

import (
	"context"

	"github.com/jcastan/inventario-ventas/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
}

// GroupRepository define el puerto para grupos de permisos.
type GroupRepository interface {
	// Upsert crea el grupo si no existe y reemplaza su conjunto de permisos.
	Upsert(group entity.Group) error
	Get(name string) (*entity.Group, error)
	// HasPermission indica si el grupo tiene el permiso con ese codename.
	HasPermission(ctx context.Context, groupName, codename string) (bool, error)
}
