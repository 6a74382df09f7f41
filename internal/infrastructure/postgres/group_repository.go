package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcastan/inventario-ventas/internal/domain/entity"
	"github.com/jcastan/inventario-ventas/internal/domain/repository"
)

var _ repository.GroupRepository = (*GroupRepo)(nil)

// GroupRepo implementación del puerto GroupRepository sobre PostgreSQL.
type GroupRepo struct {
	q Querier
}

// NewGroupRepository construye el adaptador de persistencia para grupos de permisos.
func NewGroupRepository(q Querier) *GroupRepo {
	return &GroupRepo{q: q}
}

// Upsert crea el grupo si no existe y deja sus permisos exactamente como los del
// grupo recibido. Idempotente: ejecutarlo de nuevo no duplica nada.
func (r *GroupRepo) Upsert(group entity.Group) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`INSERT INTO groups (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, group.Name)
	if err != nil {
		return fmt.Errorf("upsert group: %w", err)
	}
	if _, err := r.q.Exec(ctx,
		`DELETE FROM group_permissions WHERE group_name = $1`, group.Name); err != nil {
		return fmt.Errorf("reset group permissions: %w", err)
	}
	for _, codename := range group.Permissions {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO group_permissions (group_name, codename) VALUES ($1, $2)`,
			group.Name, codename); err != nil {
			return fmt.Errorf("insert group permission: %w", err)
		}
	}
	return nil
}

// Get obtiene un grupo con sus permisos.
func (r *GroupRepo) Get(name string) (*entity.Group, error) {
	ctx := context.Background()
	var found string
	err := r.q.QueryRow(ctx, `SELECT name FROM groups WHERE name = $1`, name).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT codename FROM group_permissions WHERE group_name = $1 ORDER BY codename`, name)
	if err != nil {
		return nil, fmt.Errorf("get group permissions: %w", err)
	}
	defer rows.Close()
	g := entity.Group{Name: found}
	for rows.Next() {
		var codename string
		if err := rows.Scan(&codename); err != nil {
			return nil, fmt.Errorf("scan group permission: %w", err)
		}
		g.Permissions = append(g.Permissions, codename)
	}
	return &g, rows.Err()
}

// HasPermission indica si el grupo tiene asignado el permiso dado.
func (r *GroupRepo) HasPermission(ctx context.Context, groupName, codename string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM group_permissions WHERE group_name = $1 AND codename = $2)`,
		groupName, codename,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check group permission: %w", err)
	}
	return ok, nil
}
