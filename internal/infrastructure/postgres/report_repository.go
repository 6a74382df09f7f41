package postgres

import (
	"context"
	"fmt"

	"github.com/jcastan/inventario-ventas/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregaciones de ventas sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// saleWhere arma la cláusula WHERE compartida por los reportes a partir del filtro.
// El límite superior del rango (To) es exclusivo.
func saleWhere(filter repository.SaleFilter, column string) (string, []any) {
	var args []any
	var clause string
	add := func(cond string) {
		if clause == "" {
			clause = " WHERE " + cond
		} else {
			clause += " AND " + cond
		}
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		add(fmt.Sprintf("%s >= $%d", column, len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		add(fmt.Sprintf("%s < $%d", column, len(args)))
	}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		add(fmt.Sprintf("s.customer_id = $%d", len(args)))
	}
	return clause, args
}

// TotalsByDay suma el total vendido por día calendario, en orden cronológico.
func (r *ReportRepo) TotalsByDay(ctx context.Context, filter repository.SaleFilter) ([]repository.DayTotal, error) {
	where, args := saleWhere(filter, "s.date")
	query := `
		SELECT to_char(s.date::date, 'YYYY-MM-DD') AS day, COALESCE(SUM(s.total), 0)
		FROM sales s` + where + `
		GROUP BY day ORDER BY day`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("totals by day: %w", err)
	}
	defer rows.Close()
	var list []repository.DayTotal
	for rows.Next() {
		var t repository.DayTotal
		if err := rows.Scan(&t.Day, &t.Total); err != nil {
			return nil, fmt.Errorf("scan day total: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// TotalsByProduct suma el importe vendido por producto, los de mayor importe primero.
func (r *ReportRepo) TotalsByProduct(ctx context.Context, filter repository.SaleFilter) ([]repository.ProductTotal, error) {
	where, args := saleWhere(filter, "s.date")
	query := `
		SELECT i.product_id, p.name, COALESCE(SUM(i.subtotal), 0) AS total
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		JOIN products p ON p.id = i.product_id` + where + `
		GROUP BY i.product_id, p.name ORDER BY total DESC`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("totals by product: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductTotal
	for rows.Next() {
		var t repository.ProductTotal
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.Total); err != nil {
			return nil, fmt.Errorf("scan product total: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
