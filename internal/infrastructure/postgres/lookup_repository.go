package postgres

import (
	"context"
	"fmt"

	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

var _ repository.LookupRepository = (*LookupRepo)(nil)

// LookupRepo lecturas de catálogos auxiliares sobre PostgreSQL.
type LookupRepo struct {
	q Querier
}

// NewLookupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLookupRepository(q Querier) *LookupRepo {
	return &LookupRepo{q: q}
}

// ListCategories lista las categorías ordenadas por nombre.
func (r *LookupRepo) ListCategories() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nombre FROM categorias ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListColors lista los colores ordenados por nombre.
func (r *LookupRepo) ListColors() ([]*entity.Color, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nombre FROM colores ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()

	var list []*entity.Color
	for rows.Next() {
		var c entity.Color
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan color: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListSizes lista las tallas por orden natural de inserción.
func (r *LookupRepo) ListSizes() ([]*entity.Size, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, codigo, nombre FROM tallas ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Size
	for rows.Next() {
		var s entity.Size
		if err := rows.Scan(&s.ID, &s.Code, &s.Name); err != nil {
			return nil, fmt.Errorf("scan size: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
