package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, producto_id, variante_id, tipo, cantidad, referencia, usuario_id, fecha`

// Create persiste un asiento del libro y asigna el ID generado.
func (r *MovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO movimientos_inventario (producto_id, variante_id, tipo, cantidad, referencia, usuario_id, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.ProductID, m.VariantID, m.Type, m.Quantity, m.Reference, m.UserID, m.Date,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID. Devuelve nil, nil si no existe.
func (r *MovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos_inventario WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.VariantID, &m.Type, &m.Quantity, &m.Reference, &m.UserID, &m.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// Delete elimina un asiento por ID (solo lo invoca la reversa, dentro de
// la misma transacción que repone el stock).
func (r *MovementRepo) Delete(id int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM movimientos_inventario WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// List lista asientos del libro, más recientes primero, con filtro opcional
// por producto.
func (r *MovementRepo) List(productID *int64, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos_inventario`
	args := []any{}
	pos := 1
	if productID != nil {
		query += fmt.Sprintf(" WHERE producto_id = $%d", pos)
		args = append(args, *productID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY fecha DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.VariantID, &m.Type, &m.Quantity, &m.Reference, &m.UserID, &m.Date); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
