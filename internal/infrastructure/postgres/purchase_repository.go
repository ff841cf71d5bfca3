package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jfcastiblanco/boutique-api/internal/domain"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de compra y asigna el ID generado.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	query := `
		INSERT INTO compras (proveedor_id, usuario_id, fecha, nota, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.SupplierID, p.UserID, p.Date, p.Note, p.Total, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create purchase: %w", err)
	}
	return nil
}

// CreateLineItems inserta las líneas de la compra en bloque.
func (r *PurchaseRepo) CreateLineItems(items []*entity.PurchaseLineItem) error {
	for _, it := range items {
		query := `
			INSERT INTO compra_detalles (compra_id, producto_id, variante_id, cantidad, precio_unitario)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`
		err := r.q.QueryRow(context.Background(), query,
			it.PurchaseID, it.ProductID, it.VariantID, it.Quantity, it.UnitPrice,
		).Scan(&it.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("create purchase line item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de compra. Devuelve nil, nil si no existe.
func (r *PurchaseRepo) GetByID(id int64) (*entity.Purchase, error) {
	query := `
		SELECT id, proveedor_id, usuario_id, fecha, nota, total, created_at
		FROM compras WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SupplierID, &p.UserID, &p.Date, &p.Note, &p.Total, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// ListItems devuelve las líneas de una compra denormalizadas: nombre del
// producto y sku/color/talla de la variante resueltos por JOIN.
func (r *PurchaseRepo) ListItems(purchaseID int64) ([]*repository.PurchaseItemView, error) {
	query := `
		SELECT d.id, d.producto_id, p.nombre, d.variante_id, v.sku, c.nombre, t.codigo,
		       d.cantidad, d.precio_unitario
		FROM compra_detalles d
		JOIN productos p ON p.id = d.producto_id
		LEFT JOIN variantes v ON v.id = d.variante_id
		LEFT JOIN colores c ON c.id = v.color_id
		LEFT JOIN tallas t ON t.id = v.talla_id
		WHERE d.compra_id = $1
		ORDER BY d.id`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()

	var list []*repository.PurchaseItemView
	for rows.Next() {
		var it repository.PurchaseItemView
		if err := rows.Scan(&it.ID, &it.ProductID, &it.ProductName, &it.VariantID, &it.SKU,
			&it.ColorName, &it.SizeCode, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List lista cabeceras de compra, más recientes primero.
func (r *PurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, proveedor_id, usuario_id, fecha, nota, total, created_at
		FROM compras ORDER BY fecha DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.UserID, &p.Date, &p.Note, &p.Total, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
