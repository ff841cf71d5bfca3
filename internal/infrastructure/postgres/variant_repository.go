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

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación sobre PostgreSQL (usable con pool o tx).
// Las lecturas resuelven color y talla vía LEFT JOIN con los catálogos.
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

const variantSelect = `
	SELECT v.id, v.producto_id, v.color_id, v.talla_id, v.sku, v.precio, v.stock,
	       v.created_at, v.updated_at, c.nombre, t.codigo
	FROM variantes v
	LEFT JOIN colores c ON c.id = v.color_id
	LEFT JOIN tallas t ON t.id = v.talla_id`

// Create persiste una variante con stock 0 y asigna el ID generado.
func (r *VariantRepo) Create(v *entity.ProductVariant) error {
	query := `
		INSERT INTO variantes (producto_id, color_id, talla_id, sku, precio, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		v.ProductID, v.ColorID, v.SizeID, v.SKU, v.Price, v.Stock, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.Invalid("idColor/idTalla", "referencia inexistente")
		}
		return fmt.Errorf("create variant: %w", err)
	}
	return nil
}

// GetByID obtiene una variante por ID. Devuelve nil, nil si no existe.
func (r *VariantRepo) GetByID(id int64) (*entity.ProductVariant, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), variantSelect+` WHERE v.id = $1`, id), "get variant")
}

// GetForUpdate obtiene la variante y bloquea su fila (SELECT FOR UPDATE).
// El FOR UPDATE OF v evita bloquear los catálogos del JOIN.
func (r *VariantRepo) GetForUpdate(id int64) (*entity.ProductVariant, error) {
	query := variantSelect + ` WHERE v.id = $1 FOR UPDATE OF v`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get variant for update")
}

// ListByProduct lista las variantes de un producto.
func (r *VariantRepo) ListByProduct(productID int64) ([]*entity.ProductVariant, error) {
	rows, err := r.q.Query(context.Background(), variantSelect+` WHERE v.producto_id = $1 ORDER BY v.id`, productID)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// ListByProducts trae las variantes de varios productos en una sola consulta,
// agrupadas por producto (evita N+1 en los listados del catálogo).
func (r *VariantRepo) ListByProducts(productIDs []int64) (map[int64][]*entity.ProductVariant, error) {
	rows, err := r.q.Query(context.Background(), variantSelect+` WHERE v.producto_id = ANY($1) ORDER BY v.id`, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list variants by products: %w", err)
	}
	defer rows.Close()
	list, err := r.collect(rows)
	if err != nil {
		return nil, err
	}
	out := make(map[int64][]*entity.ProductVariant, len(productIDs))
	for _, v := range list {
		out[v.ProductID] = append(out[v.ProductID], v)
	}
	return out, nil
}

// Update actualiza color, talla, sku y precio de la variante.
func (r *VariantRepo) Update(v *entity.ProductVariant) error {
	query := `
		UPDATE variantes
		SET color_id = $2, talla_id = $3, sku = $4, precio = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.ColorID, v.SizeID, v.SKU, v.Price, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.Invalid("idColor/idTalla", "referencia inexistente")
		}
		return fmt.Errorf("update variant: %w", err)
	}
	return nil
}

// UpdateStock escribe el nuevo stock de la variante.
func (r *VariantRepo) UpdateStock(id int64, stock int64) error {
	query := `UPDATE variantes SET stock = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, stock); err != nil {
		return fmt.Errorf("update variant stock: %w", err)
	}
	return nil
}

// Delete elimina una variante por ID.
func (r *VariantRepo) Delete(id int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM variantes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete variant: %w", err)
	}
	return nil
}

func (r *VariantRepo) scanOne(row pgx.Row, op string) (*entity.ProductVariant, error) {
	var v entity.ProductVariant
	err := row.Scan(&v.ID, &v.ProductID, &v.ColorID, &v.SizeID, &v.SKU, &v.Price, &v.Stock,
		&v.CreatedAt, &v.UpdatedAt, &v.ColorName, &v.SizeCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &v, nil
}

func (r *VariantRepo) collect(rows pgx.Rows) ([]*entity.ProductVariant, error) {
	var list []*entity.ProductVariant
	for rows.Next() {
		var v entity.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.ColorID, &v.SizeID, &v.SKU, &v.Price, &v.Stock,
			&v.CreatedAt, &v.UpdatedAt, &v.ColorName, &v.SizeCode); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
