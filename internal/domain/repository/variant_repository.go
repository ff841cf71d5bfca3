package repository

import "github.com/jfcastiblanco/boutique-api/internal/domain/entity"

// VariantRepository define el puerto de persistencia para ProductVariant.
// Las lecturas resuelven ColorName y SizeCode vía JOIN con los catálogos.
type VariantRepository interface {
	Create(variant *entity.ProductVariant) error
	GetByID(id int64) (*entity.ProductVariant, error)
	ListByProduct(productID int64) ([]*entity.ProductVariant, error)
	// ListByProducts devuelve las variantes de varios productos en una sola
	// consulta, agrupadas por producto (para los listados del catálogo).
	ListByProducts(productIDs []int64) (map[int64][]*entity.ProductVariant, error)
	Update(variant *entity.ProductVariant) error
	Delete(id int64) error
	// GetForUpdate bloquea la fila de la variante (SELECT FOR UPDATE) para
	// mutaciones de stock dentro de una transacción.
	GetForUpdate(id int64) (*entity.ProductVariant, error)
	UpdateStock(id int64, stock int64) error
}
