package repository

import "github.com/jfcastiblanco/boutique-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	List(onlyActive bool, limit, offset int) ([]*entity.Product, error)
	Delete(id int64) error
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// mutaciones de stock dentro de una transacción.
	GetForUpdate(id int64) (*entity.Product, error)
	UpdateStock(id int64, stock int64) error
}
