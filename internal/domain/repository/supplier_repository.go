package repository

import "github.com/jfcastiblanco/boutique-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(onlyActive bool, limit, offset int) ([]*entity.Supplier, error)
	Delete(id int64) error
}
