package repository

import "github.com/jfcastiblanco/boutique-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de
// movimientos de inventario.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id int64) (*entity.StockMovement, error)
	Delete(id int64) error
	List(productID *int64, limit, offset int) ([]*entity.StockMovement, error)
}
