package repository

import "github.com/jfcastiblanco/boutique-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	// SetActive persiste el flag habilitado/deshabilitado en la fila del
	// usuario (estado durable, no memoria de proceso).
	SetActive(id int64, active bool) error
}
