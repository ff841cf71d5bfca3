package repository

import "github.com/jfcastiblanco/boutique-api/internal/domain/entity"

// LookupRepository lecturas de los catálogos auxiliares (categorías,
// colores, tallas) que alimentan la creación de productos y variantes.
type LookupRepository interface {
	ListCategories() ([]*entity.Category, error)
	ListColors() ([]*entity.Color, error)
	ListSizes() ([]*entity.Size, error)
}
