package inventory

import (
	"github.com/jfcastiblanco/boutique-api/internal/application/dto"
	"github.com/jfcastiblanco/boutique-api/internal/domain"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

// ListMovementsUseCase listado del libro de movimientos (solo lectura).
type ListMovementsUseCase struct {
	movRepo repository.MovementRepository
}

// NewListMovementsUseCase construye el caso de uso.
func NewListMovementsUseCase(movRepo repository.MovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movRepo: movRepo}
}

// GetByID devuelve un asiento del libro.
func (uc *ListMovementsUseCase) GetByID(id int64) (*dto.MovementResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(mov), nil
}

// List lista movimientos, opcionalmente filtrados por producto.
func (uc *ListMovementsUseCase) List(productID *int64, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.List(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
