package usecase

import (
	"github.com/jfcastiblanco/boutique-api/internal/application/dto"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

// LookupUseCase catálogos auxiliares del back-office: categorías, colores
// y tallas para los formularios de productos y variantes.
type LookupUseCase struct {
	repo repository.LookupRepository
}

// NewLookupUseCase construye el caso de uso.
func NewLookupUseCase(repo repository.LookupRepository) *LookupUseCase {
	return &LookupUseCase{repo: repo}
}

// Categories lista las categorías.
func (uc *LookupUseCase) Categories() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListCategories()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// Colors lista los colores.
func (uc *LookupUseCase) Colors() ([]dto.ColorResponse, error) {
	list, err := uc.repo.ListColors()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ColorResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ColorResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// Sizes lista las tallas.
func (uc *LookupUseCase) Sizes() ([]dto.SizeResponse, error) {
	list, err := uc.repo.ListSizes()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SizeResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SizeResponse{ID: s.ID, Code: s.Code, Name: s.Name})
	}
	return out, nil
}
