package usecase

import (
	"github.com/jfcastiblanco/boutique-api/internal/application/dto"
	"github.com/jfcastiblanco/boutique-api/internal/domain/catalog"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

// CatalogUseCase lista productos con su vista agregada (rango de precios,
// stock total, stock bajo, stock por talla). Es la única implementación de
// la agregación: todas las superficies de listado consumen esta función.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(productRepo repository.ProductRepository, variantRepo repository.VariantRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, variantRepo: variantRepo}
}

// List devuelve productos activos con el resumen calculado por producto.
// Las variantes se cargan en una sola consulta para evitar N+1.
func (uc *CatalogUseCase) List(limit, offset int) (*dto.CatalogListResponse, error) {
	products, err := uc.productRepo.List(true, limit, offset)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	variantsByProduct := map[int64][]*entity.ProductVariant{}
	if len(ids) > 0 {
		variantsByProduct, err = uc.variantRepo.ListByProducts(ids)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.CatalogProductResponse, 0, len(products))
	for _, p := range products {
		variants := variantsByProduct[p.ID]
		summary := catalog.Summarize(p, variants)
		item := dto.CatalogProductResponse{
			ID:         p.ID,
			Name:       p.Name,
			PriceMin:   summary.PriceMin,
			PriceMax:   summary.PriceMax,
			HasRange:   summary.HasRange,
			TotalStock: summary.TotalStock,
			LowStock:   summary.LowStock,
			SizeStock:  summary.SizeStock,
		}
		for _, v := range variants {
			item.Variants = append(item.Variants, *toVariantResponse(v))
		}
		items = append(items, item)
	}
	return &dto.CatalogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
