package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jfcastiblanco/boutique-api/internal/application/dto"
	"github.com/jfcastiblanco/boutique-api/internal/domain"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos y sus variantes.
// El stock no se edita aquí: se mueve vía movimientos de inventario.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, variantRepo repository.VariantRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, variantRepo: variantRepo}
}

// Create crea un producto. El stock base inicial puede venir en la carga
// (migraciones de catálogo); después solo cambia vía movimientos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.Invalid("nombre", "es requerido")
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.Invalid("precio", "no puede ser negativo")
	}
	if in.Stock < 0 {
		return nil, domain.Invalid("stock", "no puede ser negativo")
	}
	now := time.Now()
	product := &entity.Product{
		Name:       in.Name,
		Price:      in.Price,
		Stock:      in.Stock,
		CategoryID: in.CategoryID,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, nil), nil
}

// GetByID obtiene un producto con sus variantes.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	variants, err := uc.variantRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, variants), nil
}

// Update actualiza campos editables del producto (no stock).
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Invalid("nombre", "no puede quedar vacío")
		}
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.Invalid("precio", "no puede ser negativo")
		}
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, nil), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(onlyActive bool, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, nil))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.productRepo.Delete(id)
}

// CreateVariant crea una variante del producto. El stock inicia en 0 y solo
// cambia vía movimientos de inventario.
func (uc *ProductUseCase) CreateVariant(productID int64, in dto.CreateVariantRequest) (*dto.VariantResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Price != nil && in.Price.LessThan(decimal.Zero) {
		return nil, domain.Invalid("precio", "no puede ser negativo")
	}
	if in.SKU != nil && *in.SKU == "" {
		return nil, domain.Invalid("sku", "no puede ser una cadena vacía")
	}
	now := time.Now()
	variant := &entity.ProductVariant{
		ProductID: productID,
		ColorID:   in.ColorID,
		SizeID:    in.SizeID,
		SKU:       in.SKU,
		Price:     in.Price,
		Stock:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.variantRepo.Create(variant); err != nil {
		return nil, err
	}
	return toVariantResponse(variant), nil
}

// UpdateVariant actualiza color, talla, sku o precio de una variante.
func (uc *ProductUseCase) UpdateVariant(id int64, in dto.UpdateVariantRequest) (*dto.VariantResponse, error) {
	variant, err := uc.variantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	if in.ColorID != nil {
		variant.ColorID = in.ColorID
	}
	if in.SizeID != nil {
		variant.SizeID = in.SizeID
	}
	if in.SKU != nil {
		if *in.SKU == "" {
			return nil, domain.Invalid("sku", "no puede ser una cadena vacía")
		}
		variant.SKU = in.SKU
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.Invalid("precio", "no puede ser negativo")
		}
		variant.Price = in.Price
	}
	variant.UpdatedAt = time.Now()
	if err := uc.variantRepo.Update(variant); err != nil {
		return nil, err
	}
	return toVariantResponse(variant), nil
}

// DeleteVariant elimina una variante por ID.
func (uc *ProductUseCase) DeleteVariant(id int64) error {
	return uc.variantRepo.Delete(id)
}

func toProductResponse(p *entity.Product, variants []*entity.ProductVariant) *dto.ProductResponse {
	out := &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Stock:      p.Stock,
		CategoryID: p.CategoryID,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	for _, v := range variants {
		out.Variants = append(out.Variants, *toVariantResponse(v))
	}
	return out
}

func toVariantResponse(v *entity.ProductVariant) *dto.VariantResponse {
	return &dto.VariantResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		ColorID:   v.ColorID,
		Color:     v.ColorName,
		SizeID:    v.SizeID,
		Size:      v.SizeCode,
		SKU:       v.SKU,
		Price:     v.Price,
		Stock:     v.Stock,
	}
}
