package purchasing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jfcastiblanco/boutique-api/internal/application/dto"
	"github.com/jfcastiblanco/boutique-api/internal/domain"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

// CreatePurchaseUseCase registra una compra a proveedor de forma atómica:
// cabecera, líneas, incrementos de stock por variante y un asiento "ingreso"
// en el libro por cada línea, todo en una sola transacción.
type CreatePurchaseUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
}

// NewCreatePurchaseUseCase construye el caso de uso.
func NewCreatePurchaseUseCase(txRunner TxRunner, supplierRepo repository.SupplierRepository) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{txRunner: txRunner, supplierRepo: supplierRepo}
}

// CreatePurchase valida toda la entrada antes de tocar almacenamiento y luego
// ejecuta la transacción. userID es opcional (auditoría): si la resolución
// del usuario falló aguas arriba, llega nil y la compra se registra sin él.
func (uc *CreatePurchaseUseCase) CreatePurchase(ctx context.Context, userID *int64, in dto.CreatePurchaseRequest) (int64, error) {
	if err := validatePurchase(in); err != nil {
		return 0, err
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return 0, err
	}
	if supplier == nil {
		return 0, domain.ErrNotFound
	}

	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return 0, domain.Invalid("fecha", "formato esperado YYYY-MM-DD")
		}
		date = parsed
	}

	note := ""
	if in.Note != nil {
		note = *in.Note
	}

	// Total derivado: Σ(cantidad × precio unitario).
	total := decimal.Zero
	for _, it := range in.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}

	purchase := &entity.Purchase{
		SupplierID: in.SupplierID,
		UserID:     userID,
		Date:       date,
		Note:       note,
		Total:      total,
		CreatedAt:  time.Now(),
	}

	err = uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		movRepo repository.MovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error {
		// 1) Cabecera con el total calculado.
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}

		// 2) Líneas referenciando la compra recién creada.
		items := make([]*entity.PurchaseLineItem, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, &entity.PurchaseLineItem{
				PurchaseID: purchase.ID,
				ProductID:  it.ProductID,
				VariantID:  it.VariantID,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
			})
		}
		if err := purchaseRepo.CreateLineItems(items); err != nil {
			return err
		}

		// 3) Por cada línea: stock y asiento en el libro. Cualquier fallo
		// (ej. variante inexistente) revierte la transacción completa.
		reference := fmt.Sprintf("compra:%d", purchase.ID)
		for _, it := range in.Items {
			if it.VariantID != nil {
				if err := uc.applyVariantLine(movRepo, variantRepo, it, userID, date, reference); err != nil {
					return err
				}
				continue
			}
			// Ruta legada: línea sin variante. Se registra el asiento contra
			// el producto pero no se muta su stock (comportamiento heredado
			// del sistema original; pendiente de confirmación de negocio).
			product, err := productRepo.GetByID(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			mov := &entity.StockMovement{
				ProductID: it.ProductID,
				Type:      entity.MovementTypeIngreso,
				Quantity:  it.Quantity,
				Reference: reference,
				UserID:    userID,
				Date:      date,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purchase.ID, nil
}

// applyVariantLine bloquea la fila de la variante (SELECT FOR UPDATE), suma
// la cantidad al stock y registra el asiento "ingreso".
func (uc *CreatePurchaseUseCase) applyVariantLine(
	movRepo repository.MovementRepository,
	variantRepo repository.VariantRepository,
	it dto.PurchaseItemRequest,
	userID *int64,
	date time.Time,
	reference string,
) error {
	variant, err := variantRepo.GetForUpdate(*it.VariantID)
	if err != nil {
		return err
	}
	if variant == nil {
		return domain.ErrNotFound
	}
	if variant.ProductID != it.ProductID {
		return domain.Invalid("idVariante", "la variante no pertenece al producto indicado")
	}
	if err := variantRepo.UpdateStock(variant.ID, variant.Stock+it.Quantity); err != nil {
		return err
	}
	mov := &entity.StockMovement{
		ProductID: it.ProductID,
		VariantID: it.VariantID,
		Type:      entity.MovementTypeIngreso,
		Quantity:  it.Quantity,
		Reference: reference,
		UserID:    userID,
		Date:      date,
	}
	return movRepo.Create(mov)
}

// validatePurchase revisa todos los campos antes de abrir la transacción y
// reporta cuál es inválido.
func validatePurchase(in dto.CreatePurchaseRequest) error {
	if in.SupplierID <= 0 {
		return domain.Invalid("idProveedor", "debe ser un id positivo")
	}
	if len(in.Items) == 0 {
		return domain.Invalid("detalles", "debe incluir al menos una línea")
	}
	for i, it := range in.Items {
		field := fmt.Sprintf("detalles[%d]", i)
		if it.ProductID <= 0 {
			return domain.Invalid(field+".idProducto", "debe ser un id positivo")
		}
		if it.VariantID != nil && *it.VariantID <= 0 {
			return domain.Invalid(field+".idVariante", "debe ser un id positivo")
		}
		if it.Quantity <= 0 {
			return domain.Invalid(field+".cantidad", "debe ser mayor que cero")
		}
		if it.UnitPrice.LessThan(decimal.Zero) {
			return domain.Invalid(field+".precioUnitario", "no puede ser negativo")
		}
	}
	return nil
}
