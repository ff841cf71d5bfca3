package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jfcastiblanco/boutique-api/internal/application/dto"
	"github.com/jfcastiblanco/boutique-api/internal/domain"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos manuales de inventario
// (ingreso, egreso, ajuste) de forma transaccional con bloqueo de fila.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// Register valida la entrada y aplica el movimiento: ingreso suma, egreso
// resta verificando stock suficiente, ajuste lleva el stock al valor
// indicado y registra el delta como conciliación (no reversible).
func (uc *RegisterMovementUseCase) Register(ctx context.Context, userID *int64, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID <= 0 {
		return nil, domain.Invalid("idProducto", "debe ser un id positivo")
	}
	if in.VariantID != nil && *in.VariantID <= 0 {
		return nil, domain.Invalid("idVariante", "debe ser un id positivo")
	}
	switch in.Type {
	case entity.MovementTypeIngreso, entity.MovementTypeEgreso:
		if in.Quantity <= 0 {
			return nil, domain.Invalid("cantidad", "debe ser mayor que cero")
		}
	case entity.MovementTypeAjuste:
		if in.NewStock == nil || *in.NewStock < 0 {
			return nil, domain.Invalid("nuevoStock", "es requerido y no puede ser negativo")
		}
	default:
		return nil, domain.Invalid("tipo", "debe ser ingreso, egreso o ajuste")
	}

	now := time.Now()
	var out *dto.MovementResponse

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquear la fila objetivo: variante si se indicó, producto si no.
		var current int64
		var applyStock func(int64) error
		if in.VariantID != nil {
			variant, err := variantRepo.GetForUpdate(*in.VariantID)
			if err != nil {
				return err
			}
			if variant == nil {
				return domain.ErrNotFound
			}
			if variant.ProductID != in.ProductID {
				return domain.Invalid("idVariante", "la variante no pertenece al producto indicado")
			}
			current = variant.Stock
			applyStock = func(s int64) error { return variantRepo.UpdateStock(variant.ID, s) }
		} else {
			product, err := productRepo.GetForUpdate(in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			current = product.Stock
			applyStock = func(s int64) error { return productRepo.UpdateStock(product.ID, s) }
		}

		quantity := in.Quantity
		newStock := current
		switch in.Type {
		case entity.MovementTypeIngreso:
			newStock = current + quantity
		case entity.MovementTypeEgreso:
			if current < quantity {
				return domain.ErrInsufficientStock
			}
			newStock = current - quantity
		case entity.MovementTypeAjuste:
			newStock = *in.NewStock
			quantity = newStock - current
			if quantity < 0 {
				quantity = -quantity
			}
			if quantity == 0 {
				return domain.Invalid("nuevoStock", "coincide con el stock actual; nada que ajustar")
			}
		}
		if err := applyStock(newStock); err != nil {
			return err
		}

		reference := in.Reference
		if reference == "" {
			reference = fmt.Sprintf("%s:%s", in.Type, uuid.New().String())
		}
		mov := &entity.StockMovement{
			ProductID: in.ProductID,
			VariantID: in.VariantID,
			Type:      in.Type,
			Quantity:  quantity,
			Reference: reference,
			UserID:    userID,
			Date:      now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		out = toMovementResponse(mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		VariantID: m.VariantID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reference: m.Reference,
		UserID:    m.UserID,
		Date:      m.Date,
	}
}
