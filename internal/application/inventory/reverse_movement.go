package inventory

import (
	"context"

	"github.com/jfcastiblanco/boutique-api/internal/domain"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

// ReverseMovementUseCase deshace el efecto de un asiento del libro sobre el
// stock y elimina el asiento, en una sola transacción. Solo aplica a
// ingreso/egreso; los ajustes son conciliaciones permanentes.
type ReverseMovementUseCase struct {
	txRunner TxRunner
}

// NewReverseMovementUseCase construye el caso de uso.
func NewReverseMovementUseCase(txRunner TxRunner) *ReverseMovementUseCase {
	return &ReverseMovementUseCase{txRunner: txRunner}
}

// Reverse carga el asiento dentro de la transacción, bloquea la fila objetivo
// (variante si el asiento la tiene, producto si no), recalcula el stock y
// elimina el asiento. Revertir un ingreso que ya fue consumido en otra parte
// dejaría stock negativo: en ese caso aborta con ErrInsufficientStock y no
// escribe nada.
func (uc *ReverseMovementUseCase) Reverse(ctx context.Context, movementID int64) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error {
		mov, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if !mov.Reversible() {
			return domain.ErrMovementNotReversible
		}

		if mov.VariantID != nil {
			variant, err := variantRepo.GetForUpdate(*mov.VariantID)
			if err != nil {
				return err
			}
			if variant == nil {
				return domain.ErrNotFound
			}
			newStock, err := reversedStock(variant.Stock, mov)
			if err != nil {
				return err
			}
			if err := variantRepo.UpdateStock(variant.ID, newStock); err != nil {
				return err
			}
		} else {
			product, err := productRepo.GetForUpdate(mov.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			newStock, err := reversedStock(product.Stock, mov)
			if err != nil {
				return err
			}
			if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
				return err
			}
		}

		return movRepo.Delete(mov.ID)
	})
}

// reversedStock calcula el stock tras deshacer el asiento preservando el
// invariante stock >= 0.
func reversedStock(current int64, mov *entity.StockMovement) (int64, error) {
	switch mov.Type {
	case entity.MovementTypeIngreso:
		newStock := current - mov.Quantity
		if newStock < 0 {
			return 0, domain.ErrInsufficientStock
		}
		return newStock, nil
	case entity.MovementTypeEgreso:
		// Restaurar stock retirado siempre es seguro.
		return current + mov.Quantity, nil
	}
	return 0, domain.ErrMovementNotReversible
}
