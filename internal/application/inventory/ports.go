package inventory

import (
	"context"

	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre el stock y el
// libro de movimientos: o cambian juntos o no cambia nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error) error
}
