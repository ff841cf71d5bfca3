package purchasing

import (
	"context"

	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

// PDFGenerator genera la orden de compra imprimible.
type PDFGenerator interface {
	GeneratePurchasePDF(
		purchase *entity.Purchase,
		supplier *entity.Supplier,
		items []*repository.PurchaseItemView,
	) ([]byte, error)
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que cabecera, líneas, stock y
// asientos del libro se escriban todos o ninguno.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		movRepo repository.MovementRepository,
		variantRepo repository.VariantRepository,
		productRepo repository.ProductRepository,
	) error) error
}
