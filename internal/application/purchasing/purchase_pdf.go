package purchasing

import (
	"fmt"

	"github.com/jfcastiblanco/boutique-api/internal/domain"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

// PurchasePDFUseCase arma la orden de compra en PDF: cabecera, proveedor
// y líneas denormalizadas.
type PurchasePDFUseCase struct {
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	generator    PDFGenerator
}

// NewPurchasePDFUseCase construye el caso de uso.
func NewPurchasePDFUseCase(
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	generator PDFGenerator,
) *PurchasePDFUseCase {
	return &PurchasePDFUseCase{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		generator:    generator,
	}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *PurchasePDFUseCase) Generate(purchaseID int64) ([]byte, string, error) {
	purchase, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, "", err
	}
	if purchase == nil {
		return nil, "", domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(purchase.SupplierID)
	if err != nil {
		return nil, "", err
	}
	if supplier == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.purchaseRepo.ListItems(purchaseID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.generator.GeneratePurchasePDF(purchase, supplier, items)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("orden-compra-%d.pdf", purchase.ID)
	return data, filename, nil
}
