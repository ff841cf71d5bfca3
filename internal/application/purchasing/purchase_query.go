package purchasing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jfcastiblanco/boutique-api/internal/application/dto"
	"github.com/jfcastiblanco/boutique-api/internal/domain"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

// PurchaseQueryUseCase lecturas de compras: detalle denormalizado, listado
// y registro de abonos a proveedor.
type PurchaseQueryUseCase struct {
	purchaseRepo repository.PurchaseRepository
	paymentRepo  repository.PaymentRepository
}

// NewPurchaseQueryUseCase construye el caso de uso.
func NewPurchaseQueryUseCase(purchaseRepo repository.PurchaseRepository, paymentRepo repository.PaymentRepository) *PurchaseQueryUseCase {
	return &PurchaseQueryUseCase{purchaseRepo: purchaseRepo, paymentRepo: paymentRepo}
}

// GetByID devuelve la cabecera con líneas denormalizadas (producto, sku,
// color, talla) y los abonos asociados.
func (uc *PurchaseQueryUseCase) GetByID(id int64) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.purchaseRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListByPurchase(id)
	if err != nil {
		return nil, err
	}

	out := &dto.PurchaseResponse{
		ID:         purchase.ID,
		SupplierID: purchase.SupplierID,
		UserID:     purchase.UserID,
		Date:       purchase.Date,
		Note:       purchase.Note,
		Total:      purchase.Total,
		Items:      make([]dto.PurchaseItemResponse, 0, len(items)),
		Payments:   make([]dto.PaymentResponse, 0, len(payments)),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.PurchaseItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			VariantID:   it.VariantID,
			SKU:         it.SKU,
			Color:       it.ColorName,
			Size:        it.SizeCode,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)),
		})
	}
	for _, p := range payments {
		out.Payments = append(out.Payments, dto.PaymentResponse{
			ID:     p.ID,
			Amount: p.Amount,
			Method: p.Method,
			Note:   p.Note,
			Date:   p.Date,
		})
	}
	return out, nil
}

// List lista cabeceras de compra con paginación.
func (uc *PurchaseQueryUseCase) List(limit, offset int) (*dto.PurchaseListResponse, error) {
	list, err := uc.purchaseRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseHeaderResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.PurchaseHeaderResponse{
			ID:         p.ID,
			SupplierID: p.SupplierID,
			Date:       p.Date,
			Note:       p.Note,
			Total:      p.Total,
		})
	}
	return &dto.PurchaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AddPayment registra un abono contra una compra existente.
func (uc *PurchaseQueryUseCase) AddPayment(purchaseID int64, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.Invalid("monto", "debe ser mayor que cero")
	}
	if in.Method == "" {
		return nil, domain.Invalid("metodo", "es requerido")
	}
	purchase, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.Invalid("fecha", "formato esperado YYYY-MM-DD")
		}
		date = parsed
	}
	payment := &entity.SupplierPayment{
		PurchaseID: purchaseID,
		Amount:     in.Amount,
		Method:     in.Method,
		Note:       in.Note,
		Date:       date,
	}
	if err := uc.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	return &dto.PaymentResponse{
		ID:     payment.ID,
		Amount: payment.Amount,
		Method: payment.Method,
		Note:   payment.Note,
		Date:   payment.Date,
	}, nil
}
