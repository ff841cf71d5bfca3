package postgres

import (
	"context"
	"fmt"

	"github.com/jfcastiblanco/boutique-api/internal/domain"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación sobre PostgreSQL (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un abono a proveedor y asigna el ID generado.
func (r *PaymentRepo) Create(p *entity.SupplierPayment) error {
	query := `
		INSERT INTO pagos_proveedor (compra_id, monto, metodo, nota, fecha)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.PurchaseID, p.Amount, p.Method, p.Note, p.Date,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

// ListByPurchase lista los abonos de una compra, más antiguos primero.
func (r *PaymentRepo) ListByPurchase(purchaseID int64) ([]*entity.SupplierPayment, error) {
	query := `
		SELECT id, compra_id, monto, metodo, nota, fecha
		FROM pagos_proveedor WHERE compra_id = $1 ORDER BY fecha, id`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []*entity.SupplierPayment
	for rows.Next() {
		var p entity.SupplierPayment
		if err := rows.Scan(&p.ID, &p.PurchaseID, &p.Amount, &p.Method, &p.Note, &p.Date); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
