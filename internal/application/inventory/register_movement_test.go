package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcastiblanco/boutique-api/internal/application/dto"
	"github.com/jfcastiblanco/boutique-api/internal/application/inventory"
	"github.com/jfcastiblanco/boutique-api/internal/domain"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
)

func setupRegister(t *testing.T, variantStock int64) (*inventory.RegisterMovementUseCase, *fakeTxRunner, *fakeState) {
	t.Helper()
	st := newFakeState()
	st.products[10] = entity.Product{ID: 10, Name: "Camisa lino", Stock: 6}
	st.variants[100] = entity.ProductVariant{ID: 100, ProductID: 10, Stock: variantStock}
	st.nextID = 300
	runner := &fakeTxRunner{st: st}
	return inventory.NewRegisterMovementUseCase(runner), runner, st
}

func TestRegister_IngresoSumaStock(t *testing.T) {
	uc, _, st := setupRegister(t, 5)

	out, err := uc.Register(context.Background(), id(3), dto.RegisterMovementRequest{
		ProductID: 10, VariantID: id(100), Type: entity.MovementTypeIngreso, Quantity: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), st.variants[100].Stock)
	assert.Equal(t, entity.MovementTypeIngreso, out.Type)
	assert.Equal(t, int64(4), out.Quantity)
	require.NotNil(t, out.UserID)
	assert.Equal(t, int64(3), *out.UserID)
}

func TestRegister_EgresoConStockInsuficienteAborta(t *testing.T) {
	uc, _, st := setupRegister(t, 2)

	_, err := uc.Register(context.Background(), nil, dto.RegisterMovementRequest{
		ProductID: 10, VariantID: id(100), Type: entity.MovementTypeEgreso, Quantity: 5,
	})

	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, int64(2), st.variants[100].Stock)
	assert.Empty(t, st.movements)
}

// El ajuste lleva el stock al valor indicado y registra el delta absoluto.
func TestRegister_AjusteConciliaAlValorIndicado(t *testing.T) {
	uc, _, st := setupRegister(t, 9)
	nuevo := int64(4)

	out, err := uc.Register(context.Background(), nil, dto.RegisterMovementRequest{
		ProductID: 10, VariantID: id(100), Type: entity.MovementTypeAjuste, NewStock: &nuevo,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), st.variants[100].Stock)
	assert.Equal(t, entity.MovementTypeAjuste, out.Type)
	assert.Equal(t, int64(5), out.Quantity, "el delta se registra en valor absoluto")
}

func TestRegister_AjusteSinCambioSeRechaza(t *testing.T) {
	uc, _, st := setupRegister(t, 4)
	nuevo := int64(4)

	_, err := uc.Register(context.Background(), nil, dto.RegisterMovementRequest{
		ProductID: 10, VariantID: id(100), Type: entity.MovementTypeAjuste, NewStock: &nuevo,
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, st.movements)
}

func TestRegister_TipoDesconocidoSeRechazaSinTransaccion(t *testing.T) {
	uc, runner, _ := setupRegister(t, 4)

	_, err := uc.Register(context.Background(), nil, dto.RegisterMovementRequest{
		ProductID: 10, Type: "traslado", Quantity: 1,
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "tipo")
	assert.Equal(t, 0, runner.calls)
}

func TestRegister_VarianteDeOtroProductoSeRechaza(t *testing.T) {
	uc, _, st := setupRegister(t, 4)
	st.products[20] = entity.Product{ID: 20, Name: "Pantalón palazzo", Stock: 0}

	_, err := uc.Register(context.Background(), nil, dto.RegisterMovementRequest{
		ProductID: 20, VariantID: id(100), Type: entity.MovementTypeIngreso, Quantity: 1,
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "idVariante")
	assert.Equal(t, int64(4), st.variants[100].Stock)
}

// Sin referencia explícita se genera una con el tipo y un identificador.
func TestRegister_GeneraReferenciaPorDefecto(t *testing.T) {
	uc, _, st := setupRegister(t, 5)

	out, err := uc.Register(context.Background(), nil, dto.RegisterMovementRequest{
		ProductID: 10, VariantID: id(100), Type: entity.MovementTypeIngreso, Quantity: 1,
	})

	require.NoError(t, err)
	assert.Contains(t, out.Reference, entity.MovementTypeIngreso+":")
	require.Len(t, st.movements, 1)
}
