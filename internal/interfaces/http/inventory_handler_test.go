package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcastiblanco/boutique-api/internal/application/inventory"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
	apphttp "github.com/jfcastiblanco/boutique-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs mínimos: el contrato HTTP se prueba con casos que no llegan a la BD.
// ──────────────────────────────────────────────────────────────────────────────

type stubTxRunner struct{ calls int }

func (s *stubTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	variantRepo repository.VariantRepository,
	productRepo repository.ProductRepository,
) error) error {
	s.calls++
	return nil
}

type emptyMovementRepo struct{}

func (emptyMovementRepo) Create(m *entity.StockMovement) error            { return nil }
func (emptyMovementRepo) GetByID(id int64) (*entity.StockMovement, error) { return nil, nil }
func (emptyMovementRepo) Delete(id int64) error                           { return nil }
func (emptyMovementRepo) List(productID *int64, limit, offset int) ([]*entity.StockMovement, error) {
	return nil, nil
}

func buildInventoryApp(runner *stubTxRunner) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewInventoryHandler(
		inventory.NewRegisterMovementUseCase(runner),
		nil, // la reversa no se ejercita en estos casos
		inventory.NewListMovementsUseCase(emptyMovementRepo{}),
	)
	app.Post("/api/inventario/movimientos", handler.RegisterMovement)
	app.Get("/api/inventario/movimientos/:id", handler.GetMovement)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeError extrae el cuerpo de error {"error": "<motivo>"}.
func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Contains(t, body, "error", "el cuerpo de error debe tener la clave error")
	return body["error"]
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato de errores
// ──────────────────────────────────────────────────────────────────────────────

// Cuerpo no-JSON → 400 con {"error": ...}.
func TestRegisterMovement_CuerpoInvalidoRetorna400(t *testing.T) {
	runner := &stubTxRunner{}
	app := buildInventoryApp(runner)

	resp := postJSON(t, app, "/api/inventario/movimientos", "{esto no es json")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, decodeError(t, resp))
	assert.Equal(t, 0, runner.calls)
}

// Tipo desconocido → 400 nombrando el campo; la transacción nunca se abre.
func TestRegisterMovement_TipoDesconocidoRetorna400(t *testing.T) {
	runner := &stubTxRunner{}
	app := buildInventoryApp(runner)

	resp := postJSON(t, app, "/api/inventario/movimientos",
		`{"idProducto": 10, "tipo": "traslado", "cantidad": 1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp), "tipo")
	assert.Equal(t, 0, runner.calls)
}

// Cantidad faltante para un ingreso → 400 nombrando cantidad.
func TestRegisterMovement_IngresoSinCantidadRetorna400(t *testing.T) {
	app := buildInventoryApp(&stubTxRunner{})

	resp := postJSON(t, app, "/api/inventario/movimientos",
		`{"idProducto": 10, "tipo": "ingreso"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp), "cantidad")
}

// Asiento inexistente → 404 con {"error": ...}.
func TestGetMovement_InexistenteRetorna404(t *testing.T) {
	app := buildInventoryApp(&stubTxRunner{})

	req := httptest.NewRequest(http.MethodGet, "/api/inventario/movimientos/99", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, decodeError(t, resp))
}

// ID no numérico en la ruta → 400.
func TestGetMovement_IDNoNumericoRetorna400(t *testing.T) {
	app := buildInventoryApp(&stubTxRunner{})

	req := httptest.NewRequest(http.MethodGet, "/api/inventario/movimientos/abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
