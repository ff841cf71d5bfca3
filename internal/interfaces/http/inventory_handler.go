package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfcastiblanco/boutique-api/internal/application/dto"
	"github.com/jfcastiblanco/boutique-api/internal/application/inventory"
)

// InventoryHandler maneja el libro de movimientos: registro manual,
// consultas y reversa.
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	reverse  *inventory.ReverseMovementUseCase
	list     *inventory.ListMovementsUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	register *inventory.RegisterMovementUseCase,
	reverse *inventory.ReverseMovementUseCase,
	list *inventory.ListMovementsUseCase,
) *InventoryHandler {
	return &InventoryHandler{register: register, reverse: reverse, list: list}
}

// RegisterMovement godoc
// @Summary      Registrar un movimiento manual
// @Description  ingreso/egreso mueven stock por cantidad; ajuste concilia
//               al valor nuevoStock y registra el delta.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "idProducto, idVariante, tipo, cantidad | nuevoStock"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.register.Register(c.Context(), userIDRef(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetMovement godoc
// @Summary      Detalle de un movimiento
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos/{id} [get]
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.list.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        idProducto  query  int  false  "Filtrar por producto"
// @Param        limit       query  int  false  "Tamaño de página (máx 200)"
// @Param        offset      query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventario/movimientos [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.list.List(queryInt64Ptr(c, "idProducto"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReverseMovement godoc
// @Summary      Reversar un movimiento
// @Description  Deshace el efecto del asiento sobre el stock y lo elimina
//               del libro. Un ajuste no es reversible; un ingreso cuya
//               reversa dejaría stock negativo se rechaza.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.OKResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos/{id} [delete]
func (h *InventoryHandler) ReverseMovement(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.reverse.Reverse(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
