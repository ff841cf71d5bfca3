package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfcastiblanco/boutique-api/internal/application/dto"
	"github.com/jfcastiblanco/boutique-api/internal/application/purchasing"
)

// PurchaseHandler maneja compras a proveedor: creación transaccional,
// lecturas, abonos y orden de compra en PDF.
type PurchaseHandler struct {
	create *purchasing.CreatePurchaseUseCase
	query  *purchasing.PurchaseQueryUseCase
	pdf    *purchasing.PurchasePDFUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(
	create *purchasing.CreatePurchaseUseCase,
	query *purchasing.PurchaseQueryUseCase,
	pdf *purchasing.PurchasePDFUseCase,
) *PurchaseHandler {
	return &PurchaseHandler{create: create, query: query, pdf: pdf}
}

// Create godoc
// @Summary      Registrar una compra a proveedor
// @Description  Crea cabecera y líneas, suma stock por variante y asienta
//               un ingreso en el libro por cada línea con variante. Todo o nada.
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "idProveedor, fecha, nota, detalles"
// @Success      201   {object}  dto.CreatePurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	id, err := h.create.CreatePurchase(c.Context(), userIDRef(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatePurchaseResponse{ID: id})
}

// GetByID godoc
// @Summary      Detalle de una compra
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.query.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar compras
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (máx 200)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.PurchaseListResponse
// @Router       /api/compras [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.query.List(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddPayment godoc
// @Summary      Registrar un abono a proveedor
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID de la compra"
// @Param        body  body  dto.CreatePaymentRequest  true  "monto, metodo, nota, fecha"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras/{id}/pagos [post]
func (h *PurchaseHandler) AddPayment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.query.AddPayment(id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetPDF godoc
// @Summary      Orden de compra en PDF
// @Tags         purchases
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la compra"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/{id}/pdf [get]
func (h *PurchaseHandler) GetPDF(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	data, filename, err := h.pdf.Generate(id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
