package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfcastiblanco/boutique-api/internal/application/usecase"
)

// CatalogHandler expone el listado agregado del catálogo (público).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Catálogo agregado
// @Description  Productos activos con rango de precios, stock total,
//               bandera de stock bajo y stock por talla.
// @Tags         catalog
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (máx 200)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /api/catalogo/productos [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
