package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfcastiblanco/boutique-api/internal/application/usecase"
)

// LookupHandler expone los catálogos auxiliares (categorías, colores, tallas).
type LookupHandler struct {
	uc *usecase.LookupUseCase
}

// NewLookupHandler construye el handler.
func NewLookupHandler(uc *usecase.LookupUseCase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// Categories godoc
// @Summary      Listar categorías
// @Tags         lookups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categorias [get]
func (h *LookupHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Colors godoc
// @Summary      Listar colores
// @Tags         lookups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ColorResponse
// @Router       /api/colores [get]
func (h *LookupHandler) Colors(c *fiber.Ctx) error {
	out, err := h.uc.Colors()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sizes godoc
// @Summary      Listar tallas
// @Tags         lookups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SizeResponse
// @Router       /api/tallas [get]
func (h *LookupHandler) Sizes(c *fiber.Ctx) error {
	out, err := h.uc.Sizes()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
