// Package pdf genera la orden de compra imprimible que se adjunta al
// correo del proveedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda  │  N° Compra + Fecha                       │
//	│  ───────────────────────────────────────────────────────────│
//	│  PROVEEDOR: Nombre + NIT + contacto                         │
//	│  ───────────────────────────────────────────────────────────│
//	│  TABLA: Cant | Producto | Variante | P.Unit | Subtotal      │
//	│  ───────────────────────────────────────────────────────────│
//	│  TOTAL                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 120, Green: 40, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PurchasePDFGenerator genera la orden de compra usando Maroto v2.
type PurchasePDFGenerator struct {
	StoreName string
}

// NewPurchasePDFGenerator construye el generador.
func NewPurchasePDFGenerator(storeName string) *PurchasePDFGenerator {
	return &PurchasePDFGenerator{StoreName: storeName}
}

// GeneratePurchasePDF genera el PDF de la compra y devuelve sus bytes.
func (g *PurchasePDFGenerator) GeneratePurchasePDF(
	purchase *entity.Purchase,
	supplier *entity.Supplier,
	items []*repository.PurchaseItemView,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Orden de compra #%d", purchase.ID), true).
		WithAuthor(g.StoreName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.StoreName, purchase))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(purchase.Total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y número + fecha (der).
func headerRow(storeName string, purchase *entity.Purchase) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("#%d", purchase.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+purchase.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// supplierRow: datos del proveedor.
func supplierRow(supplier *entity.Supplier) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   NIT: %s   |   Tel: %s",
				supplier.Name,
				orDash(supplier.NIT),
				orDash(supplier.Phone),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header(1, "Cant", align.Center),
		header(5, "Producto", align.Left),
		header(3, "Variante", align.Left),
		header(1, "P.Unit", align.Right),
		header(2, "Subtotal", align.Right),
	)
}

func itemRow(it *repository.PurchaseItemView) core.Row {
	variant := "—"
	if it.VariantID != nil {
		variant = fmt.Sprintf("%s / %s / %s", orDash(it.SKU), orDash(it.ColorName), orDash(it.SizeCode))
	}
	subtotal := it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
	cell := func(size int, value string, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		cell(1, fmt.Sprintf("%d", it.Quantity), align.Center),
		cell(5, it.ProductName, align.Left),
		cell(3, variant, align.Left),
		cell(1, it.UnitPrice.StringFixed(2), align.Right),
		cell(2, subtotal.StringFixed(2), align.Right),
	)
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(8).Add(
		col.New(10).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
		})),
		col.New(2).Add(text.New("$ "+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}
