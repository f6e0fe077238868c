// Package pdf implementa la representación gráfica de la factura de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Local + NIT  │  N° Factura + Fecha                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Tel / Email de la sucursal             │
//	│  RECEPTOR: Nombre + NIT + contacto del cliente              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Total                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / IVA / TOTAL A PAGAR        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/getlatam/getla-api/internal/application/facturacion"
	"github.com/getlatam/getla-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoFacturaGenerator implementa facturacion.GeneradorPDF usando Maroto v2.
type MarotoFacturaGenerator struct{}

// NewMarotoFacturaGenerator construye el generador.
func NewMarotoFacturaGenerator() *MarotoFacturaGenerator { return &MarotoFacturaGenerator{} }

// GenerarFacturaPDF genera el PDF y devuelve sus bytes.
func (g *MarotoFacturaGenerator) GenerarFacturaPDF(
	_ context.Context,
	factura *entity.Factura,
	cabecera *entity.Cabecera,
	cliente *entity.Cliente,
	lineas []facturacion.LineaPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+factura.NumeroFactura, true).
		WithAuthor(cabecera.Local, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(factura, cabecera))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emisorRow(cabecera))
	m.AddRows(receptorRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(lineas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(factura))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: local + NIT (izq) y N° Factura + Fecha (der).
func headerRow(factura *entity.Factura, cabecera *entity.Cabecera) core.Row {
	fecha := factura.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(cabecera.Local, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+cabecera.Nit, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(factura.NumeroFactura, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// emisorRow: datos de la sucursal que emite.
func emisorRow(cabecera *entity.Cabecera) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL EMISOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(cabecera.Direccion, "—"),
				nonEmpty(cabecera.Telefono, "—"),
				nonEmpty(cabecera.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// receptorRow: datos del cliente.
func receptorRow(cliente *entity.Cliente) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("NIT: %s   |   Ciudad: %s   |   Tel: %s",
				cliente.Nit,
				nonEmpty(cliente.Ciudad, "—"),
				nonEmpty(cliente.Telefono, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción del producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea de factura.
func tableDetailRows(lineas []facturacion.LineaPDF) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				l.Cantidad.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.ProductoNombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(l.PrecioUnitario.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(l.TotalLinea.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(factura *entity.Factura) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(32).Add(
		col.New(3), // espacio izquierdo
		col.New(3).Add(
			label("Subtotal:"),
			label("Descuento:"),
			label("IVA (19%):"),
			grandLabel("TOTAL A PAGAR:"),
		),
		col.New(3).Add(
			value("$"+formatMoney(factura.Subtotal.StringFixed(0))),
			value("$"+formatMoney(factura.Descuento.StringFixed(0))),
			value("$"+formatMoney(factura.IVA.StringFixed(0))),
			grandValue("$"+formatMoney(factura.Total.StringFixed(0))),
		),
		col.New(3), // espacio derecho
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
