// Package pdf implementa la generación del extracto de cuenta imprimible
// que el tendero entrega a su cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda │ Dirección / Teléfono         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILLED TO: Nombre + teléfono + dirección del cliente       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Descripción | Débito | Crédito | Saldo      │
//	│         (primera fila: Opening Balance)                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL BALANCE DUE                                          │
//	│  FOOTER: condiciones de la tienda                           │
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
	"github.com/shopspring/decimal"

	appledger "github.com/jhoicas/fiado-api/internal/application/ledger"
	"github.com/jhoicas/fiado-api/internal/domain/entity"
	domledger "github.com/jhoicas/fiado-api/internal/domain/ledger"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 128, Green: 0, Blue: 64}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appledger.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// ShopInfo datos de la tienda que encabezan el extracto.
type ShopInfo struct {
	Name    string
	Address string
	Phone   string
	Terms   string
}

// MarotoStatementGenerator implementa ledger.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct {
	shop ShopInfo
}

// NewMarotoStatementGenerator construye el generador con los datos de la tienda.
func NewMarotoStatementGenerator(shop ShopInfo) *MarotoStatementGenerator {
	return &MarotoStatementGenerator{shop: shop}
}

// GenerateStatementPDF genera el PDF del extracto y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	customer *entity.Customer,
	statement domledger.Statement,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Extracto de cuenta - "+customer.Name, true).
		WithAuthor(g.shop.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billedToRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de movimientos: apertura primero, luego cada movimiento con saldo.
	m.AddRows(tableHeaderRow())
	m.AddRows(openingBalanceRow(statement.OpeningBalance))
	for _, r := range tableLineRows(statement.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalDueRow(customer.OutstandingBalance))

	m.AddRows(line.NewRow(3))
	m.AddRows(g.footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar extracto: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y dirección/teléfono (der).
func (g *MarotoStatementGenerator) headerRow() core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.shop.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ACCOUNT STATEMENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(nonEmpty(g.shop.Address, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Tel: "+nonEmpty(g.shop.Phone, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// billedToRow: datos del cliente titular de la cuenta.
func billedToRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILLED TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   %s",
				nonEmpty(customer.Phone, "—"),
				nonEmpty(customer.Address, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Venta (Débito)", 2, align.Right),
		h("Abono/Dev. (Crédito)", 2, align.Right),
		h("Saldo", 2, align.Right),
	)
}

// openingBalanceRow: primera fila de la tabla, saldo anterior al período.
func openingBalanceRow(opening decimal.Decimal) core.Row {
	return row.New(7).Add(
		col.New(2),
		col.New(4).Add(text.New("Opening Balance", props.Text{
			Style: fontstyle.Italic, Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2),
		col.New(2),
		col.New(2).Add(text.New(money(opening), props.Text{
			Style: fontstyle.Italic, Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// tableLineRows: una fila por movimiento, con el monto en la columna de
// débito (ventas) o de crédito (abonos y devoluciones) y el saldo corrido.
func tableLineRows(lines []domledger.Line) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		debit, credit := "", ""
		if l.Transaction.Type == entity.TransactionSale {
			debit = money(l.Transaction.Amount)
		} else {
			credit = money(l.Transaction.Amount)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.Transaction.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				l.Transaction.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				debit,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				credit,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				money(l.RunningBalance),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalDueRow: total adeudado al cierre del extracto.
func totalDueRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(4).Add(text.New("TOTAL BALANCE DUE:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(money(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// footerRow: condiciones de la tienda.
func (g *MarotoStatementGenerator) footerRow() core.Row {
	terms := nonEmpty(g.shop.Terms, "No Return, No Exchange")
	return row.New(8).Add(col.New(12).Add(
		text.New(terms, props.Text{
			Size: 7, Align: align.Center, Color: colorGray, Top: 2,
		}),
		text.New("Thank you for your business.", props.Text{
			Size: 7, Align: align.Center, Color: colorGray, Top: 6,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money formatea un monto con dos decimales y el prefijo de moneda.
func money(d decimal.Decimal) string {
	return "Rs. " + d.StringFixed(2)
}
