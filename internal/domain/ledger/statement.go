package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiado-api/internal/domain/entity"
)

// Line un movimiento con su saldo corrido: el saldo inmediatamente después
// de aplicar ese movimiento.
type Line struct {
	Transaction    entity.Transaction
	RunningBalance decimal.Decimal
}

// Statement proyección derivada para el extracto imprimible.
// OpeningBalance es el saldo inmediatamente antes del movimiento más antiguo.
type Statement struct {
	OpeningBalance decimal.Decimal
	Lines          []Line
}

// DeriveStatement deriva saldo de apertura y saldos corridos anclados en el
// saldo actual autoritativo del cliente:
//
//  1. Ordena los movimientos ascendente por fecha. Los empates se desempatan
//     por ID para que la derivación sea determinista y reproducible.
//  2. apertura = saldoActual - Σ efecto(movimiento).
//  3. Left-fold desde la apertura acumulando el efecto de cada movimiento.
//
// Reproducir los movimientos en orden cronológico desde la apertura devuelve
// exactamente el saldo actual después del último. Con cero movimientos la
// apertura es el saldo actual y no hay líneas.
func DeriveStatement(currentBalance decimal.Decimal, txs []entity.Transaction) Statement {
	if len(txs) == 0 {
		return Statement{OpeningBalance: currentBalance}
	}

	sorted := make([]entity.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	opening := currentBalance.Sub(NetEffect(sorted))

	lines := make([]Line, 0, len(sorted))
	running := opening
	for _, tx := range sorted {
		running = running.Add(tx.Type.Effect(tx.Amount))
		lines = append(lines, Line{Transaction: tx, RunningBalance: running})
	}

	return Statement{OpeningBalance: opening, Lines: lines}
}

// DeriveTable variante simplificada para la tabla en pantalla.
//
// Recibe los movimientos en el orden de presentación (más reciente primero)
// y un saldo inicial opcional. Si initialBalance es nil, el saldo de partida
// es la suma neta de los efectos de los movimientos visibles: una
// simplificación documentada, solo válida cuando el caller no tiene un saldo
// actual autoritativo contra el cual anclar. Cada fila lleva el saldo tal
// como estaba después de ese movimiento; al descender se le resta el efecto.
//
// Se mantiene separada de DeriveStatement a propósito: la UI consume cada
// variante en un contexto distinto (extracto imprimible vs. tabla simple).
func DeriveTable(txs []entity.Transaction, initialBalance *decimal.Decimal) []Line {
	balance := NetEffect(txs)
	if initialBalance != nil {
		balance = *initialBalance
	}

	lines := make([]Line, 0, len(txs))
	for _, tx := range txs {
		lines = append(lines, Line{Transaction: tx, RunningBalance: balance})
		balance = balance.Sub(tx.Type.Effect(tx.Amount))
	}
	return lines
}
