package main

import (
	"github.com/rs/zerolog/log"
)

type outcome int

const (
	outMisc outcome = iota
	outUnfulfillable
	outFulfillable
)

// Reconcile recorre las filas en orden de entrada y reserva stock de forma
// greedy: una fila anterior puede agotar el stock que necesitaba una
// posterior. Secuencial a propósito — el ledger es estado mutable
// compartido entre filas y el orden le da significado determinista.
func Reconcile(ledger *Ledger, rows []OrderRow) Partition {
	var p Partition
	for _, row := range rows {
		out, skuQty := classifyRow(ledger, row)
		switch out {
		case outFulfillable:
			p.Fulfillable = append(p.Fulfillable, FulfilledRow{OrderRow: row, SkuQty: skuQty})
		case outUnfulfillable:
			p.Unfulfillable = append(p.Unfulfillable, row)
		default:
			p.Misc = append(p.Misc, row)
		}
	}
	return p
}

// classifyRow clasifica una fila contra el estado ACTUAL del ledger.
// Cualquier falla inesperada manda la fila a misc y la corrida sigue;
// una fila mala nunca tumba el batch completo.
func classifyRow(ledger *Ledger, row OrderRow) (out outcome, skuQty string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("cause", r).Str("label", row.Label).Msg("row classification failed")
			out, skuQty = outMisc, ""
		}
	}()

	items := ParseLabel(row.Label)
	if len(items) == 0 {
		return outMisc, ""
	}
	if looksMisc(items) {
		return outMisc, ""
	}
	skuQty, ok := ledger.Reserve(items)
	if !ok {
		// barcode desconocido o stock insuficiente: no es error, solo
		// no se puede cumplir. El ledger queda intacto.
		return outUnfulfillable, ""
	}
	return outFulfillable, skuQty
}
