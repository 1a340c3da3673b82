package main

import (
	"fmt"
	"strings"
)

const skuUnknown = "UNKNOWN"

type stockEntry struct {
	Qty int
	SKU string
}

// Ledger: tabla mutable barcode -> (cantidad restante, sku) para una
// corrida. Se construye desde el snapshot y se descarta al terminar.
type Ledger struct {
	entries map[string]stockEntry
}

type ErrNoInventory struct{}

func (ErrNoInventory) Error() string { return "no usable inventory" }

// BuildLedger arma el ledger desde los items; descarta los que no traen
// barcode. Si no queda ninguno la corrida no puede continuar.
func BuildLedger(items []Item) (*Ledger, error) {
	l := &Ledger{entries: make(map[string]stockEntry, len(items))}
	for _, it := range items {
		if it.Barcode == "" {
			continue
		}
		l.entries[it.Barcode] = stockEntry{Qty: it.Quantity, SKU: it.SKU}
	}
	if len(l.entries) == 0 {
		return nil, ErrNoInventory{}
	}
	return l, nil
}

func (l *Ledger) Len() int { return len(l.entries) }

// Quantity: cantidad restante para un barcode (para verificación).
func (l *Ledger) Quantity(barcode string) (int, bool) {
	e, ok := l.entries[barcode]
	return e.Qty, ok
}

// Reserve aplica una reserva todo-o-nada: primero valida que CADA item
// exista con cantidad suficiente contra el estado actual; solo entonces
// descuenta todos juntos. Si algo falta no se toca nada y devuelve ok=false.
// Devuelve además la anotación "SKU*qty, SKU*qty" construida al reservar.
func (l *Ledger) Reserve(items []LineItem) (skuQty string, ok bool) {
	// Valida disponibilidad. La demanda se acumula por barcode para que
	// un barcode repetido dentro de la misma orden cuente junto y el
	// stock nunca quede negativo.
	need := make(map[string]int, len(items))
	for _, it := range items {
		e, found := l.entries[it.Barcode]
		need[it.Barcode] += it.Qty
		if !found || e.Qty < need[it.Barcode] {
			return "", false
		}
	}

	// Aplicar descuentos y armar sku*qty
	parts := make([]string, 0, len(items))
	for _, it := range items {
		e := l.entries[it.Barcode]
		e.Qty -= it.Qty
		l.entries[it.Barcode] = e

		sku := e.SKU
		if sku == "" {
			sku = skuUnknown
		}
		parts = append(parts, fmt.Sprintf("%s*%d", sku, it.Qty))
	}
	return strings.Join(parts, ", "), true
}
