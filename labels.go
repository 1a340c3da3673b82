package main

import (
	"regexp"
	"strconv"
	"strings"
)

// Etiquetas con la forma `[..]/[..] bc*qty, bc*qty, ...`
var labelRe = regexp.MustCompile(`^\[.*?\]/\[.*?\]\s*(.*)$`)

// ParseLabel extrae los (barcode, cantidad) de una etiqueta.
// Todo-o-nada: cualquier token inválido invalida la etiqueta completa y
// devuelve nil (el caller manda la fila a misc). Sin estado interno.
func ParseLabel(label string) []LineItem {
	m := labelRe.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return nil
	}
	content := strings.TrimSpace(m[1])
	if content == "" {
		return nil
	}

	parts := strings.Split(content, ",")
	items := make([]LineItem, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		i := strings.LastIndex(part, "*")
		if part == "" || i < 0 {
			return nil
		}
		barcode := strings.TrimSpace(part[:i])
		qtyStr := strings.TrimSpace(part[i+1:])
		if !isDigits(qtyStr) {
			return nil
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			return nil
		}
		items = append(items, LineItem{Barcode: barcode, Qty: qty})
	}
	return items
}

// looksMisc: heurística — si algún "barcode" está vacío o no empieza con
// dígito, se asume que es una nota de texto libre y no inventario real.
// La orden completa va a misc y no participa en la aritmética de stock.
func looksMisc(items []LineItem) bool {
	for _, it := range items {
		if it.Barcode == "" || it.Barcode[0] < '0' || it.Barcode[0] > '9' {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
