package main

// Item: un registro de inventario tal como lo entrega el API (o el snapshot).
// quantity ausente = 0, sku ausente = "".
type Item struct {
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
	SKU      string `json:"sku"`
}

// LineItem: una demanda (barcode, cantidad) extraída de una etiqueta.
type LineItem struct {
	Barcode string
	Qty     int
}

// OrderRow: una fila del batch de órdenes. Fields conserva todas las
// columnas originales en su orden; Label es el valor de custom_label.
type OrderRow struct {
	Fields []string
	Label  string
}

// FulfilledRow lleva la anotación sku_qty construida al reservar.
type FulfilledRow struct {
	OrderRow
	SkuQty string
}

// Partition: cada fila de entrada termina en exactamente uno de los tres.
type Partition struct {
	Fulfillable   []FulfilledRow
	Unfulfillable []OrderRow
	Misc          []OrderRow
}

func (p Partition) Total() int {
	return len(p.Fulfillable) + len(p.Unfulfillable) + len(p.Misc)
}

// RunResult: resumen publicado al final de una corrida.
type RunResult struct {
	RunID         string `json:"run_id"`
	Total         int    `json:"total"`
	Fulfillable   int    `json:"fulfillable"`
	Unfulfillable int    `json:"unfulfillable"`
	Misc          int    `json:"misc"`
}
