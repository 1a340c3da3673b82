package main

import (
	"encoding/csv"
	"fmt"
	"os"
)

const labelColumn = "custom_label"

type ErrNoOrders struct{ Path string }

func (e ErrNoOrders) Error() string { return "no order batch: " + e.Path }

// OrderBatch: el CSV de órdenes con su header original intacto.
type OrderBatch struct {
	Header []string
	Rows   []OrderRow
}

// ReadOrderBatch lee el batch completo. La columna custom_label se ubica
// por nombre; si no existe, cada fila queda con etiqueta vacía (y por lo
// tanto terminará en misc). Un CSV ilegible es condición fatal de corrida.
func ReadOrderBatch(path string) (*OrderBatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrNoOrders{Path: path}
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoOrders{Path: path}, err)
	}
	if len(records) == 0 {
		return nil, ErrNoOrders{Path: path}
	}

	header := records[0]
	labelIdx := -1
	for i, name := range header {
		if name == labelColumn {
			labelIdx = i
			break
		}
	}

	batch := &OrderBatch{Header: header, Rows: make([]OrderRow, 0, len(records)-1)}
	for _, rec := range records[1:] {
		row := OrderRow{Fields: rec}
		if labelIdx >= 0 && labelIdx < len(rec) {
			row.Label = rec[labelIdx]
		}
		batch.Rows = append(batch.Rows, row)
	}
	return batch, nil
}

// WritePartition escribe los tres CSV de salida. Las columnas y el header
// de entrada se conservan tal cual; fulfillable agrega sku_qty al final.
func WritePartition(batch *OrderBatch, p Partition, cfg Config) error {
	fulfillable := make([][]string, 0, len(p.Fulfillable))
	for _, row := range p.Fulfillable {
		fulfillable = append(fulfillable, append(append([]string{}, row.Fields...), row.SkuQty))
	}
	if err := writeCSV(cfg.FulfillableCSV, append(append([]string{}, batch.Header...), "sku_qty"), fulfillable); err != nil {
		return err
	}
	if err := writeCSV(cfg.UnfulfillableCSV, batch.Header, fieldRows(p.Unfulfillable)); err != nil {
		return err
	}
	return writeCSV(cfg.MiscCSV, batch.Header, fieldRows(p.Misc))
}

func fieldRows(rows []OrderRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Fields)
	}
	return out
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, rec := range rows {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
