package main

import (
	"context"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := LoadConfig()
	runID := uuid.NewString()
	log.Info().
		Str("run_id", runID).
		Str("api", cfg.APIBaseURL).
		Str("snapshot_db", cfg.SnapshotDB).
		Str("orders", cfg.OrdersCSV).
		Bool("fetch", cfg.FetchOnStart).
		Msg("starting stock check")

	ctx := context.Background()

	snap, err := OpenSnapshot(cfg.SnapshotDB)
	must(err)
	defer snap.Close()

	// Inventario: fetch completo del API o relectura del snapshot local.
	// El loader materializa todo antes de que arranque el motor.
	var items []Item
	if cfg.FetchOnStart {
		client := NewBoxHeroClient(cfg)
		items, err = client.FetchAllItems(ctx, cfg.LocationIDs)
		if err != nil {
			log.Fatal().Err(err).Msg("no usable inventory: fetch failed")
		}
		log.Info().Str("count", humanize.Comma(int64(len(items)))).Msg("items fetched")
		if err := snap.Replace(ctx, items); err != nil {
			log.Error().Err(err).Msg("snapshot save failed")
		}
	} else {
		items, err = snap.Load(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("no usable inventory: snapshot load failed")
		}
		log.Info().Str("count", humanize.Comma(int64(len(items)))).Msg("items loaded from snapshot")
	}

	ledger, err := BuildLedger(items)
	if err != nil {
		log.Fatal().Err(err).Msg("no usable inventory")
	}
	log.Info().Int("barcodes", ledger.Len()).Msg("stock ledger ready")

	batch, err := ReadOrderBatch(cfg.OrdersCSV)
	if err != nil {
		log.Fatal().Err(err).Msg("no order batch")
	}
	log.Info().Int("rows", len(batch.Rows)).Msg("order batch loaded")

	p := Reconcile(ledger, batch.Rows)
	must(WritePartition(batch, p, cfg))

	res := RunResult{
		RunID:         runID,
		Total:         p.Total(),
		Fulfillable:   len(p.Fulfillable),
		Unfulfillable: len(p.Unfulfillable),
		Misc:          len(p.Misc),
	}
	log.Info().
		Str("run_id", res.RunID).
		Str("fulfillable", humanize.Comma(int64(res.Fulfillable))).
		Str("unfulfillable", humanize.Comma(int64(res.Unfulfillable))).
		Str("misc", humanize.Comma(int64(res.Misc))).
		Str("fulfillable_csv", cfg.FulfillableCSV).
		Str("unfulfillable_csv", cfg.UnfulfillableCSV).
		Str("misc_csv", cfg.MiscCSV).
		Msg("processing complete")

	// Evento de resumen, solo si hay broker configurado
	rabbit, err := NewRabbit(cfg.RabbitURL, cfg.ResultQueue)
	if err != nil {
		log.Error().Err(err).Msg("rabbit connect failed")
	} else {
		defer rabbit.Close()
		if err := rabbit.PublishResult(ctx, res); err != nil {
			log.Error().Err(err).Msg("publish result failed")
		}
	}
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
