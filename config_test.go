package main

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.APIBaseURL != "https://rest.boxhero-app.com" {
		t.Fatalf("base url = %q", cfg.APIBaseURL)
	}
	if cfg.PageLimit != 100 || cfg.PageDelay != 600*time.Millisecond {
		t.Fatalf("pagination defaults = %d / %s", cfg.PageLimit, cfg.PageDelay)
	}
	if !cfg.FetchOnStart {
		t.Fatal("fetch should default to on")
	}
	if cfg.RabbitURL != "" {
		t.Fatal("rabbit should default to disabled")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("BOXHERO_PAGE_LIMIT", "25")
	t.Setenv("BOXHERO_PAGE_DELAY", "0s")
	t.Setenv("BOXHERO_LOCATION_IDS", "12345, 67890")
	t.Setenv("FETCH_ON_START", "false")
	t.Setenv("ORDERS_CSV", "/tmp/batch.csv")

	cfg := LoadConfig()
	if cfg.PageLimit != 25 || cfg.PageDelay != 0 {
		t.Fatalf("pagination = %d / %s", cfg.PageLimit, cfg.PageDelay)
	}
	if !reflect.DeepEqual(cfg.LocationIDs, []int64{12345, 67890}) {
		t.Fatalf("location ids = %v", cfg.LocationIDs)
	}
	if cfg.FetchOnStart {
		t.Fatal("FETCH_ON_START=false not honored")
	}
	if cfg.OrdersCSV != "/tmp/batch.csv" {
		t.Fatalf("orders csv = %q", cfg.OrdersCSV)
	}
}
