package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	APIToken    string
	PageLimit   int
	PageDelay   time.Duration
	HTTPTimeout time.Duration
	LocationIDs []int64

	SnapshotDB   string
	FetchOnStart bool

	OrdersCSV        string
	FulfillableCSV   string
	UnfulfillableCSV string
	MiscCSV          string

	RabbitURL   string
	ResultQueue string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// lista separada por comas, p.ej. "12345,67890"
func getenvInt64s(key string) []int64 {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []int64
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, err := strconv.ParseInt(part, 10, 64); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func LoadConfig() Config {
	// .env opcional para desarrollo local
	_ = godotenv.Load()

	return Config{
		APIBaseURL:  getenv("BOXHERO_BASE_URL", "https://rest.boxhero-app.com"),
		APIToken:    getenv("BOXHERO_API_TOKEN", ""),
		PageLimit:   getenvInt("BOXHERO_PAGE_LIMIT", 100),
		PageDelay:   getenvDuration("BOXHERO_PAGE_DELAY", 600*time.Millisecond),
		HTTPTimeout: getenvDuration("BOXHERO_HTTP_TIMEOUT", 15*time.Second),
		LocationIDs: getenvInt64s("BOXHERO_LOCATION_IDS"),

		SnapshotDB:   getenv("SNAPSHOT_DB_PATH", "snapshot.db"),
		FetchOnStart: getenv("FETCH_ON_START", "true") == "true",

		OrdersCSV:        getenv("ORDERS_CSV", "merged_labels.csv"),
		FulfillableCSV:   getenv("FULFILLABLE_CSV", "fulfillable.csv"),
		UnfulfillableCSV: getenv("UNFULFILLABLE_CSV", "unfulfillable.csv"),
		MiscCSV:          getenv("MISC_CSV", "misc.csv"),

		RabbitURL:   getenv("RABBITMQ_URL", ""),
		ResultQueue: getenv("Q_RECONCILE_RESULT", "stockcheck.run.result"),
	}
}
