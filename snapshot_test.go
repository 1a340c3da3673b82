package main

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.db")
	snap, err := OpenSnapshot(path)
	if err != nil {
		t.Fatalf("OpenSnapshot: %v", err)
	}
	defer snap.Close()

	ctx := context.Background()
	items := []Item{
		{Barcode: "111", Quantity: 5, SKU: "SKU-A"},
		{Barcode: "", Quantity: 2, SKU: ""},
		{Barcode: "222", Quantity: 0, SKU: "SKU-B"},
	}
	if err := snap.Replace(ctx, items); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	got, err := snap.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("round trip = %+v, want %+v", got, items)
	}

	// Replace debe pisar el snapshot anterior completo
	fresh := []Item{{Barcode: "333", Quantity: 9, SKU: "SKU-C"}}
	if err := snap.Replace(ctx, fresh); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	got, err = snap.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, fresh) {
		t.Fatalf("after replace = %+v, want %+v", got, fresh)
	}
}

func TestSnapshotEmptyLoad(t *testing.T) {
	snap, err := OpenSnapshot(filepath.Join(t.TempDir(), "snapshot.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer snap.Close()

	got, err := snap.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty snapshot, got %d items", len(got))
	}
}
