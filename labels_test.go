package main

import (
	"reflect"
	"testing"
)

func TestParseLabel(t *testing.T) {
	cases := []struct {
		name  string
		label string
		want  []LineItem
	}{
		{"single item", "[a]/[b] 111222*4", []LineItem{{"111222", 4}}},
		{"multiple items", "[x]/[y] 111*2, 222*3, 333*1", []LineItem{{"111", 2}, {"222", 3}, {"333", 1}}},
		{"whitespace around star and commas", "[x]/[y]  111 * 2 ,  222*3", []LineItem{{"111", 2}, {"222", 3}}},
		{"barcode split on last star", "[x]/[y] 1*2*3", []LineItem{{"1*2", 3}}},
		{"note token still parses", "[x]/[y] NOTE*2", []LineItem{{"NOTE", 2}}},
		{"empty barcode still parses", "[x]/[y] *5", []LineItem{{"", 5}}},
		{"no prefix", "111222*4", nil},
		{"half prefix", "[a] 111*2", nil},
		{"empty content", "[a]/[b]", nil},
		{"empty content with space", "[a]/[b]   ", nil},
		{"token without star invalidates all", "[x]/[y] 123*2, 456", nil},
		{"empty token invalidates all", "[x]/[y] 123*2, , 456*1", nil},
		{"non digit qty", "[x]/[y] 123*two", nil},
		{"empty qty", "[x]/[y] 123*", nil},
		{"negative qty", "[x]/[y] 123*-1", nil},
		{"empty label", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseLabel(tc.label)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseLabel(%q) = %v, want %v", tc.label, got, tc.want)
			}
		})
	}
}

func TestParseLabelIdempotent(t *testing.T) {
	label := "[a]/[b] 111*2, 222*3"
	first := ParseLabel(label)
	second := ParseLabel(label)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two parses differ: %v vs %v", first, second)
	}
}

func TestLooksMisc(t *testing.T) {
	cases := []struct {
		name  string
		items []LineItem
		want  bool
	}{
		{"all numeric-first", []LineItem{{"111", 1}, {"2abc", 2}}, false},
		{"letter-first barcode", []LineItem{{"111", 1}, {"NOTE", 2}}, true},
		{"empty barcode", []LineItem{{"", 5}}, true},
		{"symbol-first barcode", []LineItem{{"-123", 1}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := looksMisc(tc.items); got != tc.want {
				t.Fatalf("looksMisc(%v) = %v, want %v", tc.items, got, tc.want)
			}
		})
	}
}
