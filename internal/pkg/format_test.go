package pkg_test

import (
	"testing"

	"github.com/alternativafozthiago/financas/internal/pkg"
)

func TestFormatBRL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount float64
		want   string
	}{
		{0, "R$ 0,00"},
		{0.5, "R$ 0,50"},
		{99.9, "R$ 99,90"},
		{1234.56, "R$ 1.234,56"},
		{1000000, "R$ 1.000.000,00"},
		{1299.999, "R$ 1.300,00"},
		{-450.75, "-R$ 450,75"},
	}

	for _, tt := range tests {
		if got := pkg.FormatBRL(tt.amount); got != tt.want {
			t.Fatalf("FormatBRL(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatDateBR(t *testing.T) {
	t.Parallel()

	if got := pkg.FormatDateBR(pkg.NewDate(2024, 3, 5)); got != "05/03/2024" {
		t.Fatalf("expected 05/03/2024, got %q", got)
	}
	if got := pkg.FormatDateBR(pkg.Date{}); got != "-" {
		t.Fatalf("expected placeholder for zero date, got %q", got)
	}
}
