package mapper

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		id   uint8
		want Strategy
	}{
		{0, Standard},
		{1, Standard},
		{2, Standard},
		{3, Standard},
		{4, Standard},
		{5, Standard},
		{66, Standard},
		{71, Standard},
		{9, MMC2Unsupported},
		{7, AxROMUnsupported},
		{11, AxROMUnsupported},
		{34, AxROMUnsupported},
		{10, Unknown},  // MMC4, named but not bucketed
		{13, Unknown},  // CPROM
		{118, Unknown}, // TLSROM
		{119, Unknown}, // TQROM
		{6, Unknown},
		{255, Unknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.id); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.id, got, tt.want)
		}
	}
}

func TestClassifyTotal(t *testing.T) {
	// Every possible mapper number maps to some strategy.
	for id := 0; id < 256; id++ {
		strat := Classify(uint8(id))
		if strat > Unknown {
			t.Fatalf("Classify(%d) = %d, not a valid strategy", id, strat)
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		id   uint8
		want string
	}{
		{0, "NROM"},
		{9, "MMC2"},
		{71, "Camerica"},
		{255, ""},
	}

	for _, tt := range tests {
		if got := Name(tt.id); got != tt.want {
			t.Errorf("Name(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestStrategyString(t *testing.T) {
	tests := []struct {
		strat Strategy
		want  string
	}{
		{Standard, "Standard"},
		{MMC2Unsupported, "MMC2Unsupported"},
		{AxROMUnsupported, "AxROMUnsupported"},
		{Unknown, "Unknown"},
		{Strategy(42), "Strategy(42)"},
	}

	for _, tt := range tests {
		if got := tt.strat.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
