package symbols

import (
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		addr uint16
		want string
	}{
		{0xFFFC, "RESET_vector"},
		{0x2000, "PPU_Control_Register_1"},
		{0x4017, "Joypad_#2/APU_SOFTCLK_(RW)"},
		{0x8000, ""},
	}

	for _, tt := range tests {
		if got := Lookup(tt.addr); got != tt.want {
			t.Errorf("Lookup(%#04x) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestNoDuplicateAddrs(t *testing.T) {
	seen := make(map[uint16]string, len(HW))
	for _, s := range HW {
		if prev, ok := seen[s.Addr]; ok {
			t.Errorf("address %#04x named twice: %q and %q", s.Addr, prev, s.Name)
		}
		seen[s.Addr] = s.Name
	}
}
