package layout

import (
	"testing"
)

func TestPRGOffsets(t *testing.T) {
	t.Run("no trainer", func(t *testing.T) {
		offs := BankOffsets{Trainer: false, PRGPages: 2}
		if got := offs.PRG(1); got != 16 {
			t.Errorf("PRG(1) = %d, want 16", got)
		}
		if got := offs.PRG(2); got != 16400 {
			t.Errorf("PRG(2) = %d, want 16400", got)
		}
	})

	t.Run("trainer", func(t *testing.T) {
		offs := BankOffsets{Trainer: true, PRGPages: 2}
		if got := offs.PRG(1); got != 16+512 {
			t.Errorf("PRG(1) = %d, want %d", got, 16+512)
		}
		if got := offs.PRG(2); got != 16400+512 {
			t.Errorf("PRG(2) = %d, want %d", got, 16400+512)
		}
	})
}

func TestCHROffsets(t *testing.T) {
	t.Run("no trainer", func(t *testing.T) {
		offs := BankOffsets{Trainer: false, PRGPages: 2}
		if got := offs.CHR(1); got != 16+2*16384 {
			t.Errorf("CHR(1) = %d, want %d", got, 16+2*16384)
		}
		if got := offs.CHR(2); got != 16+2*16384+8192 {
			t.Errorf("CHR(2) = %d, want %d", got, 16+2*16384+8192)
		}
	})

	t.Run("trainer", func(t *testing.T) {
		offs := BankOffsets{Trainer: true, PRGPages: 1}
		if got := offs.CHR(1); got != 16+512+16384 {
			t.Errorf("CHR(1) = %d, want %d", got, 16+512+16384)
		}
	})
}
