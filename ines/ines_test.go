package ines

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rawHeader(prg, chr, ctrl0, ctrl1, ram uint8) []byte {
	buf := []byte(Magic)
	buf = append(buf, prg, chr, ctrl0, ctrl1, ram)
	return append(buf, make([]byte, 7)...)
}

func TestDecodeHeader(t *testing.T) {
	hdr, err := DecodeHeader(rawHeader(2, 1, 0x42, 0x10, 3))
	if err != nil {
		t.Fatal(err)
	}

	want := Header{
		PRGPages: 2,
		CHRPages: 1,
		Control0: 0x42,
		Control1: 0x10,
		RAMPages: 3,
	}
	if diff := cmp.Diff(want, hdr); diff != "" {
		t.Fatalf("header differs (-want +got):\n%s", diff)
	}
}

func TestDecodeHeaderInvalid(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		_, err := DecodeHeader(make([]byte, HeaderSize-1))
		if !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("got %v, want ErrInvalidFormat", err)
		}
	})

	t.Run("bad magic", func(t *testing.T) {
		buf := rawHeader(1, 1, 0, 0, 0)
		buf[0] = 'M'
		_, err := DecodeHeader(buf)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("got %v, want ErrInvalidFormat", err)
		}
	})
}

func TestHeaderBits(t *testing.T) {
	tests := []struct {
		ctrl0, ctrl1  uint8
		trainer, sram bool
		mapper        uint8
	}{
		{0x00, 0x00, false, false, 0},
		{0x04, 0x00, true, false, 0},
		{0x02, 0x00, false, true, 0},
		{0x06, 0x00, true, true, 0},
		{0x10, 0x00, false, false, 1},
		{0x90, 0x00, false, false, 9},
		{0x70, 0x40, false, false, 71},
		{0xF0, 0xF0, false, false, 255},
	}

	for _, tt := range tests {
		hdr := Header{Control0: tt.ctrl0, Control1: tt.ctrl1}
		if got := hdr.HasTrainer(); got != tt.trainer {
			t.Errorf("ctrl0=%#02x: HasTrainer() = %t, want %t", tt.ctrl0, got, tt.trainer)
		}
		if got := hdr.HasPersistent(); got != tt.sram {
			t.Errorf("ctrl0=%#02x: HasPersistent() = %t, want %t", tt.ctrl0, got, tt.sram)
		}
		if got := hdr.Mapper(); got != tt.mapper {
			t.Errorf("ctrl0=%#02x ctrl1=%#02x: Mapper() = %d, want %d", tt.ctrl0, tt.ctrl1, got, tt.mapper)
		}
	}
}

func TestMapperDerivationDeterministic(t *testing.T) {
	// Same bytes in, same mapper number out: decoding holds no hidden state.
	buf := rawHeader(1, 1, 0x73, 0xC2, 0)
	first, err := DecodeHeader(buf)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		hdr, err := DecodeHeader(buf)
		if err != nil {
			t.Fatal(err)
		}
		if hdr.Mapper() != first.Mapper() {
			t.Fatalf("Mapper() = %d, want %d", hdr.Mapper(), first.Mapper())
		}
	}
}

func TestRomReadFrom(t *testing.T) {
	img := rawHeader(1, 1, 0, 0, 0)
	img = append(img, make([]byte, PRGPageSize+CHRPageSize)...)

	rom := new(Rom)
	n, err := rom.ReadFrom(bytes.NewReader(img))
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(img)) {
		t.Fatalf("ReadFrom returned %d, want %d", n, len(img))
	}
	if rom.Size() != len(img) {
		t.Fatalf("Size() = %d, want %d", rom.Size(), len(img))
	}
	if !bytes.Equal(rom.Bytes(), img) {
		t.Fatal("Bytes() differs from the source image")
	}
	if rom.PRGSize() != PRGPageSize || rom.CHRSize() != CHRPageSize {
		t.Fatalf("PRGSize()=%d CHRSize()=%d", rom.PRGSize(), rom.CHRSize())
	}
}
