// Package ines decodes ROM images in the iNES file format, used for the
// distribution of NES binary programs.
package ines

import (
	"errors"
	"fmt"
	"io"
	"os"

	"nesld/log"
)

// Magic is the 4-byte signature every iNES image starts with.
const Magic = "NES\x1a"

// HeaderSize is the size in bytes of the iNES header.
const HeaderSize = 16

// TrainerSize is the size in bytes of the optional trainer section.
const TrainerSize = 512

const (
	// PRGPageSize is the size in bytes of one PRG-ROM page.
	PRGPageSize = 16384
	// CHRPageSize is the size in bytes of one CHR-ROM page.
	CHRPageSize = 8192
)

// ErrInvalidFormat reports a source that is not an iNES image, either because
// it is shorter than a full header or because it doesn't start with the magic
// signature.
var ErrInvalidFormat = errors.New("not an iNES image")

// Header is the decoded fixed-size iNES header.
type Header struct {
	PRGPages uint8 // number of 16KB PRG-ROM pages
	CHRPages uint8 // number of 8KB CHR-ROM pages
	Control0 uint8 // mapper low nibble, SRAM, trainer and mirroring bits
	Control1 uint8 // mapper high nibble
	RAMPages uint8 // number of 8KB PRG-RAM pages
}

// DecodeHeader decodes the first HeaderSize bytes of p into a Header. The last
// 7 header bytes are reserved and ignored.
func DecodeHeader(p []byte) (Header, error) {
	var hdr Header
	if len(p) < HeaderSize {
		return hdr, fmt.Errorf("%w: got %d bytes, header is %d", ErrInvalidFormat, len(p), HeaderSize)
	}
	if string(p[:len(Magic)]) != Magic {
		return hdr, fmt.Errorf("%w: bad magic number", ErrInvalidFormat)
	}

	hdr.PRGPages = p[4]
	hdr.CHRPages = p[5]
	hdr.Control0 = p[6]
	hdr.Control1 = p[7]
	hdr.RAMPages = p[8]
	return hdr, nil
}

// HasTrainer indicates the presence of a 512-byte trainer section, stored
// between the header and PRG data.
func (hdr Header) HasTrainer() bool {
	return hdr.Control0&0x04 != 0
}

// HasPersistent indicates the presence of battery-backed PRG-RAM
// ($6000-$7FFF) or other persistent memory.
func (hdr Header) HasPersistent() bool {
	return hdr.Control0&0x02 != 0
}

// Mapper returns the mapper number, assembled from the high nibbles of the
// two control bytes.
func (hdr Header) Mapper() uint8 {
	return hdr.Control0>>4 | hdr.Control1&0xF0
}

// PRGSize returns the size in bytes of the PRG-ROM section.
func (hdr Header) PRGSize() int {
	return int(hdr.PRGPages) * PRGPageSize
}

// CHRSize returns the size in bytes of the CHR-ROM section.
func (hdr Header) CHRSize() int {
	return int(hdr.CHRPages) * CHRPageSize
}

// Rom is a whole iNES image held in memory. The original file bytes are kept
// as-is since bank offsets are computed against the raw byte stream, header
// included.
type Rom struct {
	Header

	data []byte
}

// ReadRom loads a rom from file.
func ReadRom(path string) (*Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rom := new(Rom)
	if _, err := rom.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rom, nil
}

// ReadFrom implements the io.ReaderFrom interface.
func (rom *Rom) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	hdr, err := DecodeHeader(buf)
	if err != nil {
		return 0, err
	}
	rom.Header = hdr
	rom.data = buf

	log.ModInes.DebugZ("decoded header").
		Uint("prgpages", uint64(hdr.PRGPages)).
		Uint("chrpages", uint64(hdr.CHRPages)).
		Hex8("mapper", hdr.Mapper()).
		Bool("trainer", hdr.HasTrainer()).
		End()
	return int64(len(buf)), nil
}

// Bytes returns the raw image bytes, header included.
func (rom *Rom) Bytes() []byte {
	return rom.data
}

// Size returns the total size in bytes of the image.
func (rom *Rom) Size() int {
	return len(rom.data)
}

// PrintInfos writes a human readable summary of the rom header to w.
func (rom *Rom) PrintInfos(w io.Writer) {
	fmt.Fprintf(w, "signature:          %q\n", Magic)
	fmt.Fprintf(w, "16KB PRG-ROM pages: %d (%d bytes)\n", rom.PRGPages, rom.PRGSize())
	fmt.Fprintf(w, "8KB CHR-ROM pages:  %d (%d bytes)\n", rom.CHRPages, rom.CHRSize())
	fmt.Fprintf(w, "control byte 0:     0x%02X\n", rom.Control0)
	fmt.Fprintf(w, "control byte 1:     0x%02X\n", rom.Control1)
	fmt.Fprintf(w, "8KB PRG-RAM pages:  %d\n", rom.RAMPages)
	fmt.Fprintf(w, "mapper:             %d\n", rom.Mapper())
	fmt.Fprintf(w, "trainer:            %t\n", rom.HasTrainer())
	fmt.Fprintf(w, "persistent memory:  %t\n", rom.HasPersistent())
}
