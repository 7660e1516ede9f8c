// Package layout builds a flat, named memory layout of the NES CPU address
// space from a decoded iNES image, suitable for consumption by a
// binary-analysis host.
package layout

import (
	"fmt"

	"nesld/ines"
	"nesld/log"
	"nesld/mapper"
)

// Geometry of the 16-bit CPU address space.
const (
	RAMStart     = 0x0000
	RAMSize      = 0x2000
	IORegStart   = 0x2000
	IORegSize    = 0x2020
	ExpROMStart  = 0x4020
	ExpROMSize   = 0x1FE0
	SRAMStart    = 0x6000
	SRAMSize     = 0x2000
	TrainerStart = 0x7000
	ROMStart     = 0x8000
	ROMSize      = 0x8000
)

// ResetVector is the address the entry point is read from.
const ResetVector uint16 = 0xFFFC

// Region is a named, contiguous slice of the address space. Data always holds
// Size bytes. Regions no strategy populates stay zero-filled.
type Region struct {
	Name  string
	Start uint32
	Size  uint32
	Data  []byte
}

// Contains reports whether addr falls inside the region.
func (r *Region) Contains(addr uint16) bool {
	return uint32(addr) >= r.Start && uint32(addr) < r.Start+r.Size
}

// AddressSpace is the ordered set of regions covering the CPU address space.
// Regions never overlap.
type AddressSpace struct {
	Regions []*Region
}

func (as *AddressSpace) add(name string, start, size uint32) *Region {
	r := &Region{
		Name:  name,
		Start: start,
		Size:  size,
		Data:  make([]byte, size),
	}
	as.Regions = append(as.Regions, r)
	return r
}

// Region returns the named region, or nil if the space doesn't have it.
func (as *AddressSpace) Region(name string) *Region {
	for _, r := range as.Regions {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Peek8 returns the byte at addr, or 0 if no region maps it.
func (as *AddressSpace) Peek8(addr uint16) uint8 {
	for _, r := range as.Regions {
		if r.Contains(addr) {
			return r.Data[uint32(addr)-r.Start]
		}
	}
	return 0
}

// ReadWord returns the little-endian 16-bit word at addr.
func (as *AddressSpace) ReadWord(addr uint16) uint16 {
	lo := as.Peek8(addr)
	hi := as.Peek8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// DiagKind discriminates the diagnostics a load can raise.
type DiagKind uint8

const (
	// UnsupportedMapper: the classified strategy has no bank-loading
	// implementation. Regions were created but left zero-filled.
	UnsupportedMapper DiagKind = iota
	// TruncatedSource: a bank copy would have read past the end of the
	// source. The destination was left zero-filled.
	TruncatedSource
)

// Diagnostic is a structured, non-fatal load notice.
type Diagnostic struct {
	Kind   DiagKind
	Mapper uint8 // offending mapper number, for UnsupportedMapper
	Err    error // underlying error, for TruncatedSource
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case UnsupportedMapper:
		name := mapper.Name(d.Mapper)
		if name == "" {
			return fmt.Sprintf("mapper %d is not supported", d.Mapper)
		}
		return fmt.Sprintf("mapper %d (%s) is not supported", d.Mapper, name)
	case TruncatedSource:
		return d.Err.Error()
	}
	return fmt.Sprintf("DiagKind(%d)", d.Kind)
}

// TruncatedError reports a bank copy reading past the end of the source
// image.
type TruncatedError struct {
	Offset int // file offset of the first byte of the copy
	Length int // requested length
	Avail  int // total source length
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated source: need bytes [%d, %d), have %d", e.Offset, e.Offset+e.Length, e.Avail)
}

// Result is the output of one load: the populated address space, the entry
// point pair and the diagnostics raised along the way.
type Result struct {
	Space  *AddressSpace
	Vector uint16 // address the entry point is stored at (reset vector)
	Entry  uint16 // entry point, the word read at Vector
	Diags  []Diagnostic
}

// Load runs the whole pipeline on rom: mapper classification followed by
// address space construction.
func Load(rom *ines.Rom) *Result {
	return Build(rom.Header, mapper.Classify(rom.Mapper()), rom.Bytes())
}

// Build allocates and populates the address space of an image whose mapper
// classified as strat. src is the raw image byte stream, header included.
//
// Build never fails: unsupported strategies and truncated copies degrade to
// diagnostics and the returned space is always structurally complete, with
// unpopulated regions zero-filled.
func Build(hdr ines.Header, strat mapper.Strategy, src []byte) *Result {
	as := &AddressSpace{}
	as.add("RAM", RAMStart, RAMSize)
	as.add("IOREG", IORegStart, IORegSize)
	as.add("EXPROM", ExpROMStart, ExpROMSize)
	if hdr.HasPersistent() {
		as.add("SRAM", SRAMStart, SRAMSize)
	}
	if hdr.HasTrainer() {
		as.add("TRAINER", TrainerStart, ines.TrainerSize)
	}
	rom := as.add("ROM", ROMStart, ROMSize)

	res := &Result{Space: as, Vector: ResetVector}

	// copyBank copies n source bytes from fileoff into dst at dstoff, or
	// raises a TruncatedSource diagnostic and leaves dst zero-filled.
	copyBank := func(dst *Region, dstoff, fileoff, n int) {
		if fileoff < 0 || fileoff+n > len(src) {
			err := &TruncatedError{Offset: fileoff, Length: n, Avail: len(src)}
			log.ModLayout.WarnZ("bank copy out of source bounds").
				String("region", dst.Name).
				Error("err", err).
				End()
			res.Diags = append(res.Diags, Diagnostic{Kind: TruncatedSource, Err: err})
			return
		}
		copy(dst.Data[dstoff:dstoff+n], src[fileoff:])
	}

	offs := BankOffsets{Trainer: hdr.HasTrainer(), PRGPages: hdr.PRGPages}

	if trainer := as.Region("TRAINER"); trainer != nil {
		copyBank(trainer, 0, ines.HeaderSize, ines.TrainerSize)
	}

	switch strat {
	case mapper.Standard:
		// First PRG bank at $8000, last PRG bank at $C000. The last bank is
		// always mirrored into the upper half: with a single bank both halves
		// source the same bytes.
		copyBank(rom, 0, offs.PRG(1), ines.PRGPageSize)
		copyBank(rom, ines.PRGPageSize, offs.PRG(int(hdr.PRGPages)), ines.PRGPageSize)

		// The first CHR bank overlays the start of RAM. Downstream consumers
		// rely on this placement.
		copyBank(as.Region("RAM"), 0, offs.CHR(1), ines.CHRPageSize)

	case mapper.MMC2Unsupported, mapper.AxROMUnsupported, mapper.Unknown:
		id := hdr.Mapper()
		log.ModLayout.WarnZ("bank loading skipped").
			Hex8("mapper", id).
			String("name", mapper.Name(id)).
			Stringer("strategy", strat).
			End()
		res.Diags = append(res.Diags, Diagnostic{Kind: UnsupportedMapper, Mapper: id})
	}

	res.Entry = as.ReadWord(ResetVector)
	return res
}
