// Package mapper classifies the cartridge bank-switching hardware of an iNES
// image from its mapper number.
package mapper

import (
	"nesld/log"
)

var modMapper = log.NewModule("mapper")

// Strategy selects the bank-loading algorithm used for a mapper number.
type Strategy uint8

//go:generate go tool stringer -type=Strategy
const (
	// Standard is the fixed first/last PRG bank layout (NROM and friends).
	Standard Strategy = iota
	// MMC2Unsupported is recognized but has no bank-loading implementation.
	MMC2Unsupported
	// AxROMUnsupported covers the AxROM family (AxROM, Color Dreams, BxROM),
	// recognized but not implemented.
	AxROMUnsupported
	// Unknown is every mapper number not covered by another strategy.
	Unknown
)

// Desc describes a known mapper.
type Desc struct {
	Name     string
	Strategy Strategy
}

// All maps iNES mapper numbers to their description. Numbers absent from the
// table classify as Unknown.
var All = map[uint8]Desc{
	0:   {"NROM", Standard},
	1:   {"MMC1", Standard},
	2:   {"UxROM", Standard},
	3:   {"CNROM", Standard},
	4:   {"MMC3", Standard},
	5:   {"MMC5", Standard},
	7:   {"AxROM", AxROMUnsupported},
	9:   {"MMC2", MMC2Unsupported},
	10:  {"MMC4", Unknown},
	11:  {"Color Dreams", AxROMUnsupported},
	13:  {"CPROM", Unknown},
	34:  {"BxROM", AxROMUnsupported},
	66:  {"GNROM", Standard},
	71:  {"Camerica", Standard},
	118: {"TLSROM", Unknown},
	119: {"TQROM", Unknown},
}

// Classify buckets a mapper number into the strategy driving bank loading.
// Every number maps to exactly one strategy, numbers not in All to Unknown.
func Classify(id uint8) Strategy {
	strat := Unknown
	if desc, ok := All[id]; ok {
		strat = desc.Strategy
	}
	modMapper.DebugZ("classified mapper").
		Hex8("id", id).
		String("name", Name(id)).
		Stringer("strategy", strat).
		End()
	return strat
}

// Name returns the name of a known mapper number, or the empty string.
func Name(id uint8) string {
	return All[id].Name
}
