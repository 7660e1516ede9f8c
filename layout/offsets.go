package layout

import (
	"nesld/ines"
)

// BankOffsets computes the file offsets of PRG and CHR banks inside the raw
// byte stream of an iNES image. Offsets are measured from the start of the
// file, header included. Banks are numbered from 1 to match the header page
// counts.
type BankOffsets struct {
	Trainer  bool  // a 512-byte trainer precedes PRG data
	PRGPages uint8 // number of 16KB PRG-ROM pages
}

func (b BankOffsets) trainerAdjust() int {
	if b.Trainer {
		return ines.TrainerSize
	}
	return 0
}

// PRG returns the file offset of the nth 16KB PRG bank. No bounds check is
// performed, callers must only request banks the header declares.
func (b BankOffsets) PRG(bank int) int {
	return ines.HeaderSize + b.trainerAdjust() + (bank-1)*ines.PRGPageSize
}

// CHR returns the file offset of the nth 8KB CHR bank. CHR data sits after
// all PRG banks.
func (b BankOffsets) CHR(bank int) int {
	return ines.HeaderSize + b.trainerAdjust() + int(b.PRGPages)*ines.PRGPageSize + (bank-1)*ines.CHRPageSize
}
