package main

import (
	"fmt"
	"io"
	"os"

	"nesld/ines"
	"nesld/layout"
	"nesld/report"
)

var version = "devel"

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case layoutMode:
		layoutMain(cli.Layout, LoadConfigOrDefault())
	case romInfosMode:
		rom, err := ines.ReadRom(cli.RomInfos.RomPath)
		checkf(err, "failed to read rom")
		rom.PrintInfos(os.Stdout)
	case scanMode:
		scanMain(cli.Scan, LoadConfigOrDefault())
	case configMode:
		configMain(cli.Config)
	case versionMode:
		fmt.Println("nesld", version)
	}
}

// layoutMain runs the full pipeline on a single rom and writes the host
// report.
func layoutMain(args Layout, cfg Config) {
	rom, err := ines.ReadRom(args.RomPath)
	checkf(err, "failed to read rom")

	res := layout.Load(rom)
	for _, d := range res.Diags {
		fmt.Fprintln(os.Stderr, "warning:", d)
	}

	var w io.Writer = os.Stdout
	if args.Out != nil {
		w = args.Out
		defer args.Out.Close()
	}

	opts := report.Options{Symbols: cfg.Report.Symbols && !args.NoSymbols}
	checkf(report.Write(w, res, opts), "failed to write report")
}
