package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"nesld/ines"
	"nesld/layout"
)

// scanResult is the outcome of loading one rom during a scan.
type scanResult struct {
	path  string
	err   error
	diags []layout.Diagnostic
}

func scanMain(args Scan, cfg Config) {
	paths, err := romPaths(args.Dir)
	checkf(err, "failed to walk %s", args.Dir)
	if len(paths) == 0 {
		fatalf("no *.nes file found under %s", args.Dir)
	}

	jobs := args.Jobs
	if jobs <= 0 {
		jobs = cfg.Scan.Jobs
	}

	results := make([]scanResult, len(paths))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = scanOne(path)
			return nil
		})
	}
	g.Wait()

	for _, res := range results {
		switch {
		case res.err != nil:
			fmt.Printf("%-60s error: %s\n", res.path, res.err)
		case len(res.diags) != 0:
			fmt.Printf("%-60s %s\n", res.path, res.diags[0])
		default:
			fmt.Printf("%-60s ok\n", res.path)
		}
	}

	nok, ndiag, nerr := tally(results)
	fmt.Printf("\n%d roms: %d ok, %d with diagnostics, %d errors\n", len(results), nok, ndiag, nerr)

	if nerr != 0 || (cfg.Scan.FailOnDiags && ndiag != 0) {
		os.Exit(1)
	}
}

func scanOne(path string) scanResult {
	rom, err := ines.ReadRom(path)
	if err != nil {
		return scanResult{path: path, err: err}
	}
	res := layout.Load(rom)
	return scanResult{path: path, diags: res.Diags}
}

// romPaths collects every *.nes file under dir.
func romPaths(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".nes") {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func tally(results []scanResult) (nok, ndiag, nerr int) {
	for _, res := range results {
		switch {
		case res.err != nil:
			nerr++
		case len(res.diags) != 0:
			ndiag++
		default:
			nok++
		}
	}
	return nok, ndiag, nerr
}
