package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"nesld/ines"
	"nesld/layout"
)

func TestTally(t *testing.T) {
	results := []scanResult{
		{path: "a.nes"},
		{path: "b.nes", diags: []layout.Diagnostic{{Kind: layout.UnsupportedMapper, Mapper: 9}}},
		{path: "c.nes", err: errors.New("boom")},
		{path: "d.nes"},
	}

	nok, ndiag, nerr := tally(results)
	if nok != 2 || ndiag != 1 || nerr != 1 {
		t.Fatalf("tally = (%d, %d, %d), want (2, 1, 1)", nok, ndiag, nerr)
	}
}

func TestRomPaths(t *testing.T) {
	dir := t.TempDir()

	mkfile := func(name string) {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	mkfile("a.nes")
	mkfile(filepath.Join("sub", "b.NES"))
	mkfile("readme.txt")

	paths, err := romPaths(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2: %v", len(paths), paths)
	}
}

func TestScanOne(t *testing.T) {
	dir := t.TempDir()

	img := []byte(ines.Magic)
	img = append(img, 1, 1, 0, 0, 0)
	img = append(img, make([]byte, 7)...)
	img = append(img, make([]byte, ines.PRGPageSize+ines.CHRPageSize)...)

	good := filepath.Join(dir, "good.nes")
	if err := os.WriteFile(good, img, 0644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.nes")
	if err := os.WriteFile(bad, []byte("not a rom"), 0644); err != nil {
		t.Fatal(err)
	}

	res := scanOne(good)
	if res.err != nil || len(res.diags) != 0 {
		t.Errorf("scanOne(good) = err %v, diags %v", res.err, res.diags)
	}

	res = scanOne(bad)
	if !errors.Is(res.err, ines.ErrInvalidFormat) {
		t.Errorf("scanOne(bad) err = %v, want ErrInvalidFormat", res.err)
	}
}
