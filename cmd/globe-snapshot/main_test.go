package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/lucky-globe/config"
	"github.com/lixenwraith/lucky-globe/roster"
)

func TestExportSingle(t *testing.T) {
	out := filepath.Join(t.TempDir(), "globe.png")
	paths, err := export(config.Default(), roster.Sample(20, 3), options{
		Out: out, Width: 160, Height: 120, Supersample: 2, Warmup: 2, Frames: 1,
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(paths) != 1 || paths[0] != out {
		t.Fatalf("Expected [%s], got %v", out, paths)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
		t.Errorf("Expected 160x120, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestExportSequence(t *testing.T) {
	dir := t.TempDir()
	paths, err := export(config.Default(), roster.Sample(10, 3), options{
		Out: filepath.Join(dir, "spin.webp"), Width: 64, Height: 48, Supersample: 1, Frames: 3, Draw: true,
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := []string{"spin0000.webp", "spin0001.webp", "spin0002.webp"}
	if len(paths) != len(want) {
		t.Fatalf("Expected %d paths, got %v", len(want), paths)
	}
	for i, p := range paths {
		if filepath.Base(p) != want[i] {
			t.Errorf("Expected %s, got %s", want[i], filepath.Base(p))
		}
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Errorf("Expected non-empty %s, err %v", p, err)
		}
	}
}

func TestExportErrors(t *testing.T) {
	cfg := config.Default()
	if _, err := export(cfg, nil, options{Out: "x.gif", Width: 10, Height: 10}); err == nil {
		t.Error("Expected unknown format error")
	}
	if _, err := export(cfg, nil, options{Out: "x.png", Width: 0, Height: 10}); err == nil {
		t.Error("Expected size error")
	}

	out := filepath.Join(t.TempDir(), "empty.png")
	if _, err := export(cfg, nil, options{Out: out, Width: 10, Height: 10, Draw: true}); err == nil {
		t.Error("Expected empty roster error for draw export")
	}
}
