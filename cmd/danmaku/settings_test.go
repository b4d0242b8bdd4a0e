package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/danmaku/internal/collide"
)

func TestParseChunks(t *testing.T) {
	tests := []struct {
		in      string
		x, y    int
		wantErr bool
	}{
		{"12x14", 12, 14, false},
		{"1x1", 1, 1, false},
		{"0x4", 0, 0, true},
		{"12", 0, 0, true},
		{"axb", 0, 0, true},
	}

	for _, tc := range tests {
		x, y, err := parseChunks(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseChunks(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && (x != tc.x || y != tc.y) {
			t.Errorf("parseChunks(%q) = %d, %d; expected %d, %d", tc.in, x, y, tc.x, tc.y)
		}
	}
}

func TestTuningResolve(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "collision.yaml")
	yaml := "screen:\n  width: 640\n  height: 480\ngrid:\n  chunks_x: 4\n  chunks_y: 3\ncollision:\n  method: gjk\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	t.Cleanup(func() { flagConfig = "" })

	s, err := tuning{}.resolve()
	if err != nil {
		t.Fatalf("resolve() error: %v", err)
	}
	if s.method != collide.MethodGJK || s.chunksX != 4 || s.chunksY != 3 {
		t.Errorf("resolve() = %v %dx%d, expected gjk 4x3", s.method, s.chunksX, s.chunksY)
	}
	if s.runtime.ScreenW != 640 || s.runtime.Seed != flagSeed {
		t.Errorf("runtime = %+v", s.runtime)
	}

	s, err = tuning{method: "sat", chunks: "10x8"}.resolve()
	if err != nil {
		t.Fatalf("resolve() with overrides error: %v", err)
	}
	if s.method != collide.MethodSAT || s.chunksX != 10 || s.chunksY != 8 {
		t.Errorf("overrides not applied: %v %dx%d", s.method, s.chunksX, s.chunksY)
	}

	s, err = tuning{density: "dense"}.resolve()
	if err != nil {
		t.Fatalf("resolve() dense error: %v", err)
	}
	if s.method != collide.MethodPretestOnly {
		t.Errorf("dense preset should switch to pretest, got %v", s.method)
	}

	if _, err := (tuning{density: "crowded"}).resolve(); err == nil {
		t.Error("unknown density should fail")
	}
	if _, err := (tuning{method: "epa"}).resolve(); err == nil {
		t.Error("unknown method should fail")
	}
}
