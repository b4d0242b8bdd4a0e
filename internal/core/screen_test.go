package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' || s.ColorAt(x, y) != ColorDefault {
				t.Fatalf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenPlotGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Plot(5, 5, 'o', ColorBullet)
	if s.Get(5, 5) != 'o' {
		t.Errorf("Get(5, 5) = %q, expected 'o'", s.Get(5, 5))
	}
	if s.ColorAt(5, 5) != ColorBullet {
		t.Errorf("ColorAt(5, 5) = %v, expected bullet", s.ColorAt(5, 5))
	}

	s.Set(5, 5, '*')
	if s.ColorAt(5, 5) != ColorBullet {
		t.Error("Set should keep the cell color")
	}

	// Out of bounds should be silent
	s.Plot(-1, 0, 'A', ColorHit)
	s.Plot(100, 0, 'A', ColorHit)
	s.Tint(0, -1, ColorHit)
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.ColorAt(100, 0) != ColorDefault {
		t.Error("Out of bounds ColorAt should return default")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Plot(x, y, 'X', ColorGrid)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' || s.ColorAt(x, y) != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorText)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Only "He" fits
	s.DrawText(18, 0, "Hello", ColorText)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(7, 1, 5, '─', ColorGrid)

	for x := 7; x < 10; x++ {
		if s.Get(x, 1) != '─' || s.ColorAt(x, 1) != ColorGrid {
			t.Errorf("line missing at x=%d", x)
		}
	}
	if s.Get(6, 1) != ' ' {
		t.Error("line should start at its x")
	}
}

func TestScreenTintBox(t *testing.T) {
	s := NewScreen(6, 6)
	s.Plot(2, 2, 'o', ColorBullet)
	s.TintBox(Box{X: 1, Y: 1, W: 3, H: 3}, ColorPlayerCell)

	if s.Get(2, 2) != 'o' {
		t.Error("TintBox should keep runes")
	}
	if s.ColorAt(3, 3) != ColorPlayerCell {
		t.Errorf("ColorAt(3, 3) = %v, expected player-cell", s.ColorAt(3, 3))
	}
	if s.ColorAt(4, 4) != ColorDefault {
		t.Error("TintBox should not affect outside area")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	if result, expected := s.String(), "AAAAA\nBBBBB\nCCCCC"; result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorText)
	s.DrawText(0, 5, "World", ColorText)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	s.Resize(15, 8)
	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
	if s.ColorAt(0, 0) != ColorText {
		t.Error("Colors should be preserved after resize")
	}
}

func TestScreenRuns(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "ab", ColorBullet)
	s.DrawText(2, 0, "cd", ColorHit)

	var got []string
	s.Runs(0, func(text string, c Color) {
		got = append(got, c.String()+":"+text)
	})

	expected := []string{"bullet:ab", "hit:cd", "default:  "}
	if strings.Join(got, "|") != strings.Join(expected, "|") {
		t.Errorf("Runs() = %v, expected %v", got, expected)
	}
}
