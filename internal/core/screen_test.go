package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, expected 10x5", s.Width(), s.Height())
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("cell (%d,%d) should be space, got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '@', ColorGreen)
	cell := s.GetCell(3, 2)
	if cell.Rune != '@' || cell.Color != ColorGreen {
		t.Errorf("GetCell(3,2) = %+v", cell)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')
	if s.Get(-1, 0) != ' ' || s.Get(100, 100) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(7, 1, "hello")
	if s.Row(1) != "       hel" {
		t.Errorf("Row(1) = %q, text should be clipped", s.Row(1))
	}

	s.Clear()
	s.DrawTextCentered(0, "ab", ColorYellow)
	if s.Row(0) != "    ab    " {
		t.Errorf("centered row = %q", s.Row(0))
	}
	if s.GetCell(4, 0).Color != ColorYellow {
		t.Error("centered text should keep its color")
	}

	// Multi-byte runes occupy one cell each
	s.Clear()
	s.DrawText(0, 2, "Очки")
	if s.Row(2) != "Очки      " {
		t.Errorf("Row(2) = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorDefault)

	expected := "┌───┐\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("box =\n%s\nexpected\n%s", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(0, 0, 'x')
	s.Resize(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size after resize = %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Resize should clear the screen")
	}
}

func TestScreenDrawRectAndLine(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawRect(NewRect(1, 1, 2, 2), '#', ColorGreen)
	s.DrawHLine(0, 0, 6, '~', ColorBlue)

	if s.Row(0) != "~~~~~~" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.Row(1) != " ##   " || s.Row(2) != " ##   " {
		t.Errorf("rect rows = %q / %q", s.Row(1), s.Row(2))
	}
}
