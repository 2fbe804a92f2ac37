package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3,2) = %q, want '#'", got)
	}

	// Out of bounds is ignored on write and blank on read.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetColored(1, 1, '█', ColorCyan)
	cell := s.GetCell(1, 1)
	if cell.Rune != '█' || cell.Color != ColorCyan {
		t.Errorf("GetCell = %+v, want colored block", cell)
	}

	// Plain Set uses the default color.
	s.Set(2, 2, 'o')
	if c := s.GetCell(2, 2).Color; c != ColorDefault {
		t.Errorf("Set should use default color, got %v", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetColored(0, 0, 'x', ColorRed)
	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear left cell %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place characters")
	}

	// Clipped at the right edge without panicking.
	s.DrawText(8, 0, "long")
	if s.Get(9, 0) != 'o' {
		t.Error("DrawText should clip, keeping in-bounds characters")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(0, 0, "ab", ColorGreen)

	if s.GetCell(0, 0).Color != ColorGreen || s.GetCell(1, 0).Color != ColorGreen {
		t.Error("DrawTextColored should color every cell of the run")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'a')
	s.Set(5, 3, 'z')

	s.Resize(4, 3)
	if s.Get(1, 1) != 'a' {
		t.Error("resize should preserve surviving content")
	}
	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("resize dimensions %dx%d, want 4x3", s.Width(), s.Height())
	}

	s.Resize(8, 6)
	if s.Get(1, 1) != 'a' {
		t.Error("growing should preserve content")
	}
	if s.Get(7, 5) != ' ' {
		t.Error("new area should be blank")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if lines := strings.Count(got, "\n"); lines != 1 {
		t.Errorf("expected 1 newline, got %d", lines)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	corners := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'}, {5, 0, '┐'}, {0, 3, '└'}, {5, 3, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")

	if got := s.Row(0); got != "abc" {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(5); got != "   " {
		t.Errorf("out-of-range Row = %q, want spaces", got)
	}
}
