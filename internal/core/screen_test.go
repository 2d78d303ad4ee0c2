package core

import (
	"strings"
	"testing"
)

// frame joins rows the way Screen.String does.
func frame(rows ...string) string {
	return strings.Join(rows, "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)

	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 4x2", s.Width(), s.Height())
	}
	if got := s.String(); got != frame("    ", "    ") {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(3, 3)
	s.Set(1, 1, 'X')

	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		s.Set(p[0], p[1], 'A')
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected space", p[0], p[1], got)
		}
	}
	if got := s.String(); got != frame("   ", " X ", "   ") {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name     string
		draw     func(s *Screen)
		expected string
	}{
		{"plain", func(s *Screen) { s.DrawText(1, 0, "ab") }, " ab    "},
		{"clipped right", func(s *Screen) { s.DrawText(5, 0, "abcd") }, "     ab"},
		{"clipped left", func(s *Screen) { s.DrawText(-2, 0, "abcd") }, "cd     "},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "abc", ColorRed) }, "  abc  "},
		{"multibyte", func(s *Screen) { s.DrawText(0, 0, "·●ω") }, "·●ω    "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(7, 1)
			tc.draw(s)
			if got := s.Row(0); got != tc.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenOverlayBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.FillColored('#', ColorBlue)

	box := NewRect(1, 1, 5, 3)
	s.DrawRect(box.Inset(1), ' ')
	s.DrawBox(box, ColorWhite)

	expected := frame(
		"#######",
		"#┌───┐#",
		"#│   │#",
		"#└───┘#",
		"#######",
	)
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}

	if c := s.GetCell(1, 1); c.Color != ColorWhite {
		t.Errorf("border color = %d, expected white", c.Color)
	}
	if c := s.GetCell(2, 2); c.Color != ColorDefault {
		t.Errorf("cleared interior color = %d, expected default", c.Color)
	}
	if c := s.GetCell(0, 0); c.Color != ColorBlue {
		t.Errorf("untouched cell color = %d, expected blue", c.Color)
	}
}

func TestScreenClearDropsColor(t *testing.T) {
	s := NewScreen(2, 1)
	s.SetColored(0, 0, '█', ColorBlue)
	s.Clear()

	if c := s.GetCell(0, 0); c != blankCell {
		t.Errorf("GetCell after Clear = %+v", c)
	}
	if c := s.GetCell(9, 9); c != blankCell {
		t.Errorf("out-of-bounds GetCell = %+v", c)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 0, "abcd")
	s.SetColored(1, 1, 'G', ColorPink)
	s.DrawText(0, 2, "wxyz")

	s.Resize(3, 2)
	if got := s.String(); got != frame("abc", " G ") {
		t.Errorf("after shrink String() = %q", got)
	}
	if c := s.GetCell(1, 1); c.Color != ColorPink {
		t.Errorf("resize lost color: %+v", c)
	}

	s.Resize(5, 3)
	if got := s.String(); got != frame("abc  ", " G   ", "     ") {
		t.Errorf("after grow String() = %q", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
