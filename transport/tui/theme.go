package tui

import "github.com/gdamore/tcell/v2"

// Theme is the static color map of the board.
type Theme struct {
	CellBg tcell.Color
	CellFg tcell.Color
	MarkX  tcell.Color
	MarkO  tcell.Color
	WinBg  tcell.Color
	Status tcell.Color
}

// ThemeHex is a Theme as written in the config file. Empty or unparsable values fall back to ThemeBasic.
type ThemeHex struct {
	CellBg string
	CellFg string
	MarkX  string
	MarkO  string
	WinBg  string
	Status string
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	CellBg: tcell.ColorBlack,
	CellFg: tcell.Color252,
	MarkX:  tcell.Color203,
	MarkO:  tcell.Color75,
	WinBg:  tcell.Color226,
	Status: tcell.Color252,
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		CellBg: colorOr(t.CellBg, ThemeBasic.CellBg),
		CellFg: colorOr(t.CellFg, ThemeBasic.CellFg),
		MarkX:  colorOr(t.MarkX, ThemeBasic.MarkX),
		MarkO:  colorOr(t.MarkO, ThemeBasic.MarkO),
		WinBg:  colorOr(t.WinBg, ThemeBasic.WinBg),
		Status: colorOr(t.Status, ThemeBasic.Status),
	}
}

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	if hex == "" {
		return fallback
	}

	c := tcell.GetColor(hex)
	if c == tcell.ColorDefault {
		return fallback
	}

	return c
}
