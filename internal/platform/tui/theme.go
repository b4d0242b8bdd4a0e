package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/danmaku/internal/core"
)

// Theme contains the visual styles of the viewer.
type Theme struct {
	// Cell colors, indexed by core.Color
	Cells map[core.Color]lipgloss.Style

	// Status bar styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDAlert     lipgloss.Style
	HUDControls  lipgloss.Style
}

// DefaultTheme returns the default color theme.
func DefaultTheme() Theme {
	return Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:    lipgloss.NewStyle(),
			core.ColorBullet:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")), // Hot pink
			core.ColorPlayer:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
			core.ColorEntity:     lipgloss.NewStyle().Foreground(lipgloss.Color("135")), // Medium purple
			core.ColorHit:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
			core.ColorPlayerCell: lipgloss.NewStyle().Foreground(lipgloss.Color("46")), // Lime green
			core.ColorGrid:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			core.ColorText:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		},

		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDAlert:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		HUDControls:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Cells[core.ColorBullet] = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Cells[core.ColorPlayer] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Cells[core.ColorEntity] = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	theme.Cells[core.ColorHit] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Reverse(true)
	theme.Cells[core.ColorPlayerCell] = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	theme.HUDTitle = lipgloss.NewStyle().Bold(true)
	theme.HUDAlert = lipgloss.NewStyle().Reverse(true)
	return theme
}

// Style returns the style of a cell color, falling back to the default one.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Cells[c]; ok {
		return s
	}
	return t.Cells[core.ColorDefault]
}
