// Package render paints box descriptors as terminal text.
package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/on-the-ground/likebox/box"
)

var palette = map[box.Color]lipgloss.Color{
	box.ColorBlue: lipgloss.Color("4"),
	box.ColorRed:  lipgloss.Color("1"),
}

// Terminal renders nodes with lipgloss.
type Terminal struct {
	ButtonLabel string
}

func NewTerminal() Terminal {
	return Terminal{ButtonLabel: "[+1]"}
}

// Render paints n. Container children are laid out left to right.
func (t Terminal) Render(n box.Node) string {
	return box.Match(n,
		func(txt box.Text) string {
			return string(txt)
		},
		func(num box.Number) string {
			return strconv.FormatInt(int64(num), 10)
		},
		func(l box.Label) string {
			content := ""
			if l.Content != nil {
				content = t.Render(l.Content)
			}
			return styleOf(l.Style).Render(content)
		},
		func(c box.Container) string {
			parts := make([]string, 0, len(c.Children))
			for _, child := range c.Children {
				parts = append(parts, t.Render(child))
			}
			return styleOf(c.Style).Render(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
		},
		func(box.Button) string {
			return lipgloss.NewStyle().Bold(true).Render(t.ButtonLabel)
		},
	)
}

// RenderList paints items top to bottom.
func (t Terminal) RenderList(items []box.Container) string {
	rows := make([]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, t.Render(item))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func styleOf(s box.Style) lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.FontWeight == box.FontWeightBold {
		style = style.Bold(true)
	}
	if s.Border != nil {
		style = style.Border(borderOf(*s.Border))
		if c, ok := palette[s.Border.Color]; ok {
			style = style.BorderForeground(c)
		}
	}
	return style
}

func borderOf(b box.Border) lipgloss.Border {
	switch {
	case b.Line == box.LineDouble:
		return lipgloss.DoubleBorder()
	case b.Width > 1:
		return lipgloss.ThickBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
