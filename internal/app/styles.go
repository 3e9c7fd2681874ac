package app

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pass-fixtures/internal/wifi"
)

// styles renders inspect output for one writer, so colors are only emitted
// when that writer is a terminal.
type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	payload  lipgloss.Style
	card     lipgloss.Style
	empty    lipgloss.Style
	security map[string]lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	badge := func(color string) lipgloss.Style {
		return r.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	}

	return styles{
		title:   r.NewStyle().Bold(true),
		label:   r.NewStyle().Faint(true).Width(10),
		value:   r.NewStyle(),
		payload: r.NewStyle().Faint(true),
		card:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		empty:   r.NewStyle().Faint(true),
		security: map[string]lipgloss.Style{
			wifi.WPA3: badge("10"),
			wifi.WPA2: badge("12"),
			wifi.WPA:  badge("11"),
			wifi.WEP:  badge("9"),
		},
	}
}
