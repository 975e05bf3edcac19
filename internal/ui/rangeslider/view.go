package rangeslider

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui"
	"github.com/llehouerou/rangeslider/internal/ui/render"
	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

// Track glyphs.
const (
	hTrack = "─"
	hFill  = "━"
	vTrack = "│"
	vFill  = "┃"
)

// View renders the name, the track and the value label.
func (m Model) View() string {
	t := styles.T()
	label := render.Sanitize(m.id)
	if m.opts.Orientation == slider.Horizontal {
		label = render.TruncateAndPad(label, m.nameWidth())
	}
	nameStyle, valueStyle := t.S().Title, t.S().Value
	if m.Disabled() {
		nameStyle, valueStyle = t.S().Muted, t.S().Muted
	}
	name := nameStyle.Render(label)
	value := valueStyle.Render(m.Label())

	track := m.renderTrack()
	if id := m.ZoneID(); id != "" {
		track = zone.Mark(id, track)
	}

	if m.opts.Orientation == slider.Vertical {
		return lipgloss.JoinVertical(lipgloss.Center, name, track, value)
	}

	gap := strings.Repeat(" ", ui.LabelGap)
	value = lipgloss.NewStyle().Width(m.valueWidth()).Align(lipgloss.Right).Render(value)
	return name + gap + track + gap + value
}

// colors returns the fill, faded fill, track and thumb colors for the
// current state.
func (m Model) colors() (fill, faded, track, thumb lipgloss.Color) {
	t := styles.T()
	track = t.TrackColor(m.opts.Palette)
	fill = styles.Fill(m.opts.Color, m.opts.Palette)
	thumb = t.Thumb
	switch {
	case m.Disabled():
		fill, thumb = t.Disabled, t.Disabled
	case m.Dragging():
		thumb = fill
	}
	faded = fill
	if m.opts.Gradient {
		faded = styles.Faded(fill, track)
	}
	return fill, faded, track, thumb
}

// thumbCell converts the engine position into the first thumb cell.
func (m Model) thumbCell(length, span int) int {
	pos := int(math.Round(m.slider.Position()))
	return max(0, min(pos, length-span))
}

// mirrored reports whether the maximum sits at the track origin.
func (m Model) mirrored() bool {
	return (m.opts.Orientation == slider.Vertical) != m.opts.Inverted
}

func (m Model) renderTrack() string {
	if m.opts.Orientation == slider.Vertical {
		return m.renderVertical()
	}
	return m.renderHorizontal()
}

func (m Model) renderHorizontal() string {
	length := m.layout.length
	fill, faded, track, thumb := m.colors()
	span := min(m.thumbWidth, length)
	pos := m.thumbCell(length, span)

	before := pos
	after := length - pos - span
	trackStyle := lipgloss.NewStyle().Foreground(track)
	thumbView := lipgloss.NewStyle().Foreground(thumb).Render(m.opts.Thumb)

	if m.mirrored() {
		return trackStyle.Render(strings.Repeat(hTrack, before)) +
			thumbView +
			m.renderFill(strings.Repeat(hFill, after), fill, faded)
	}
	return m.renderFill(strings.Repeat(hFill, before), faded, fill) +
		thumbView +
		trackStyle.Render(strings.Repeat(hTrack, after))
}

// renderFill colors a run of fill glyphs from one end color to the other.
func (m Model) renderFill(s string, from, to lipgloss.Color) string {
	if s == "" {
		return ""
	}
	if from == to {
		return lipgloss.NewStyle().Foreground(to).Render(s)
	}
	return styles.ApplyGradient(s, from, to)
}

func (m Model) renderVertical() string {
	length := m.layout.length
	fill, faded, track, thumb := m.colors()
	pos := m.thumbCell(length, 1)
	mirrored := m.mirrored()

	trackStyle := lipgloss.NewStyle().Foreground(track)
	rows := make([]string, length)
	for r := range length {
		switch {
		case r == pos:
			rows[r] = lipgloss.NewStyle().Foreground(thumb).Render(m.opts.Thumb)
		case mirrored && r > pos:
			// Filled below the thumb, fading toward the bottom.
			t := float64(length-1-r) / float64(max(length-1-pos, 1))
			rows[r] = lipgloss.NewStyle().Foreground(styles.Blend(faded, fill, t)).Render(vFill)
		case !mirrored && r < pos:
			t := float64(r) / float64(max(pos, 1))
			rows[r] = lipgloss.NewStyle().Foreground(styles.Blend(faded, fill, t)).Render(vFill)
		default:
			rows[r] = trackStyle.Render(vTrack)
		}
	}
	return strings.Join(rows, "\n")
}
