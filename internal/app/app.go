// Package app is the terminal demo: a panel of sliders built from the
// configuration, with linked sliders kept in step.
package app

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/rangeslider/internal/config"
	"github.com/llehouerou/rangeslider/internal/diag"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/rangeslider"
)

// Model is the root application model.
type Model struct {
	Sliders []rangeslider.Model
	Focus   int
	// Links maps a link group to the indices of its sliders.
	Links  map[string][]int
	linkOf []string
	starts []float64

	Keys KeyMap
	Help help.Model

	Diag      *diag.Recorder
	Logger    *slog.Logger
	Clipboard func(string) error

	Status    string
	StatusErr bool
	Width     int
	Height    int
}

// New creates the application model from configuration.
func New(cfg *config.Config, logger *slog.Logger, rec *diag.Recorder) (Model, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sliders := cfg.GetSliders()

	nameWidth := 0
	for _, sc := range sliders {
		if !sc.Vertical {
			nameWidth = max(nameWidth, runewidth.StringWidth(sc.Name))
		}
	}

	m := Model{
		Links:     make(map[string][]int),
		Keys:      DefaultKeyMap(),
		Help:      help.New(),
		Diag:      rec,
		Logger:    logger,
		Clipboard: clipboard.WriteAll,
	}

	for i, sc := range sliders {
		s, err := rangeslider.New(sc.Name, rangeslider.Options{
			Range:       sc.Range(),
			Orientation: sc.Orientation(),
			Mode:        sc.Mode(),
			Inverted:    sc.Inverted,
			Disabled:    sc.Disabled,
			Color:       sc.Color,
			Palette:     cfg.Theme.Inverted,
			Gradient:    cfg.GradientEnabled(),
			Thumb:       sc.Thumb,
			NameWidth:   nameWidth,
		})
		if err != nil {
			return Model{}, fmt.Errorf("slider %q: %w", sc.Name, err)
		}
		m.Sliders = append(m.Sliders, s)
		m.linkOf = append(m.linkOf, sc.Link)
		m.starts = append(m.starts, sc.Start)
		if sc.Link != "" {
			m.Links[sc.Link] = append(m.Links[sc.Link], i)
		}
	}

	if len(m.Sliders) > 0 {
		m.Sliders[0].SetFocused(true)
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return WatchDiagnostics(m.Diag)
}

// index returns the position of the slider with the given id.
func (m Model) index(id string) (int, bool) {
	for i, s := range m.Sliders {
		if s.ID() == id {
			return i, true
		}
	}
	return 0, false
}

// focused returns the focused slider, if any.
func (m Model) focused() (*rangeslider.Model, bool) {
	if m.Focus < 0 || m.Focus >= len(m.Sliders) {
		return nil, false
	}
	return &m.Sliders[m.Focus], true
}

// setFocus moves keyboard focus to slider i.
func (m *Model) setFocus(i int) {
	if len(m.Sliders) == 0 {
		return
	}
	i = (i%len(m.Sliders) + len(m.Sliders)) % len(m.Sliders)
	if cur, ok := m.focused(); ok {
		cur.SetFocused(false)
	}
	m.Focus = i
	m.Sliders[i].SetFocused(true)
}

// orientationGroups splits slider indices by axis, in configuration order.
func (m Model) orientationGroups() (horizontal, vertical []int) {
	for i, s := range m.Sliders {
		if s.Orientation() == slider.Vertical {
			vertical = append(vertical, i)
		} else {
			horizontal = append(horizontal, i)
		}
	}
	return horizontal, vertical
}
