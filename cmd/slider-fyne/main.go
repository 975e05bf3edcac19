// Command slider-fyne shows the configured sliders in a Fyne window.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/llehouerou/rangeslider/internal/config"
	"github.com/llehouerou/rangeslider/internal/diag"
	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/link"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/fyneslider"
	"github.com/llehouerou/rangeslider/internal/ui/render"
)

// panel is the window content: one row per horizontal slider, one column
// per vertical slider and a status line.
type panel struct {
	sliders []*fyneslider.Slider
	values  map[string]*widget.Label
	status  *widget.Label
	content fyne.CanvasObject
}

func newPanel(cfg *config.Config, logger *slog.Logger, rec *diag.Recorder) (*panel, error) {
	p := &panel{
		values: make(map[string]*widget.Label),
		status: widget.NewLabel(""),
	}
	reg := link.New(rec)
	rows := container.NewVBox()
	columns := container.NewHBox()

	for _, sc := range cfg.GetSliders() {
		name := sc.Name
		value := widget.NewLabel(render.Value(sc.Start, sc.Range()))
		s, err := fyneslider.New(name, fyneslider.Options{
			Range:       sc.Range(),
			Orientation: sc.Orientation(),
			Mode:        sc.Mode(),
			Inverted:    sc.Inverted,
			Disabled:    sc.Disabled,
			Color:       sc.Color,
			Palette:     cfg.Theme.Inverted,
			OnChange: func(v float64, meta slider.Meta) {
				logger.Debug("slider changed", "source", name, "value", v, "user", meta.TriggeredByUser)
				value.SetText(render.Value(v, sc.Range()))
				reg.Changed(name, v)
			},
		}, rec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		reg.Add(sc.Link, name, s)
		p.sliders = append(p.sliders, s)
		p.values[name] = value

		label := widget.NewLabel(render.Sanitize(name))
		if sc.Vertical {
			columns.Add(container.NewBorder(nil, container.NewVBox(label, value), nil, nil, s))
		} else {
			rows.Add(container.NewBorder(nil, nil, label, value, s))
		}
	}

	p.content = container.NewBorder(rows, p.status, nil, nil, columns)
	return p, nil
}

// watch shows diagnostics on the status line until the recorder closes.
func (p *panel) watch(rec *diag.Recorder) {
	for ev := range rec.Events() {
		p.status.SetText(ev.String())
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, closer, err := diag.OpenLogger(cfg.LogFile)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer closer.Close()

	rec := diag.NewRecorder(diag.DefaultBuffer, logger)
	defer rec.Close()

	a := app.NewWithID("io.github.llehouerou.rangeslider")
	p, err := newPanel(cfg, logger, rec)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpSliderBuild, err))
	}
	go p.watch(rec)

	w := a.NewWindow("rangeslider")
	w.SetContent(p.content)
	w.Resize(fyne.NewSize(640, 480))
	w.ShowAndRun()
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
