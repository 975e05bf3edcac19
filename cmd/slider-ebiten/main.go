// Command slider-ebiten shows the configured sliders in an Ebitengine
// window.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/llehouerou/rangeslider/internal/config"
	"github.com/llehouerou/rangeslider/internal/diag"
	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/link"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/ebitenslider"
	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

const (
	windowWidth  = 640
	windowHeight = 480
	statusInset  = 8
	statusHeight = 16
)

var background = styles.RGBA("#1b1c1d")

// Game implements ebiten.Game.
type Game struct {
	panel  *ebitenslider.Panel
	rec    *diag.Recorder
	logger *slog.Logger
	status string
	width  int
	height int
}

func newGame(cfg *config.Config, logger *slog.Logger, rec *diag.Recorder) (*Game, error) {
	reg := link.New(rec)
	var sliders []*ebitenslider.Slider
	for _, sc := range cfg.GetSliders() {
		name := sc.Name
		s, err := ebitenslider.New(name, ebitenslider.Options{
			Range:       sc.Range(),
			Orientation: sc.Orientation(),
			Mode:        sc.Mode(),
			Inverted:    sc.Inverted,
			Disabled:    sc.Disabled,
			Color:       sc.Color,
			Palette:     cfg.Theme.Inverted,
			OnChange: func(v float64, meta slider.Meta) {
				logger.Debug("slider changed", "source", name, "value", v, "user", meta.TriggeredByUser)
				reg.Changed(name, v)
			},
		}, rec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		reg.Add(sc.Link, name, s)
		sliders = append(sliders, s)
	}
	return &Game{
		panel:  ebitenslider.NewPanel(sliders),
		rec:    rec,
		logger: logger,
	}, nil
}

// Update advances one tick.
func (g *Game) Update() error {
	g.panel.Update()
	for _, ev := range g.rec.Drain() {
		g.status = ev.String()
	}
	return nil
}

// Draw renders the sliders and the last diagnostic.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.panel.Draw(screen)
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, statusInset, g.height-statusHeight)
	}
}

// Layout follows the window size so tracks stretch with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.panel.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
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

	game, err := newGame(cfg, logger, rec)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpSliderBuild, err))
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("rangeslider")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
