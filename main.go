package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/rangeslider/internal/app"
	"github.com/llehouerou/rangeslider/internal/config"
	"github.com/llehouerou/rangeslider/internal/diag"
	"github.com/llehouerou/rangeslider/internal/errmsg"
)

// openLogger returns a debug logger writing to the configured file, or a
// discarding one. The returned closer is never nil.
func openLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	path := diag.LogPath(cfg.LogFile)
	if path == "" {
		return diag.NewLogger(nil), io.NopCloser(nil), nil
	}

	f, err := tea.LogToFile(path, "rangeslider")
	if err != nil {
		return nil, nil, err
	}
	return diag.NewLogger(f), f, nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, closer, err := openLogger(cfg)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer closer.Close()

	rec := diag.NewRecorder(diag.DefaultBuffer, logger)
	defer rec.Close()

	zone.NewGlobal()

	m, err := app.New(cfg, logger, rec)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpSliderBuild, err))
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
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
