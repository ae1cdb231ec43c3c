package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/panes/internal/app"
	"github.com/llehouerou/panes/internal/config"
	"github.com/llehouerou/panes/internal/errmsg"
	"github.com/llehouerou/panes/internal/group"
	"github.com/llehouerou/panes/internal/state"
)

type session struct {
	model  app.Model
	saver  *state.Saver
	db     *state.Manager
	logOut io.Closer
}

// close flushes pending layout writes before the database goes away.
func (s *session) close() {
	if s.saver != nil {
		s.saver.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	if s.logOut != nil {
		s.logOut.Close()
	}
}

func openLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	path := cfg.LogPath
	if path == "" {
		var err error
		path, err = xdg.StateFile(filepath.Join("panes", "panes.log"))
		if err != nil {
			return nil, nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.GetLogLevel()})
	return slog.New(h), f, nil
}

func initialSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	s := &session{}
	logger, logOut, err := openLogger(cfg)
	if err != nil {
		// The TUI owns the terminal, so logs are dropped rather than printed.
		logger = slog.New(slog.DiscardHandler)
	} else {
		s.logOut = logOut
	}

	var storage state.Storage
	if cfg.UseMemoryStorage() {
		storage = state.NewMemory()
	} else {
		db, err := state.Open(cfg.DBPath)
		if err != nil {
			s.close()
			return nil, errors.New(errmsg.Format(errmsg.OpStorageOpen, err))
		}
		s.db = db
		storage = db
	}
	s.saver = state.NewSaver(storage, cfg.GetSaveDebounce())

	opts := []group.Option{
		group.WithDirection(cfg.GetDirection()),
		group.WithKeyboardStep(cfg.GetKeyboardStep()),
		group.WithSmoothing(cfg.GetSmoothing()),
		group.WithLogger(logger),
	}
	if cfg.AutosaveID != "" {
		opts = append(opts, group.WithAutosave(s.saver, cfg.AutosaveID))
	}
	g := group.New("main", opts...)

	panels := cfg.GetPanels()
	if err := app.Mount(g, panels, logger); err != nil {
		s.close()
		return nil, errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	logger.Info("panes started", "panels", len(panels), "autosave", cfg.AutosaveID, "storage", cfg.Storage)

	s.model = app.New(g, panels, app.Options{
		ResizeDebounce: cfg.GetResizeDebounce(),
		Logger:         logger,
	})
	return s, nil
}

func main() {
	s, err := initialSession()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(s.model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	_, err = p.Run()
	s.close()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
