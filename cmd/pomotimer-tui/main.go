package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"pomotimer/internal/audio"
	"pomotimer/internal/core/model"
	"pomotimer/internal/core/timer"
	"pomotimer/internal/storage"
	"pomotimer/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

const appName = "pomotimer"

func main() {
	var configPath string
	var logPath string
	var silent bool

	flag.StringVar(&configPath, "config", "", "settings file (default is the user config dir)/pomotimer/settings.yaml")
	flag.StringVar(&logPath, "log", filepath.Join(os.TempDir(), "pomotimer-tui.log"), "log file")
	flag.BoolVar(&silent, "silent", false, "disable the chime")
	flag.Parse()

	logFile, err := tea.LogToFile(logPath, "pomotimer ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	settings, err := loadSettings(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := run(settings, silent); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadSettings(configPath string) (model.Settings, error) {
	if configPath != "" {
		return storage.LoadSettingsFrom(configPath)
	}
	return storage.LoadSettings(appName)
}

func run(settings model.Settings, silent bool) error {
	var chime timer.ChimePlayer = timer.SilentChime{}
	if !silent {
		player, err := audio.NewPlayer(audio.Options{File: settings.ChimeFile, Volume: settings.ChimeVolume})
		if err != nil {
			log.Printf("chime: %v (running silent)", err)
		} else {
			chime = player
		}
	}

	engine := timer.New(settings.TimerConfig(), chime, timer.Config{TickInterval: time.Second})
	defer engine.Close()

	program := tea.NewProgram(tui.New(engine, engine.Subscribe(16)), tea.WithAltScreen())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer stop()
		_, err := program.Run()
		return err
	})
	group.Go(func() error {
		<-groupCtx.Done()
		program.Quit()
		return nil
	})

	return group.Wait()
}
