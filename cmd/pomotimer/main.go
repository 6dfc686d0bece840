package main

import (
	"fmt"
	"log"
	"time"

	"pomotimer/internal/audio"
	"pomotimer/internal/core/model"
	"pomotimer/internal/core/timer"
	"pomotimer/internal/platform"
	"pomotimer/internal/storage"
	"pomotimer/internal/ui/preferences"
	"pomotimer/internal/ui/timerview"
	"pomotimer/internal/ui/tray"
	"pomotimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "pomotimer"

func main() {
	activations, notifyActivation := activationSignal()
	guard, err := platform.AcquireSingleInstance(appName, notifyActivation)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	engine := timer.New(settings.TimerConfig(), newChime(settings), timer.Config{TickInterval: time.Second})
	defer engine.Close()

	fyneApp := app.NewWithID("com.pomotimer.app")
	fyneApp.SetIcon(resources.MustIcon("work.svg"))

	view := timerview.New(fyneApp, "pomotimer", engine)
	view.Window().SetMaster()
	go relayActivations(activations, func() { fyne.Do(view.Show) })

	prefsWindow := preferences.New(fyneApp, settings, func(updated model.Settings) {
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Printf("settings: %v", err)
			return
		}
		log.Printf("settings: saved, durations apply on next launch")
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: view.Show,
			OnToggle: func() {
				if engine.IsRunning() {
					engine.Stop()
				} else {
					engine.Start()
				}
			},
			OnReset:       engine.Reset,
			OnChangeMode:  engine.ChangeMode,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon("work.svg"))
		view.Window().SetCloseIntercept(view.Window().Hide)
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	events := engine.Subscribe(16)
	go func() {
		for event := range events {
			handleEvent(fyneApp, event, view, trayManager)
		}
	}()

	view.Show()
	fyneApp.Run()
}

// activationSignal returns a channel fed by notify. Requests that arrive while
// one is pending are merged.
func activationSignal() (chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	notify := func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return ch, notify
}

func relayActivations(activations <-chan struct{}, show func()) {
	for range activations {
		show()
	}
}

func newChime(settings model.Settings) timer.ChimePlayer {
	player, err := audio.NewPlayer(audio.Options{
		File:   settings.ChimeFile,
		Volume: settings.ChimeVolume,
	})
	if err != nil && settings.ChimeFile != "" {
		log.Printf("chime: %v (falling back to built-in bell)", err)
		player, err = audio.NewPlayer(audio.Options{Volume: settings.ChimeVolume})
	}
	if err != nil {
		log.Printf("chime: %v (running silent)", err)
		return timer.SilentChime{}
	}
	log.Printf("chime: loaded %s", player.Duration().Round(10*time.Millisecond))
	return player
}

func handleEvent(fyneApp fyne.App, event timer.Event, view *timerview.Window, trayManager *tray.Manager) {
	if event.Type == timer.EventComplete {
		fyneApp.SendNotification(fyne.NewNotification(
			fmt.Sprintf("%s finished", event.Finished.Label()),
			fmt.Sprintf("%s started: %s", event.View.Mode.Label(), event.View.Display),
		))
	}
	if event.Type == timer.EventChimeError {
		return
	}

	fyne.Do(func() {
		view.Render(event.View)
		if trayManager != nil {
			trayManager.Update(event.View)
			if desktopApp, ok := fyneApp.(desktop.App); ok {
				desktopApp.SetSystemTrayIcon(resources.StatusIcon(event.View))
			}
		}
	})
}
