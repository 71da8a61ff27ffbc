package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"multitimer/internal/alert"
	"multitimer/internal/core/countdown"
	"multitimer/internal/core/model"
	"multitimer/internal/core/stopwatch"
	"multitimer/internal/core/timerstore"
	"multitimer/internal/logger"
	"multitimer/internal/platform"
	"multitimer/internal/storage"
	"multitimer/internal/ui"
	"multitimer/internal/ui/tray"
)

const appName = "MultiTimer"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Errorf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings := storage.DefaultSettings()
	var repository *storage.TimerRepository

	baseDir, err := storage.DefaultBaseDir(appName)
	if err != nil {
		logger.Errorf("resolve data directory: %v", err)
	} else {
		settings, err = storage.LoadSettings(baseDir)
		if err != nil {
			logger.Warnf("load settings: %v", err)
		}
		repository = storage.NewTimerRepository(storage.NewFileBlobStore(baseDir))
	}

	if level, ok := logger.ParseLogLevel(settings.LogLevel); ok {
		logger.SetLevel(level)
	}

	initial := []model.Timer{}
	var persister timerstore.Persister
	if repository != nil {
		persister = repository
		initial, err = repository.Load()
		if err != nil {
			// Malformed or unreadable data falls back to an empty
			// collection; in-memory state is authoritative from here on.
			logger.Errorf("load timers: %v", err)
			initial = []model.Timer{}
		}
	}

	store := timerstore.New(persister, initial)
	driver := countdown.New(countdown.Config{TickInterval: time.Second}, store.Tick)
	notifier := alert.NewNotifier(
		alert.NewBeepPlayer(settings.ToneFrequency, settings.ToneVolume),
		alert.Config{RepeatInterval: time.Second},
	)
	engine := stopwatch.New(stopwatch.Config{TickInterval: 10 * time.Millisecond})

	fyneApp := app.NewWithID("com.multitimer.app")

	window := fyneApp.NewWindow(appName)
	timersPanel := ui.NewTimersPanel(fyneApp, store, notifier)
	stopwatchPanel := ui.NewStopwatchPanel(engine)

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Timers", theme.HistoryIcon(), timersPanel.Content()),
		container.NewTabItemWithIcon("Stopwatch", theme.MediaPlayIcon(), stopwatchPanel.Content()),
	)
	window.SetContent(tabs)
	window.Resize(fyne.NewSize(520, 560))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	shutdown := func() {
		driver.StopAll()
		engine.Stop()
		notifier.Stop()
		store.Close()
	}

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				window.Show()
				window.RequestFocus()
			},
			OnPauseAll: func() {
				for _, timer := range store.Timers() {
					if timer.IsRunning {
						store.Toggle(timer.ID)
					}
				}
			},
			OnQuit: func() {
				shutdown()
				fyneApp.Quit()
			},
		})
	} else {
		logger.Warnf("system tray unsupported on this platform")
	}

	events := store.Subscribe(64)
	go func() {
		for event := range events {
			switch event.Type {
			case timerstore.EventChanged:
				running, count := runningSet(event.Timers)
				driver.Sync(running)
				snapshot := event.Timers
				fyne.Do(func() {
					timersPanel.Refresh(snapshot)
					if trayManager != nil {
						trayManager.SetRunningCount(count)
					}
				})
			case timerstore.EventCompleted:
				notifier.Play()
				completed := event.Timer
				fyneApp.SendNotification(fyne.NewNotification(
					appName,
					fmt.Sprintf("Timer %q has ended!", completed.Title),
				))
				fyne.Do(func() {
					timersPanel.ShowCompletion(completed)
				})
			}
		}
	}()

	// Timers persisted as running resume their countdowns on startup.
	running, count := runningSet(store.Timers())
	driver.Sync(running)
	if trayManager != nil {
		trayManager.SetRunningCount(count)
	}

	if !settings.StartHidden {
		window.Show()
	}
	fyneApp.Run()
	shutdown()
}

// runningSet maps timer ids to whether they should own a tick schedule, and
// counts the active ones.
func runningSet(timers []model.Timer) (map[string]bool, int) {
	running := make(map[string]bool, len(timers))
	count := 0
	for _, timer := range timers {
		active := timer.IsRunning && timer.RemainingTime > 0
		running[timer.ID] = active
		if active {
			count++
		}
	}
	return running, count
}
