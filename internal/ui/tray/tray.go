package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow     func()
	OnPauseAll func()
	OnQuit     func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	callbacks  Callbacks
	running    int
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("No timers running", nil)
	manager.statusItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem("Pause all timers", func() {
		if manager.callbacks.OnPauseAll != nil {
			manager.callbacks.OnPauseAll()
		}
	})
	manager.pauseItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// SetRunningCount updates the status label with the number of active
// countdowns.
func (manager *Manager) SetRunningCount(running int) {
	manager.running = running
	switch running {
	case 0:
		manager.statusItem.Label = "No timers running"
	case 1:
		manager.statusItem.Label = "1 timer running"
	default:
		manager.statusItem.Label = fmt.Sprintf("%d timers running", running)
	}
	manager.pauseItem.Disabled = running == 0
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("MultiTimer",
		manager.statusItem,
		fyne.NewMenuItem("Show window", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.pauseItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
