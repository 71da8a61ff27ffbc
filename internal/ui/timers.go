// Package ui builds the Fyne surface: the timer list with its add/edit form,
// the completion banner, and the stopwatch page.
package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"multitimer/internal/alert"
	"multitimer/internal/core/model"
	"multitimer/internal/core/timerstore"
)

// TimersPanel renders the timer collection and routes user actions to the
// store. It never mutates timers directly.
type TimersPanel struct {
	app      fyne.App
	store    *timerstore.Store
	notifier *alert.Notifier

	addForm  *TimerForm
	editForm *TimerForm
	editID   string

	banner      *fyne.Container
	bannerLabel *widget.Label
	cards       *fyne.Container
	empty       *widget.Label
	content     fyne.CanvasObject
}

// NewTimersPanel creates the panel and its form windows.
func NewTimersPanel(app fyne.App, store *timerstore.Store, notifier *alert.Notifier) *TimersPanel {
	panel := &TimersPanel{
		app:      app,
		store:    store,
		notifier: notifier,
	}

	panel.addForm = NewTimerForm(app, "Add Timer", "Add Timer", func(result FormResult) {
		store.Add(model.Fields{
			Title:       result.Title,
			Description: result.Description,
			Duration:    result.Duration,
		})
	})

	panel.editForm = NewTimerForm(app, "Edit Timer", "Save Changes", func(result FormResult) {
		// Editing resets the countdown, so any active completion alert for
		// this timer is over.
		panel.DismissCompletion()
		store.Edit(panel.editID, model.Updates{
			Title:       &result.Title,
			Description: &result.Description,
			Duration:    &result.Duration,
		})
	})

	panel.bannerLabel = widget.NewLabel("")
	dismissButton := widget.NewButton("Dismiss", panel.DismissCompletion)
	panel.banner = container.NewHBox(panel.bannerLabel, layout.NewSpacer(), dismissButton)
	panel.banner.Hide()

	addButton := widget.NewButtonWithIcon("Add Timer", theme.ContentAddIcon(), func() {
		panel.addForm.Show()
	})
	addButton.Importance = widget.HighImportance

	panel.empty = widget.NewLabel("No timers yet. Add one to get started!")
	panel.cards = container.NewVBox(panel.empty)

	header := container.NewVBox(
		container.NewHBox(layout.NewSpacer(), addButton),
		panel.banner,
	)
	panel.content = container.NewBorder(header, nil, nil, nil, container.NewVScroll(panel.cards))

	panel.Refresh(store.Timers())
	return panel
}

// Content returns the panel's root canvas object.
func (panel *TimersPanel) Content() fyne.CanvasObject {
	return panel.content
}

// Refresh rebuilds the timer cards from a snapshot. Must run on the Fyne
// thread.
func (panel *TimersPanel) Refresh(timers []model.Timer) {
	objects := make([]fyne.CanvasObject, 0, len(timers))
	for _, timer := range timers {
		objects = append(objects, panel.buildCard(timer))
	}
	if len(objects) == 0 {
		objects = append(objects, panel.empty)
	}
	panel.cards.Objects = objects
	panel.cards.Refresh()
}

// ShowCompletion presents the dismiss affordance for a completed timer.
// Must run on the Fyne thread.
func (panel *TimersPanel) ShowCompletion(timer model.Timer) {
	panel.bannerLabel.SetText(fmt.Sprintf("Timer %q has ended!", timer.Title))
	panel.banner.Show()
	panel.banner.Refresh()
}

// DismissCompletion hides the banner and silences the alert. Idempotent.
func (panel *TimersPanel) DismissCompletion() {
	panel.notifier.Stop()
	panel.banner.Hide()
	panel.banner.Refresh()
}

func (panel *TimersPanel) buildCard(timer model.Timer) fyne.CanvasObject {
	id := timer.ID

	timeLabel := widget.NewLabelWithStyle(
		formatClock(timer.RemainingTime),
		fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true, Monospace: true},
	)

	progress := widget.NewProgressBar()
	if timer.Duration > 0 {
		progress.SetValue(float64(timer.RemainingTime) / float64(timer.Duration))
	}
	progress.TextFormatter = func() string { return "" }

	toggleIcon := theme.MediaPlayIcon()
	if timer.IsRunning {
		toggleIcon = theme.MediaPauseIcon()
	}
	toggleButton := widget.NewButtonWithIcon("", toggleIcon, func() {
		panel.handleToggle(id)
	})

	restartButton := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		panel.DismissCompletion()
		panel.store.Restart(id)
	})

	editButton := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		panel.handleEdit(id)
	})

	deleteButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		panel.DismissCompletion()
		panel.store.Delete(id)
	})

	controls := container.NewHBox(
		layout.NewSpacer(),
		toggleButton, restartButton, editButton, deleteButton,
		layout.NewSpacer(),
	)

	return widget.NewCard(timer.Title, timer.Description,
		container.NewVBox(timeLabel, progress, controls))
}

func (panel *TimersPanel) handleToggle(id string) {
	for _, timer := range panel.store.Timers() {
		if timer.ID == id && timer.RemainingTime == 0 && !timer.IsRunning {
			// Restarting the countdown from zero ends the completion alert.
			panel.DismissCompletion()
			break
		}
	}
	panel.store.Toggle(id)
}

func (panel *TimersPanel) handleEdit(id string) {
	for _, timer := range panel.store.Timers() {
		if timer.ID == id {
			panel.editID = id
			panel.editForm.ShowTimer(timer)
			return
		}
	}
}

// formatClock renders whole seconds as HH:MM:SS, dropping the hour field
// when zero.
func formatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := totalSeconds % 3600 / 60
	seconds := totalSeconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
