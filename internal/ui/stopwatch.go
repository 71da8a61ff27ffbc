package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"multitimer/internal/core/stopwatch"
)

// StopwatchPanel renders the stopwatch page: the readout, the controls, and
// the lap table.
type StopwatchPanel struct {
	engine *stopwatch.Engine

	timeLabel    *widget.Label
	toggleButton *widget.Button
	lapButton    *widget.Button
	lapRows      *fyne.Container
	lapHeader    *fyne.Container
	content      fyne.CanvasObject
}

// NewStopwatchPanel creates the panel and starts consuming engine events.
// The event loop ends when the engine is stopped.
func NewStopwatchPanel(engine *stopwatch.Engine) *StopwatchPanel {
	panel := &StopwatchPanel{engine: engine}

	panel.timeLabel = widget.NewLabelWithStyle(
		stopwatch.Format(0),
		fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true, Monospace: true},
	)

	panel.toggleButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		engine.Toggle()
	})
	panel.lapButton = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		engine.RecordLap()
	})
	panel.lapButton.Disable()
	resetButton := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		engine.Reset()
	})

	controls := container.NewHBox(
		layout.NewSpacer(),
		panel.toggleButton, panel.lapButton, resetButton,
		layout.NewSpacer(),
	)

	panel.lapHeader = container.NewGridWithColumns(3,
		widget.NewLabelWithStyle("Lap", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Split Time", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Total Time", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	panel.lapHeader.Hide()
	panel.lapRows = container.NewVBox()

	panel.content = container.NewBorder(
		container.NewVBox(panel.timeLabel, controls, panel.lapHeader),
		nil, nil, nil,
		container.NewVScroll(panel.lapRows),
	)

	events := engine.Subscribe(1)
	go func() {
		for event := range events {
			current := event
			fyne.Do(func() {
				panel.apply(current)
			})
		}
	}()

	return panel
}

// Content returns the panel's root canvas object.
func (panel *StopwatchPanel) Content() fyne.CanvasObject {
	return panel.content
}

// apply updates the widgets from an engine event. Runs on the Fyne thread.
func (panel *StopwatchPanel) apply(event stopwatch.Event) {
	panel.timeLabel.SetText(stopwatch.Format(event.Elapsed))

	if event.IsRunning {
		panel.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		panel.toggleButton.SetIcon(theme.MediaPlayIcon())
	}

	if event.Elapsed == 0 {
		panel.lapButton.Disable()
	} else {
		panel.lapButton.Enable()
	}

	if event.Type == stopwatch.EventStateChange {
		panel.refreshLaps()
	}
}

func (panel *StopwatchPanel) refreshLaps() {
	laps := panel.engine.Laps()
	if len(laps) == 0 {
		panel.lapHeader.Hide()
	} else {
		panel.lapHeader.Show()
	}

	rows := make([]fyne.CanvasObject, 0, len(laps))
	for _, lap := range laps {
		rows = append(rows, container.NewGridWithColumns(3,
			widget.NewLabel(fmt.Sprintf("%d", lap.ID)),
			widget.NewLabelWithStyle(stopwatch.Format(lap.LapTime), fyne.TextAlignLeading, fyne.TextStyle{Monospace: true}),
			widget.NewLabelWithStyle(stopwatch.Format(lap.TotalTime), fyne.TextAlignLeading, fyne.TextStyle{Monospace: true}),
		))
	}
	panel.lapRows.Objects = rows
	panel.lapRows.Refresh()
}
