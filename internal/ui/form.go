package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"multitimer/internal/core/model"
)

// FormResult carries validated timer fields out of the form.
type FormResult struct {
	Title       string
	Description string
	Duration    int
}

// TimerForm is the add/edit timer window. Validation lives here, on the
// caller side of the store: the store trusts whatever it is given.
type TimerForm struct {
	window      fyne.Window
	titleEntry  *widget.Entry
	description *widget.Entry
	hours       *widget.Select
	minutes     *widget.Select
	seconds     *widget.Select
	errorLabel  *widget.Label
	onSubmit    func(FormResult)
}

// NewTimerForm creates a hidden form window. heading is the window title
// ("Add Timer" or "Edit Timer"); submitLabel names the confirm button.
func NewTimerForm(app fyne.App, heading, submitLabel string, onSubmit func(FormResult)) *TimerForm {
	window := app.NewWindow(heading)

	titleEntry := widget.NewEntry()
	titleEntry.SetPlaceHolder("Timer title")

	description := widget.NewEntry()
	description.SetPlaceHolder("Description (optional)")

	hours := widget.NewSelect(numberOptions(23), nil)
	minutes := widget.NewSelect(numberOptions(59), nil)
	seconds := widget.NewSelect(numberOptions(59), nil)
	hours.SetSelected("0")
	minutes.SetSelected("0")
	seconds.SetSelected("0")

	errorLabel := widget.NewLabel("")
	errorLabel.Importance = widget.DangerImportance
	errorLabel.Hide()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Title *", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		titleEntry,
		widget.NewLabel("Description"),
		description,
		widget.NewLabelWithStyle("Duration *", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(
			widget.NewLabel("Hours"), hours,
			widget.NewLabel("Minutes"), minutes,
			widget.NewLabel("Seconds"), seconds,
		),
		errorLabel,
	)

	submitButton := widget.NewButton(submitLabel, nil)
	submitButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(layout.NewSpacer(), cancelButton, submitButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 340))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	timerForm := &TimerForm{
		window:      window,
		titleEntry:  titleEntry,
		description: description,
		hours:       hours,
		minutes:     minutes,
		seconds:     seconds,
		errorLabel:  errorLabel,
		onSubmit:    onSubmit,
	}

	submitButton.OnTapped = timerForm.handleSubmit
	cancelButton.OnTapped = func() {
		window.Hide()
	}

	return timerForm
}

// Show displays the form with empty fields.
func (timerForm *TimerForm) Show() {
	timerForm.reset()
	timerForm.window.Show()
	timerForm.window.RequestFocus()
}

// ShowTimer displays the form preloaded with an existing timer's fields.
func (timerForm *TimerForm) ShowTimer(timer model.Timer) {
	timerForm.reset()
	timerForm.titleEntry.SetText(timer.Title)
	timerForm.description.SetText(timer.Description)
	timerForm.hours.SetSelected(strconv.Itoa(timer.Duration / 3600))
	timerForm.minutes.SetSelected(strconv.Itoa(timer.Duration % 3600 / 60))
	timerForm.seconds.SetSelected(strconv.Itoa(timer.Duration % 60))
	timerForm.window.Show()
	timerForm.window.RequestFocus()
}

func (timerForm *TimerForm) reset() {
	timerForm.titleEntry.SetText("")
	timerForm.description.SetText("")
	timerForm.hours.SetSelected("0")
	timerForm.minutes.SetSelected("0")
	timerForm.seconds.SetSelected("0")
	timerForm.errorLabel.Hide()
}

func (timerForm *TimerForm) handleSubmit() {
	title := strings.TrimSpace(timerForm.titleEntry.Text)
	if title == "" {
		timerForm.showError("Title is required")
		return
	}

	duration := selectedInt(timerForm.hours)*3600 +
		selectedInt(timerForm.minutes)*60 +
		selectedInt(timerForm.seconds)
	if duration <= 0 {
		timerForm.showError("Please set a duration greater than 0")
		return
	}

	timerForm.window.Hide()
	timerForm.onSubmit(FormResult{
		Title:       title,
		Description: strings.TrimSpace(timerForm.description.Text),
		Duration:    duration,
	})
}

func (timerForm *TimerForm) showError(message string) {
	timerForm.errorLabel.SetText(message)
	timerForm.errorLabel.Show()
}

func selectedInt(sel *widget.Select) int {
	value, err := strconv.Atoi(sel.Selected)
	if err != nil {
		return 0
	}
	return value
}

func numberOptions(max int) []string {
	options := make([]string, max+1)
	for i := 0; i <= max; i++ {
		options[i] = fmt.Sprintf("%d", i)
	}
	return options
}
