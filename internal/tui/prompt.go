package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// Confirm shows a yes/no prompt using the current theme.
func Confirm(title, description string) (bool, error) {
	var confirmed bool
	field := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := huh.NewForm(huh.NewGroup(field)).WithTheme(currentThemeOrDefault()).Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// Spin runs action behind a spinner and returns its error.
func Spin(title string, action func() error) error {
	var actionErr error
	err := spinner.New().
		Type(spinner.Dots).
		Title(" " + title).
		Action(func() { actionErr = action() }).
		Run()
	if err != nil {
		return err
	}
	return actionErr
}
