package ui

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
)

// ErrConfirmationRequired is returned by Confirm in non-interactive mode
// when no answer was assumed.
var ErrConfirmationRequired = errors.New("confirmation required; rerun with --yes")

// PromptYesNo prompts the user for a yes/no answer
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// Confirm asks before a destructive action. Assume-yes short-circuits to
// true; non-interactive mode without assume-yes refuses.
func (u *UI) Confirm(prompt string) (bool, error) {
	if u.assumeYes {
		return true, nil
	}
	if u.nonInteractive {
		return false, ErrConfirmationRequired
	}
	return u.PromptYesNo(prompt, false)
}
