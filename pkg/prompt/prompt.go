package prompt

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// Prompts write to stderr so that revealed values on stdout stay clean
// for piping.

func Input(message string) (string, error) {
	var value string
	err := survey.AskOne(&survey.Input{Message: message}, &value,
		survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return value, nil
}

func Password(message string) (string, error) {
	var value string
	err := survey.AskOne(&survey.Password{Message: message}, &value,
		survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return value, nil
}
