// Package auth provides API bearer token management.
// It implements a simple interface with multiple providers following the
// "deep modules" principle - simple interface, complex implementation hidden.
package auth

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvToken is the environment variable holding a bearer token.
const EnvToken = "AGENDA_TOKEN"

// ErrNoToken indicates that no provider produced a token.
var ErrNoToken = errors.New("no API token available")

// TokenProvider defines the interface for obtaining an API authentication token.
// Implementations may use different sources (external commands, environment variables, etc).
type TokenProvider interface {
	GetToken() (string, error)
}

// CommandProvider obtains tokens by running a configured shell command
// (for example a password manager lookup) and reading its stdout.
type CommandProvider struct {
	Command string
}

// GetToken runs the command through `sh -c` and returns its trimmed output.
// Returns an error if no command is configured, the command fails, or it prints nothing.
func (c *CommandProvider) GetToken() (string, error) {
	if strings.TrimSpace(c.Command) == "" {
		return "", errors.New("no token_command configured")
	}

	cmd := exec.Command("sh", "-c", c.Command)
	output, err := cmd.Output()
	if err != nil {
		// Check if it's an exec error (sh not found)
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return "", errors.New("sh not found in PATH")
		}
		return "", fmt.Errorf("token_command failed: %w", err)
	}

	token := strings.TrimSpace(string(output))
	if token == "" {
		return "", errors.New("token_command returned empty token")
	}

	return token, nil
}

// EnvProvider obtains tokens from the AGENDA_TOKEN environment variable.
type EnvProvider struct{}

// GetToken reads the AGENDA_TOKEN environment variable.
// Returns an error if the variable is not set or is empty.
func (e *EnvProvider) GetToken() (string, error) {
	token := strings.TrimSpace(os.Getenv(EnvToken))
	if token == "" {
		return "", fmt.Errorf("%s environment variable not set or empty", EnvToken)
	}
	return token, nil
}

// GetToken attempts to obtain a token using the following strategy:
// 1. Run the configured token command (if any)
// 2. Fall back to the AGENDA_TOKEN environment variable
// 3. Return ErrNoToken wrapped with both causes if both fail
func GetToken(command string) (string, error) {
	providers := []TokenProvider{&EnvProvider{}}
	if strings.TrimSpace(command) != "" {
		providers = append([]TokenProvider{&CommandProvider{Command: command}}, providers...)
	}

	var causes []string
	for _, p := range providers {
		token, err := p.GetToken()
		if err == nil {
			return token, nil
		}
		causes = append(causes, err.Error())
	}

	return "", fmt.Errorf("%w (%s)", ErrNoToken, strings.Join(causes, "; "))
}
