package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommands_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "campaigns create missing required flags",
			args:        []string{"campaigns", "create"},
			errorString: "required",
		},
		{
			name:        "campaigns update missing id",
			args:        []string{"campaigns", "update"},
			errorString: "accepts 1 arg",
		},
		{
			name:        "onboard missing required flags",
			args:        []string{"onboard"},
			errorString: "required",
		},
		{
			name:        "analytics rejects unknown range",
			args:        []string{"analytics", "--range", "14d"},
			errorString: "range",
		},
		{
			name:        "unknown command",
			args:        []string{"frobnicate"},
			errorString: "unknown command",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestHelpListsCommands(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "--help")
	output, err := cmd.CombinedOutput()
	assert.NoError(t, err)

	for _, name := range []string{"content", "campaigns", "onboard", "dashboard", "analytics", "clients", "health"} {
		assert.Contains(t, string(output), name)
	}
}
