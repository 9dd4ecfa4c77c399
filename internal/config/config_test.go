package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestSetOverwriteFiles(t *testing.T) {
	// Save the original value to restore after the test
	originalValue := OverwriteFiles

	testCases := []struct {
		name     string
		input    bool
		expected bool
	}{
		{
			name:     "set to true",
			input:    true,
			expected: true,
		},
		{
			name:     "set to false",
			input:    false,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			SetOverwriteFiles(tc.input)
			assert.Equal(t, tc.expected, OverwriteFiles)
		})
	}

	OverwriteFiles = originalValue
}

func TestInitConfig(t *testing.T) {
	originalOverwrite, originalOptions := OverwriteFiles, OptionsFile
	t.Cleanup(func() {
		OverwriteFiles, OptionsFile = originalOverwrite, originalOptions
		viper.Reset()
	})

	viper.Reset()
	InitConfig()
	assert.True(t, OverwriteFiles)
	assert.Equal(t, DefaultOptionsFile, OptionsFile)

	viper.Set("Options", "custom/options.yaml")
	viper.Set("OverwriteFiles", false)
	InitConfig()
	assert.False(t, OverwriteFiles)
	assert.Equal(t, "custom/options.yaml", OptionsFile)
}
