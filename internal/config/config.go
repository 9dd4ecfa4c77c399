package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OverwriteFiles controls whether existing output files are replaced
	OverwriteFiles = true
	// OptionsFile is the path of the user options file
	OptionsFile = DefaultOptionsFile
)

// InitConfig initializes the global configuration
func InitConfig() {
	viper.SetDefault("OverwriteFiles", true)
	viper.SetDefault("Options", DefaultOptionsFile)

	OverwriteFiles = viper.GetBool("OverwriteFiles")
	OptionsFile = viper.GetString("Options")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}

// SetOptionsFile sets the path of the options file
func SetOptionsFile(path string) {
	OptionsFile = path
}
