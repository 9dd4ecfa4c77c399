package cmd

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/cmd/galaxy"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/config"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"
)

var runExport = galaxy.Export

// CLI represents the complete command structure for the exporter
type CLI struct {
	// Global flags
	Overwrite bool   `help:"Overwrite existing output files" default:"true" negatable:""`
	Options   string `help:"Path to the options file (JSON or YAML)"`

	Export ExportCmd `cmd:"" default:"withargs" help:"Export the GOG Galaxy 2 library"`
}

// ExportCmd represents the export command. Empty values fall back to the
// configuration (GALAXY_* environment variables, .env or config.yaml).
type ExportCmd struct {
	Dir       string `help:"Directory holding the library export, the images and the templates" default:"."`
	Delimiter string `short:"d" help:"CSV delimiter, \\t for tabs"`
	Input     string `short:"i" help:"Library export, CSV or XLSX"`
	List      string `short:"l" help:"Image list output file"`
	Output    string `short:"o" help:"HTML5 output file"`
	ImageList bool   `help:"Export the list of images to download"`
	HTML5     bool   `name:"html5" help:"Export the HTML5 game catalog"`
	Title     string `help:"Title of the HTML5 page"`
	Embed     bool   `help:"Embed the stylesheet and the script in the page"`
	Records   string `help:"Also write the enriched records (JSON, or YAML by extension)"`

	Debug   bool  `hidden:"" help:"Show every platform icon"`
	DebugID []int `hidden:"" name:"debug-id" help:"Only render the games with these ids"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("galaxy"),
		kong.Description("Export a GOG Galaxy 2 library as an image download list and an HTML5 catalog."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func configDefaults() {
	viper.SetDefault("input", "gameDB.csv")
	viper.SetDefault("delimiter", ",")
	viper.SetDefault("list", "imagelist.txt")
	viper.SetDefault("output", "index.html")
	viper.SetDefault("title", "GOG Galaxy 2 game library")
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !stdErrors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	configDefaults()

	viper.SetEnvPrefix("GALAXY")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stdErrors.As(err, &notFound) {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
		slog.Debug("Config file not found, using defaults")
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetOverwriteFiles(cli.Overwrite)
	if cli.Options != "" {
		config.SetOptionsFile(cli.Options)
	}
}

func (e *ExportCmd) Run() error {
	if !e.ImageList && !e.HTML5 && e.Records == "" {
		return fmt.Errorf("nothing to export (use --image-list, --html5 or --records)")
	}

	return runExport(galaxy.Options{
		BaseDir:       e.Dir,
		Input:         orConfig(e.Input, "input"),
		Delimiter:     orConfig(e.Delimiter, "delimiter"),
		OptionsFile:   config.OptionsFile,
		ImageList:     e.ImageList,
		ImageListFile: orConfig(e.List, "list"),
		HTML5:         e.HTML5,
		OutputFile:    orConfig(e.Output, "output"),
		Title:         orConfig(e.Title, "title"),
		Embed:         e.Embed,
		Debug:         e.Debug,
		DebugIDs:      e.DebugID,
		RecordsFile:   e.Records,
		Overwrite:     config.OverwriteFiles,
	})
}

// orConfig returns value, or the configured value of key when value is empty.
func orConfig(value, key string) string {
	if value != "" {
		return value
	}
	return viper.GetString(key)
}

func initLogging() {
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	slog.SetDefault(slog.New(handler))
}
