package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/mGW/foundation/core/config"
	"github.com/msto63/mGW/foundation/core/log"
	"github.com/msto63/mGW/foundation/utils/stringx"
)

var (
	cfgFile string
	verbose bool

	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mgwtext",
	Short: "meinGRAFIKWERK - Text- und Pfad-Werkzeuge",
	Long: `mgwtext stellt die Text-, Pfad- und Zahlen-Werkzeuge der
meinGRAFIKWERK-Foundation auf der Kommandozeile bereit.

Befehle:
  pfad         - Pfade normalisieren und zerlegen
  text         - Suche ohne Beachtung der Gross-/Kleinschreibung
  konvertieren - UTF-8 nach UTF-16 konvertieren und pruefen
  zahl         - Zahlen formatieren und parsen`,
	PersistentPreRunE: setupLogging,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/mgw.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// setupLogging builds the shared logger from the config file, the MGW_
// environment overrides and the verbose flag. Every invocation carries a
// correlation ID, inherited from MGW_CORRELATION_ID or freshly minted.
func setupLogging(cmd *cobra.Command, args []string) error {
	level := log.LevelInfo
	format := log.FormatConsole

	path := stringx.FromDefault(cfgFile, "./configs/mgw.toml")
	if _, err := os.Stat(path); err == nil {
		cfg, err := config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "MGW",
		})
		if err != nil {
			return err
		}
		if result := cfg.Validate(config.StandardRules()); !result.Valid {
			return fmt.Errorf("ungültige Konfiguration: %v", result.Errors)
		}
		level, _ = log.ParseLevel(stringx.FirstNonBlank(cfg.GetString("log.level"), "info"))
		format, _ = log.ParseFormat(stringx.FirstNonBlank(cfg.GetString("log.format"), "console"))
	}

	if verbose {
		level = log.LevelDebug
	}

	// A calling process may hand down its correlation ID so log lines of
	// the whole pipeline group together; otherwise each run gets its own.
	correlationID := stringx.FirstNonEmpty(os.Getenv("MGW_CORRELATION_ID"), uuid.NewString())

	logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "mgwtext",
	}).WithCorrelationID(correlationID)
	log.SetDefault(logger)

	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
