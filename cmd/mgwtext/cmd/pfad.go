package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mGW/foundation/core/log"
	"github.com/msto63/mGW/foundation/utils/pathx"
)

var pfadLongPrefix bool

var pfadCmd = &cobra.Command{
	Use:   "pfad",
	Short: "Pfade normalisieren und zerlegen",
}

var pfadNormalisierenCmd = &cobra.Command{
	Use:   "normalisieren <pfad>...",
	Short: "Trennzeichen vereinheitlichen und relative Segmente auflösen",
	Long: `Vereinheitlicht die Trennzeichen eines Pfads und löst "." und ".."
Segmente auf. Segmente, die über die Wurzel hinausklettern, bleiben
erhalten.

Beispiele:
  mgwtext pfad normalisieren "assets\.\fonts\..\textures\wood.png"
  mgwtext pfad normalisieren --long-prefix "\\?\C:\Projekte\Logo.svg"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPfadNormalisieren,
}

var pfadZerlegenCmd = &cobra.Command{
	Use:   "zerlegen <pfad>...",
	Short: "Pfad in Verzeichnis, Dateiname und Erweiterung zerlegen",
	Long: `Zerlegt einen Pfad in seine Bestandteile.

Beispiele:
  mgwtext pfad zerlegen "C:\Projekte\Entwurf\Logo.svg"
  mgwtext pfad zerlegen assets/archive.tar.gz`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPfadZerlegen,
}

func init() {
	rootCmd.AddCommand(pfadCmd)
	pfadCmd.AddCommand(pfadNormalisierenCmd)
	pfadCmd.AddCommand(pfadZerlegenCmd)

	pfadNormalisierenCmd.Flags().BoolVar(&pfadLongPrefix, "long-prefix", false, "Windows Long-Path-Präfix vorher entfernen")
}

func runPfadNormalisieren(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		input := path
		if pfadLongPrefix {
			input = pathx.RemoveLongPathPrefix(input)
		}
		normalized := pathx.Normalize(input)

		logger.Debug("Pfad normalisiert", log.Fields{
			"input":  path,
			"output": normalized,
		})
		fmt.Println(normalized)
	}
	return nil
}

func runPfadZerlegen(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		fmt.Printf("Pfad:        %s\n", path)
		fmt.Printf("Verzeichnis: %s\n", pathx.GetDirectoryName(path))
		fmt.Printf("Dateiname:   %s\n", pathx.GetFileName(path))
		fmt.Printf("Basisname:   %s\n", pathx.GetFileNameWithoutExtension(path))
		fmt.Printf("Erweiterung: %s\n", pathx.GetExtension(path))
		if len(args) > 1 {
			fmt.Println()
		}
	}
	return nil
}
