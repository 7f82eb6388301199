package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mGW/foundation/utils/utfx"
)

var konvertierenHex bool

var konvertierenCmd = &cobra.Command{
	Use:   "konvertieren",
	Short: "Zeichenkodierungen konvertieren und prüfen",
}

var konvertierenUTF16Cmd = &cobra.Command{
	Use:   "utf16 [datei]",
	Short: "UTF-8 streng validieren und nach UTF-16 konvertieren",
	Long: `Liest UTF-8 aus einer Datei oder der Standardeingabe, validiert die
Kodierung streng und gibt die UTF-16 Code-Units aus. Fehlerhafte
Eingaben werden mit Byte-Offset gemeldet statt still repariert.

Beispiele:
  mgwtext konvertieren utf16 notizen.txt
  echo -n "Grüße" | mgwtext konvertieren utf16 --hex`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKonvertierenUTF16,
}

var konvertierenPruefenCmd = &cobra.Command{
	Use:   "pruefen [datei]",
	Short: "UTF-8 Kodierung prüfen",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runKonvertierenPruefen,
}

func init() {
	rootCmd.AddCommand(konvertierenCmd)
	konvertierenCmd.AddCommand(konvertierenUTF16Cmd)
	konvertierenCmd.AddCommand(konvertierenPruefenCmd)

	konvertierenUTF16Cmd.Flags().BoolVar(&konvertierenHex, "hex", false, "Code-Units hexadezimal ausgeben")
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func runKonvertierenUTF16(cmd *cobra.Command, args []string) error {
	content, err := readInput(args)
	if err != nil {
		printError("Eingabe nicht lesbar", err)
		return err
	}

	units, err := utfx.UTF8ToUTF16(content)
	if err != nil {
		logger.LogError(err)
		return fmt.Errorf("Konvertierung fehlgeschlagen: %v", err)
	}

	for i, u := range units {
		if konvertierenHex {
			fmt.Printf("%04X", u)
		} else {
			fmt.Printf("%d", u)
		}
		if i < len(units)-1 {
			fmt.Print(" ")
		}
	}
	fmt.Println()
	return nil
}

func runKonvertierenPruefen(cmd *cobra.Command, args []string) error {
	content, err := readInput(args)
	if err != nil {
		printError("Eingabe nicht lesbar", err)
		return err
	}

	if _, err := utfx.UTF16Length(content); err != nil {
		logger.LogError(err)
		return fmt.Errorf("ungültiges UTF-8: %v", err)
	}

	fmt.Println("Eingabe ist gültiges UTF-8.")
	return nil
}
