package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mGW/foundation/core/log"
	"github.com/msto63/mGW/foundation/utils/stringx"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Textsuche ohne Beachtung der Gross-/Kleinschreibung",
}

var textSuchenCmd = &cobra.Command{
	Use:   "suchen <muster> [datei]",
	Short: "Zeilen finden, die das Muster enthalten",
	Long: `Durchsucht eine Datei oder die Standardeingabe zeilenweise nach dem
Muster. Die Suche ignoriert Gross-/Kleinschreibung für ASCII-Buchstaben.

Beispiele:
  mgwtext text suchen logo assets/manifest.txt
  cat manifest.txt | mgwtext text suchen LOGO`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTextSuchen,
}

func init() {
	rootCmd.AddCommand(textCmd)
	textCmd.AddCommand(textSuchenCmd)
}

func runTextSuchen(cmd *cobra.Command, args []string) error {
	needle := args[0]

	input := os.Stdin
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			printError("Datei nicht lesbar", err)
			return err
		}
		defer f.Close()
		input = f
	}

	scanner := bufio.NewScanner(input)
	lineNo := 0
	matches := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := stringx.FindIgnoreCase(line, needle); idx != stringx.NotFound {
			matches++
			fmt.Printf("%d:%d: %s\n", lineNo, idx, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	logger.Debug("Suche abgeschlossen", log.Fields{
		"needle":  needle,
		"lines":   lineNo,
		"matches": matches,
	})
	if matches == 0 {
		fmt.Println("Keine Treffer gefunden.")
	}
	return nil
}
