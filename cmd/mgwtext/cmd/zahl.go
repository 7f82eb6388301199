package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mGW/foundation/utils/numx"
)

var zahlCmd = &cobra.Command{
	Use:   "zahl",
	Short: "Zahlen formatieren und parsen",
}

var zahlParsenCmd = &cobra.Command{
	Use:   "parsen <wert>...",
	Short: "Gleitkommazahlen tolerant parsen",
	Long: `Parst Gleitkommazahlen mit Dezimalpunkt oder Dezimalkomma. Ein
Ergebnis von Null gilt nur für die Schreibweisen "0", "0.0" und "0,0"
als Erfolg.

Beispiele:
  mgwtext zahl parsen 3,25 -1.5 0,0
  mgwtext zahl parsen 0.00   # wird abgelehnt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runZahlParsen,
}

var zahlRundreiseCmd = &cobra.Command{
	Use:   "rundreise <ganzzahl>...",
	Short: "Ganzzahlen formatieren und zurückparsen",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runZahlRundreise,
}

func init() {
	rootCmd.AddCommand(zahlCmd)
	zahlCmd.AddCommand(zahlParsenCmd)
	zahlCmd.AddCommand(zahlRundreiseCmd)
}

func runZahlParsen(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, arg := range args {
		if v, ok := numx.ParseFloat(arg); ok {
			fmt.Printf("%s -> %g\n", arg, v)
		} else {
			fmt.Printf("%s -> ungültig\n", arg)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d Wert(e) nicht parsbar", failed)
	}
	return nil
}

func runZahlRundreise(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		v, ok := numx.ParseInt64(arg)
		if !ok {
			return fmt.Errorf("keine Ganzzahl: %s", arg)
		}
		fmt.Println(numx.FormatInt64(v))
	}
	return nil
}
