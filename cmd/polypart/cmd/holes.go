package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	polypart "github.com/arl/go-polypart"
)

// holesCmd represents the holes command
var holesCmd = &cobra.Command{
	Use:   "holes OUTFILE",
	Short: "merge holes into their enclosing polygons",
	Long: `Read a polygon set, merge every hole polygon into an enclosing
outer polygon through a visibility bridge, and save the hole-free result to
OUTFILE in dump format.`,
	Run: doHoles,
}

var holesInput string
var holesDecimal bool

func init() {
	RootCmd.AddCommand(holesCmd)

	holesCmd.Flags().StringVar(&holesInput, "input", "", "input dump or OBJ file (required)")
	holesCmd.Flags().BoolVar(&holesDecimal, "decimal", false, "write full double coordinates")
}

func doHoles(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		check(fmt.Errorf("missing OUTFILE argument"))
	}
	if holesInput == "" {
		check(fmt.Errorf("missing --input flag"))
	}

	polys, err := loadPolygons(holesInput)
	check(err)
	merged, err := polypart.RemoveHoles(polys)
	check(err)
	check(savePolygons(args[0], merged, holesDecimal))
	fmt.Printf("%d polygons written to '%s'\n", len(merged), args[0])
}
