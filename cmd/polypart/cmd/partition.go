package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	polypart "github.com/arl/go-polypart"
)

// partitionCmd represents the partition command
var partitionCmd = &cobra.Command{
	Use:   "partition OUTFILE",
	Short: "decompose polygons into y-monotone pieces",
	Long: `Read a polygon set (outer polygons counter-clockwise, holes
clockwise), decompose it into y-monotone polygons with a single scan-line
sweep, and save the pieces to OUTFILE in dump format.`,
	Run: doPartition,
}

var partitionInput string
var partitionDecimal bool

func init() {
	RootCmd.AddCommand(partitionCmd)

	partitionCmd.Flags().StringVar(&partitionInput, "input", "", "input dump or OBJ file (required)")
	partitionCmd.Flags().BoolVar(&partitionDecimal, "decimal", false, "write full double coordinates")
}

func doPartition(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		check(fmt.Errorf("missing OUTFILE argument"))
	}
	if partitionInput == "" {
		check(fmt.Errorf("missing --input flag"))
	}

	polys, err := loadPolygons(partitionInput)
	check(err)
	pieces, err := polypart.MonotonePartition(polys)
	check(err)
	check(savePolygons(args[0], pieces, partitionDecimal))
	fmt.Printf("%d monotone polygons written to '%s'\n", len(pieces), args[0])
}
