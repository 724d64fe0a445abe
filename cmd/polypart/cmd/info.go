package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	polypart "github.com/arl/go-polypart"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "show info about a polygon dump",
	Long: `Read a polygon set from a dump or OBJ file, check the data for
consistency then print informations on standard output.`,
	Run: doInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

func doInfo(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		check(fmt.Errorf("missing FILE argument"))
	}
	polys, err := loadPolygons(args[0])
	check(err)

	holes, vertices := 0, 0
	for i := range polys {
		if polys[i].IsHole() {
			holes++
		}
		vertices += polys[i].NumPoints()
	}
	fmt.Printf("polygons:  %d\n", len(polys))
	fmt.Printf("holes:     %d\n", holes)
	fmt.Printf("vertices:  %d\n", vertices)
	for i := range polys {
		var o string
		switch polys[i].Orientation() {
		case polypart.CounterClockwise:
			o = "ccw"
		case polypart.Clockwise:
			o = "cw"
		default:
			o = "none"
		}
		kind := "outer"
		if polys[i].IsHole() {
			kind = "hole"
		}
		valid := ""
		if !polys[i].IsValid() {
			valid = " (invalid)"
		}
		fmt.Printf("  #%d: %s, %d vertices, %s%s\n", i, kind, polys[i].NumPoints(), o, valid)
	}
}
