package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	polypart "github.com/arl/go-polypart"
)

// triangulateCmd represents the triangulate command
var triangulateCmd = &cobra.Command{
	Use:   "triangulate OUTFILE",
	Short: "triangulate a polygon set",
	Long: `Read a polygon set from a dump or OBJ file, triangulate it and
save the triangles to OUTFILE in dump format. The triangulation process is
controlled by the provided partition settings.`,
	Run: doTriangulate,
}

var cfgVal, inputVal, algoVal string

func init() {
	RootCmd.AddCommand(triangulateCmd)

	triangulateCmd.Flags().StringVar(&cfgVal, "config", "", "partition settings (YAML)")
	triangulateCmd.Flags().StringVar(&algoVal, "algo", "", "triangulation algorithm, 'ec', 'mono' or 'opt'")
	triangulateCmd.Flags().StringVar(&inputVal, "input", "", "input dump or OBJ file (required)")
}

func doTriangulate(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		check(fmt.Errorf("missing OUTFILE argument"))
	}
	if inputVal == "" {
		check(fmt.Errorf("missing --input flag"))
	}

	settings := NewSettings()
	if cfgVal != "" {
		check(unmarshalYAMLFile(cfgVal, &settings))
	}
	if algoVal != "" {
		settings.Algorithm = algoVal
	}

	polys, err := loadPolygons(inputVal)
	check(err)

	if settings.EnforceOrientation {
		for i := range polys {
			if polys[i].IsHole() {
				polys[i].SetOrientation(polypart.Clockwise)
			} else {
				polys[i].SetOrientation(polypart.CounterClockwise)
			}
		}
	}
	if settings.RemoveHoles {
		polys, err = polypart.RemoveHoles(polys)
		check(err)
	}

	var triangles []polypart.Polygon
	switch settings.Algorithm {
	case "ec":
		triangles, err = polypart.TriangulateECList(polys)
	case "mono":
		triangles, err = polypart.TriangulateMonoList(polys)
	case "opt":
		triangles, err = polypart.TriangulateOptList(polys)
	default:
		err = fmt.Errorf("unknown algorithm '%s'", settings.Algorithm)
	}
	check(err)

	check(savePolygons(args[0], triangles, settings.Decimal))
	fmt.Printf("%d triangles written to '%s'\n", len(triangles), args[0])
}
