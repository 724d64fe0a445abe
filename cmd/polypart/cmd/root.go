package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "polypart",
	Short: "partition 2D polygons into triangles",
	Long: `This is the command-line application accompanying go-polypart:
	- triangulate polygon sets from dump or OBJ files,
	- merge holes into their enclosing polygons,
	- decompose polygons into y-monotone pieces,
	- easily tweak partition settings (YAML files),
	- show info about polygon dump files.`,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
