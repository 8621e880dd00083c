package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordanro2/edgeslide/pkg/mesh"
	"github.com/jordanro2/edgeslide/version"
)

var rootCmd = &cobra.Command{
	Use:   "edgeslide",
	Short: "Slide mesh edge loops by exact distance",
	Long: `edgeslide converts a physical slide distance into the factor expected by
Blender's native edge slide transform. It analyzes an edge loop in an OBJ or
STL mesh, measures how far the loop can travel toward each flanking boundary,
and resolves a signed distance into a slide factor, clamped to [-1, 1].`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveSelection expands the --all shorthand into every edge
func resolveSelection(m *mesh.Model, selected []int, all bool) []int {
	if all {
		return m.AllEdges()
	}
	return selected
}
