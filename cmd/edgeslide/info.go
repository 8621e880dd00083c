package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordanro2/edgeslide/pkg/analysis"
	"github.com/jordanro2/edgeslide/pkg/mesh"
)

var infoUnit string

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a mesh file",
	Long:  "Show mesh statistics including counts, dimensions, face mix, and the edge adjacency classes relevant to sliding.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoUnit, "unit", "u", "", "Unit label for displayed distances")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := mesh.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeMesh(model)

	fmt.Println("Mesh Information")
	fmt.Println("================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Faces: %d (%d quads, %d triangles, %d n-gons)\n\n",
		result.FaceCount, result.QuadFaces, result.TriangleFaces, result.NgonFaces)

	fmt.Println("Edge Adjacency:")
	fmt.Printf("  Interior (slideable): %d\n", result.InteriorEdges)
	fmt.Printf("  Boundary: %d\n", result.BoundaryEdges)
	fmt.Printf("  Non-manifold: %d\n\n", result.NonManifoldEdges)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %s\n", analysis.FormatMeasurement(result.Dimensions.X, infoUnit))
	fmt.Printf("  Depth (Y): %s\n", analysis.FormatMeasurement(result.Dimensions.Y, infoUnit))
	fmt.Printf("  Height (Z): %s\n", analysis.FormatMeasurement(result.Dimensions.Z, infoUnit))
	fmt.Printf("  Diagonal: %s\n\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), infoUnit))

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, infoUnit))
	fmt.Printf("  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, infoUnit))
	fmt.Printf("  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, infoUnit))
}
