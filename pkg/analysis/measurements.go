package analysis

import (
	"fmt"
	"math"

	"github.com/jordanro2/edgeslide/pkg/geometry"
	"github.com/jordanro2/edgeslide/pkg/mesh"
)

// MeasurementResult contains various measurements of a polygon mesh.
// The face mix and edge adjacency classes matter for edge sliding:
// only interior edges (exactly two adjacent faces) have a defined slide
// range, and only quad/quad adjacency gets the exact opposite-edge
// measurement.
type MeasurementResult struct {
	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3

	VertexCount int
	EdgeCount   int
	FaceCount   int

	TriangleFaces int
	QuadFaces     int
	NgonFaces     int

	InteriorEdges    int
	BoundaryEdges    int
	NonManifoldEdges int

	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeMesh measures a mesh for reporting
func AnalyzeMesh(m mesh.Mesh) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox: geometry.NewBoundingBox(),
		VertexCount: m.VertexCount(),
		EdgeCount:   m.EdgeCount(),
		FaceCount:   m.FaceCount(),
	}

	for v := 0; v < m.VertexCount(); v++ {
		result.BoundingBox.Extend(m.VertexPosition(v))
	}
	result.Dimensions = result.BoundingBox.Size()

	for f := 0; f < m.FaceCount(); f++ {
		switch len(m.FaceVertices(f)) {
		case 3:
			result.TriangleFaces++
		case 4:
			result.QuadFaces++
		default:
			result.NgonFaces++
		}
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for e := 0; e < m.EdgeCount(); e++ {
		switch len(m.EdgeFaces(e)) {
		case 2:
			result.InteriorEdges++
		case 0, 1:
			result.BoundaryEdges++
		default:
			result.NonManifoldEdges++
		}

		v1, v2 := m.EdgeVertices(e)
		length := m.VertexPosition(v1).Distance(m.VertexPosition(v2))
		totalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
