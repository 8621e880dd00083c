package mesh

import (
	"github.com/jordanro2/edgeslide/pkg/geometry"
)

// Mesh is the read-only view of a polygon mesh that the slide analysis
// operates on. A host application can bridge its own mesh representation
// by implementing this interface; Model is the in-memory implementation
// used by the command line tools.
//
// Vertices, edges and faces are addressed by index. Implementations must
// report every edge with its adjacent faces and every face with its
// vertices in boundary order.
type Mesh interface {
	VertexCount() int
	VertexPosition(v int) geometry.Vector3

	EdgeCount() int
	EdgeVertices(e int) (int, int)
	EdgeFaces(e int) []int

	FaceCount() int
	FaceVertices(f int) []int
	FaceEdges(f int) []int
}

// EdgeMidpoint returns the midpoint of an edge's two endpoints
func EdgeMidpoint(m Mesh, e int) geometry.Vector3 {
	a, b := m.EdgeVertices(e)
	return m.VertexPosition(a).Midpoint(m.VertexPosition(b))
}
