package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanro2/edgeslide/pkg/geometry"
)

// buildQuadStrip creates two quads sharing one edge:
//
//	3---2---5
//	|   |   |
//	0---1---4
func buildQuadStrip(t *testing.T) *Model {
	t.Helper()

	m := NewModel("strip")
	m.AddVertex(geometry.NewVector3(0, 0, 0)) // 0
	m.AddVertex(geometry.NewVector3(1, 0, 0)) // 1
	m.AddVertex(geometry.NewVector3(1, 1, 0)) // 2
	m.AddVertex(geometry.NewVector3(0, 1, 0)) // 3
	m.AddVertex(geometry.NewVector3(2, 0, 0)) // 4
	m.AddVertex(geometry.NewVector3(2, 1, 0)) // 5

	_, err := m.AddFace(0, 1, 2, 3)
	require.NoError(t, err)
	_, err = m.AddFace(1, 4, 5, 2)
	require.NoError(t, err)
	return m
}

func TestModelSharesEdgesBetweenFaces(t *testing.T) {
	m := buildQuadStrip(t)

	assert.Equal(t, 6, m.VertexCount())
	assert.Equal(t, 2, m.FaceCount())
	// 4 + 4 face edges minus the one shared edge
	assert.Equal(t, 7, m.EdgeCount())

	shared := m.FindEdge(1, 2)
	require.GreaterOrEqual(t, shared, 0)
	assert.Equal(t, []int{0, 1}, m.EdgeFaces(shared))

	boundary := m.FindEdge(0, 1)
	require.GreaterOrEqual(t, boundary, 0)
	assert.Equal(t, []int{0}, m.EdgeFaces(boundary))
}

func TestModelFindEdgeIsUndirected(t *testing.T) {
	m := buildQuadStrip(t)

	assert.Equal(t, m.FindEdge(1, 2), m.FindEdge(2, 1))
	assert.Equal(t, -1, m.FindEdge(0, 5))
}

func TestModelFaceAccessors(t *testing.T) {
	m := buildQuadStrip(t)

	assert.Equal(t, []int{0, 1, 2, 3}, m.FaceVertices(0))
	assert.Len(t, m.FaceEdges(0), 4)

	// Face edges follow the vertex boundary order
	edges := m.FaceEdges(0)
	assert.Equal(t, m.FindEdge(0, 1), edges[0])
	assert.Equal(t, m.FindEdge(1, 2), edges[1])
	assert.Equal(t, m.FindEdge(2, 3), edges[2])
	assert.Equal(t, m.FindEdge(3, 0), edges[3])
}

func TestModelRejectsBadFaces(t *testing.T) {
	m := NewModel("bad")
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddVertex(geometry.NewVector3(0, 1, 0))

	_, err := m.AddFace(0, 1)
	assert.Error(t, err, "too few vertices")

	_, err = m.AddFace(0, 1, 7)
	assert.Error(t, err, "vertex out of range")

	_, err = m.AddFace(0, 1, 0)
	assert.Error(t, err, "repeated vertex")

	assert.Equal(t, 0, m.FaceCount())
}

func TestModelAllEdges(t *testing.T) {
	m := buildQuadStrip(t)

	all := m.AllEdges()
	assert.Len(t, all, m.EdgeCount())
	for i, e := range all {
		assert.Equal(t, i, e)
	}
}
