package mesh

import (
	"fmt"

	"github.com/jordanro2/edgeslide/pkg/geometry"
)

// edgeKey identifies an undirected edge by its endpoint indices, lower first
type edgeKey struct {
	a, b int
}

func makeEdgeKey(v1, v2 int) edgeKey {
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	return edgeKey{a: v1, b: v2}
}

type edge struct {
	v1, v2 int
	faces  []int
}

type face struct {
	verts []int
	edges []int
}

// Model is an in-memory polygon mesh. Edges and face adjacency are
// derived automatically as faces are added, so after construction the
// model satisfies the Mesh interface without further indexing work.
type Model struct {
	Name string

	vertices  []geometry.Vector3
	edges     []edge
	faces     []face
	edgeIndex map[edgeKey]int
}

// NewModel creates an empty mesh model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		edgeIndex: make(map[edgeKey]int),
	}
}

// AddVertex appends a vertex and returns its index
func (m *Model) AddVertex(pos geometry.Vector3) int {
	m.vertices = append(m.vertices, pos)
	return len(m.vertices) - 1
}

// AddFace appends a face described by its vertex indices in boundary
// order. Edges between consecutive vertices are created on first use and
// shared between faces afterwards.
func (m *Model) AddFace(verts ...int) (int, error) {
	if len(verts) < 3 {
		return 0, fmt.Errorf("face needs at least 3 vertices, got %d", len(verts))
	}

	seen := make(map[int]bool, len(verts))
	for _, v := range verts {
		if v < 0 || v >= len(m.vertices) {
			return 0, fmt.Errorf("vertex index %d out of range (have %d vertices)", v, len(m.vertices))
		}
		if seen[v] {
			return 0, fmt.Errorf("degenerate face: vertex %d repeated", v)
		}
		seen[v] = true
	}

	faceID := len(m.faces)
	f := face{
		verts: append([]int(nil), verts...),
		edges: make([]int, 0, len(verts)),
	}

	for i := range verts {
		v1 := verts[i]
		v2 := verts[(i+1)%len(verts)]
		e := m.edgeFor(v1, v2)
		m.edges[e].faces = append(m.edges[e].faces, faceID)
		f.edges = append(f.edges, e)
	}

	m.faces = append(m.faces, f)
	return faceID, nil
}

// edgeFor returns the index of the undirected edge between v1 and v2,
// creating it if it does not exist yet
func (m *Model) edgeFor(v1, v2 int) int {
	key := makeEdgeKey(v1, v2)
	if e, ok := m.edgeIndex[key]; ok {
		return e
	}
	m.edges = append(m.edges, edge{v1: key.a, v2: key.b})
	m.edgeIndex[key] = len(m.edges) - 1
	return len(m.edges) - 1
}

// FindEdge returns the index of the edge between two vertices, or -1
func (m *Model) FindEdge(v1, v2 int) int {
	if e, ok := m.edgeIndex[makeEdgeKey(v1, v2)]; ok {
		return e
	}
	return -1
}

// VertexCount returns the number of vertices
func (m *Model) VertexCount() int {
	return len(m.vertices)
}

// VertexPosition returns the position of a vertex
func (m *Model) VertexPosition(v int) geometry.Vector3 {
	return m.vertices[v]
}

// EdgeCount returns the number of unique edges
func (m *Model) EdgeCount() int {
	return len(m.edges)
}

// EdgeVertices returns the two endpoint indices of an edge
func (m *Model) EdgeVertices(e int) (int, int) {
	return m.edges[e].v1, m.edges[e].v2
}

// EdgeFaces returns the indices of the faces adjacent to an edge
func (m *Model) EdgeFaces(e int) []int {
	return m.edges[e].faces
}

// FaceCount returns the number of faces
func (m *Model) FaceCount() int {
	return len(m.faces)
}

// FaceVertices returns the vertex indices of a face in boundary order
func (m *Model) FaceVertices(f int) []int {
	return m.faces[f].verts
}

// FaceEdges returns the edge indices of a face in boundary order
func (m *Model) FaceEdges(f int) []int {
	return m.faces[f].edges
}

// AllEdges returns every edge index, useful as a stand-in for a
// whole-mesh selection
func (m *Model) AllEdges() []int {
	all := make([]int, len(m.edges))
	for i := range all {
		all[i] = i
	}
	return all
}
