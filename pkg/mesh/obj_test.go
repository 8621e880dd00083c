package mesh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeOBJ = `# unit cube
o cube
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 0 0 1
v 1 0 1
v 1 1 1
v 0 1 1
f 1 2 3 4
f 5 8 7 6
f 1 5 6 2
f 2 6 7 3
f 3 7 8 4
f 4 8 5 1
`

func TestParseOBJCube(t *testing.T) {
	m, err := parseOBJ(strings.NewReader(cubeOBJ), "fallback")
	require.NoError(t, err)

	assert.Equal(t, "cube", m.Name)
	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 12, m.EdgeCount())
	assert.Equal(t, 6, m.FaceCount())

	// Every cube edge is interior: two adjacent quads
	for e := 0; e < m.EdgeCount(); e++ {
		assert.Len(t, m.EdgeFaces(e), 2, "edge %d", e)
	}
}

func TestParseOBJFaceEntryVariants(t *testing.T) {
	data := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1/1/1 2/2/2 3/3/3 -1
`
	m, err := parseOBJ(strings.NewReader(data), "variants")
	require.NoError(t, err)

	require.Equal(t, 1, m.FaceCount())
	assert.Equal(t, []int{0, 1, 2, 3}, m.FaceVertices(0))
}

func TestParseOBJNgon(t *testing.T) {
	data := `v 0 0 0
v 2 0 0
v 3 1 0
v 1 2 0
v -1 1 0
f 1 2 3 4 5
`
	m, err := parseOBJ(strings.NewReader(data), "pentagon")
	require.NoError(t, err)

	require.Equal(t, 1, m.FaceCount())
	assert.Len(t, m.FaceVertices(0), 5)
	assert.Equal(t, 5, m.EdgeCount())
}

func TestParseOBJErrors(t *testing.T) {
	cases := map[string]string{
		"short vertex":       "v 1 2\n",
		"bad coordinate":     "v 1 2 x\n",
		"short face":         "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2\n",
		"index out of range": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n",
		"zero index":         "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
	}

	for name, data := range cases {
		_, err := parseOBJ(strings.NewReader(data), name)
		assert.Error(t, err, name)
	}
}

func TestLoadDispatchesByExtension(t *testing.T) {
	dir := t.TempDir()

	objPath := filepath.Join(dir, "cube.obj")
	require.NoError(t, os.WriteFile(objPath, []byte(cubeOBJ), 0o644))

	m, err := Load(objPath)
	require.NoError(t, err)
	assert.Equal(t, 6, m.FaceCount())

	_, err = Load(filepath.Join(dir, "cube.ply"))
	assert.Error(t, err)
}
