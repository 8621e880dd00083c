package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jordanro2/edgeslide/pkg/geometry"
)

// Load reads a mesh file and returns a Model.
// The format is chosen by file extension: .obj for Wavefront OBJ,
// .stl for STL (ASCII or binary).
func Load(filename string) (*Model, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".obj":
		return ParseOBJ(filename)
	case ".stl":
		return ParseSTL(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q (expected .obj or .stl)", filepath.Ext(filename))
	}
}

// ParseOBJ reads a Wavefront OBJ file and returns a Model.
// Only geometry is read: v and f statements, with quad and n-gon faces
// kept intact. Texture and normal references in face entries are ignored.
func ParseOBJ(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return parseOBJ(file, name)
}

// parseOBJ parses OBJ data from a reader
func parseOBJ(reader io.Reader, name string) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel(name)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "o", "g":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNum)
			}
			x, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex coordinate: %w", lineNum, err)
			}
			y, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex coordinate: %w", lineNum, err)
			}
			z, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex coordinate: %w", lineNum, err)
			}
			model.AddVertex(geometry.NewVector3(x, y, z))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}
			verts := make([]int, 0, len(fields)-1)
			for _, entry := range fields[1:] {
				idx, err := parseOBJIndex(entry, model.VertexCount())
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				verts = append(verts, idx)
			}
			if _, err := model.AddFace(verts...); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	return model, nil
}

// parseOBJIndex converts an OBJ face entry ("7", "7/1", "7/1/3", "-1")
// to a zero-based vertex index. OBJ indices are 1-based; negative values
// count back from the most recently added vertex.
func parseOBJIndex(entry string, vertexCount int) (int, error) {
	if slash := strings.IndexByte(entry, '/'); slash >= 0 {
		entry = entry[:slash]
	}

	idx, err := strconv.Atoi(entry)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q: %w", entry, err)
	}

	switch {
	case idx > 0:
		idx--
	case idx < 0:
		idx = vertexCount + idx
	default:
		return 0, fmt.Errorf("face index 0 is not valid in OBJ")
	}

	if idx < 0 || idx >= vertexCount {
		return 0, fmt.Errorf("face index %q out of range (have %d vertices)", entry, vertexCount)
	}
	return idx, nil
}
