package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jordanro2/edgeslide/pkg/geometry"
)

// ParseSTL reads an STL file and returns a Model.
// It automatically detects whether the file is ASCII or binary format.
//
// STL stores disconnected triangles, so coinciding corner positions are
// welded into shared vertices while loading. Without welding no triangle
// would share an edge and every edge would look like a mesh boundary.
func ParseSTL(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Read first few bytes to determine format
	header := make([]byte, 6)
	n, err := file.Read(header)
	if err != nil {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	// Reset file pointer
	if _, err := file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to reset file pointer: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	builder := newSTLBuilder(name)

	// ASCII format starts with "solid "
	if n >= 5 && strings.HasPrefix(string(header[:5]), "solid") {
		return builder.parseASCII(file)
	}

	return builder.parseBinary(file)
}

// stlBuilder accumulates welded triangles into a Model
type stlBuilder struct {
	model *Model
	weld  map[geometry.Vector3]int
}

func newSTLBuilder(name string) *stlBuilder {
	return &stlBuilder{
		model: NewModel(name),
		weld:  make(map[geometry.Vector3]int),
	}
}

// vertex returns the welded index for a position, adding it on first use
func (b *stlBuilder) vertex(pos geometry.Vector3) int {
	if v, ok := b.weld[pos]; ok {
		return v
	}
	v := b.model.AddVertex(pos)
	b.weld[pos] = v
	return v
}

// addTriangle welds the corners and adds the face.
// Triangles that collapse to fewer than three distinct vertices after
// welding are dropped.
func (b *stlBuilder) addTriangle(p1, p2, p3 geometry.Vector3) {
	v1 := b.vertex(p1)
	v2 := b.vertex(p2)
	v3 := b.vertex(p3)
	if v1 == v2 || v2 == v3 || v1 == v3 {
		return
	}
	_, _ = b.model.AddFace(v1, v2, v3)
}

// parseASCII parses an ASCII STL file
func (b *stlBuilder) parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)

	var vertices []geometry.Vector3

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				b.model.Name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			if len(fields) >= 4 {
				x, _ := strconv.ParseFloat(fields[1], 64)
				y, _ := strconv.ParseFloat(fields[2], 64)
				z, _ := strconv.ParseFloat(fields[3], 64)
				vertices = append(vertices, geometry.NewVector3(x, y, z))
			}

		case "endfacet":
			if len(vertices) == 3 {
				b.addTriangle(vertices[0], vertices[1], vertices[2])
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return b.model, nil
}

// parseBinary parses a binary STL file
func (b *stlBuilder) parseBinary(reader io.Reader) (*Model, error) {
	// Read 80-byte header
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	headerStr := string(bytes.TrimRight(header, "\x00"))
	if len(headerStr) > 0 {
		b.model.Name = headerStr
	}

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var normal, v1, v2, v3 [3]float32
		var attributeByteCount uint16

		if err := binary.Read(reader, binary.LittleEndian, &normal); err != nil {
			return nil, fmt.Errorf("failed to read normal for triangle %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &v1); err != nil {
			return nil, fmt.Errorf("failed to read v1 for triangle %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &v2); err != nil {
			return nil, fmt.Errorf("failed to read v2 for triangle %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &v3); err != nil {
			return nil, fmt.Errorf("failed to read v3 for triangle %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &attributeByteCount); err != nil {
			return nil, fmt.Errorf("failed to read attribute for triangle %d: %w", i, err)
		}

		b.addTriangle(
			geometry.NewVector3(float64(v1[0]), float64(v1[1]), float64(v1[2])),
			geometry.NewVector3(float64(v2[0]), float64(v2[1]), float64(v2[2])),
			geometry.NewVector3(float64(v3[0]), float64(v3[1]), float64(v3[2])),
		)
	}

	return b.model, nil
}
