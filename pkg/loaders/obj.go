// Package loaders imports triangle meshes from Wavefront OBJ files.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
	"github.com/mpoquet/go-whitted-raytracer/pkg/geometry"
)

// OBJData holds the geometry parsed from an OBJ file. Vertices and Normals
// are 1-indexed to match the OBJ face statements, with a placeholder at
// index 0.
type OBJData struct {
	Vertices []core.Tuple
	Normals  []core.Tuple

	DefaultGroup *geometry.Shape
	Groups       map[string]*geometry.Shape
	groupOrder   []string

	// IgnoredLines counts lines the parser did not recognize.
	IgnoredLines int
}

// faceVertex is one vertex reference in a face statement.
type faceVertex struct {
	vertex    int
	normal    int
	hasNormal bool
}

// LoadOBJ reads an OBJ file from disk.
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return data, nil
}

// ParseOBJ reads an OBJ mesh from r. Vertex (v), normal (vn), face (f) and
// group (g) statements are honored; every other line is counted as ignored.
// Faces with more than three vertices are fan-triangulated, and faces that
// reference normals produce smooth triangles.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{
		Vertices:     []core.Tuple{core.NewPoint(0, 0, 0)},
		Normals:      []core.Tuple{core.NewVector(0, 0, 0)},
		DefaultGroup: geometry.NewGroup(),
		Groups:       make(map[string]*geometry.Shape),
	}
	currentGroup := data.DefaultGroup

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			data.IgnoredLines++
			continue
		}

		switch fields[0] {
		case "v":
			point, err := parsePoint(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex: %w", lineNumber, err)
			}
			data.Vertices = append(data.Vertices, point)

		case "vn":
			normal, err := parseVector(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid normal: %w", lineNumber, err)
			}
			data.Normals = append(data.Normals, normal)

		case "f":
			if err := data.addFace(currentGroup, fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: invalid face: %w", lineNumber, err)
			}

		case "g":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: group statement without a name", lineNumber)
			}
			currentGroup = data.namedGroup(fields[1])

		default:
			data.IgnoredLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}

	return data, nil
}

// Group returns the named group, or nil if the file never declared it.
func (d *OBJData) Group(name string) *geometry.Shape {
	return d.Groups[name]
}

// ToGroup collects the parsed mesh into a single group. The default group's
// triangles come first, followed by the named groups in declaration order.
func (d *OBJData) ToGroup() *geometry.Shape {
	if len(d.Groups) == 0 {
		return d.DefaultGroup
	}

	root := geometry.NewGroup()
	if len(d.DefaultGroup.Children()) > 0 {
		root.AddChild(d.DefaultGroup)
	}
	for _, name := range d.groupOrder {
		root.AddChild(d.Groups[name])
	}
	return root
}

func (d *OBJData) namedGroup(name string) *geometry.Shape {
	if g, ok := d.Groups[name]; ok {
		return g
	}
	g := geometry.NewGroup()
	d.Groups[name] = g
	d.groupOrder = append(d.groupOrder, name)
	return g
}

func (d *OBJData) addFace(group *geometry.Shape, refs []string) error {
	if len(refs) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(refs))
	}

	vertices := make([]faceVertex, len(refs))
	for i, ref := range refs {
		fv, err := d.parseFaceVertex(ref)
		if err != nil {
			return err
		}
		vertices[i] = fv
	}

	// Fan triangulation around the first vertex. Convex polygons only.
	for i := 1; i < len(vertices)-1; i++ {
		a, b, c := vertices[0], vertices[i], vertices[i+1]
		var tri *geometry.Shape
		if a.hasNormal && b.hasNormal && c.hasNormal {
			tri = geometry.NewSmoothTriangle(
				d.Vertices[a.vertex], d.Vertices[b.vertex], d.Vertices[c.vertex],
				d.Normals[a.normal], d.Normals[b.normal], d.Normals[c.normal],
			)
		} else {
			tri = geometry.NewTriangle(d.Vertices[a.vertex], d.Vertices[b.vertex], d.Vertices[c.vertex])
		}
		if err := group.AddChild(tri); err != nil {
			return err
		}
	}
	return nil
}

// parseFaceVertex parses one face vertex reference of the form "v", "v/t",
// "v//n" or "v/t/n". Texture indices are parsed and discarded.
func (d *OBJData) parseFaceVertex(ref string) (faceVertex, error) {
	parts := strings.Split(ref, "/")
	if len(parts) > 3 {
		return faceVertex{}, fmt.Errorf("malformed vertex reference %q", ref)
	}

	vertex, err := strconv.Atoi(parts[0])
	if err != nil {
		return faceVertex{}, fmt.Errorf("malformed vertex index %q: %w", ref, err)
	}
	if vertex < 1 || vertex >= len(d.Vertices) {
		return faceVertex{}, fmt.Errorf("vertex index %d out of range", vertex)
	}

	fv := faceVertex{vertex: vertex}
	if len(parts) == 3 && parts[2] != "" {
		normal, err := strconv.Atoi(parts[2])
		if err != nil {
			return faceVertex{}, fmt.Errorf("malformed normal index %q: %w", ref, err)
		}
		if normal < 1 || normal >= len(d.Normals) {
			return faceVertex{}, fmt.Errorf("normal index %d out of range", normal)
		}
		fv.normal = normal
		fv.hasNormal = true
	}
	return fv, nil
}

func parsePoint(fields []string) (core.Tuple, error) {
	x, y, z, err := parseCoordinates(fields)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.NewPoint(x, y, z), nil
}

func parseVector(fields []string) (core.Tuple, error) {
	x, y, z, err := parseCoordinates(fields)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.NewVector(x, y, z), nil
}

func parseCoordinates(fields []string) (x, y, z float64, err error) {
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	coords := make([]float64, 3)
	for i, f := range fields {
		coords[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("malformed coordinate %q: %w", f, err)
		}
	}
	return coords[0], coords[1], coords[2], nil
}
