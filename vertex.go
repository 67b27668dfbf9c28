package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one per-vertex record as consumed by the shader program.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Attribute is a float vertex input declared by a shader.
type Attribute struct {
	Name string
	Size int32
}

// Layout is the ordered list of attributes interleaved in each vertex.
type Layout []Attribute

var (
	plainLayout = Layout{{Name: "position", Size: 3}}
	litLayout   = Layout{{Name: "position", Size: 3}, {Name: "normal", Size: 3}}
)

// Stride returns the number of floats per vertex.
func (l Layout) Stride() int32 {
	var n int32
	for _, a := range l {
		n += a.Size
	}
	return n
}

// LitVertices returns the front face tagged with the front normal followed by
// the back face tagged with the negated normal.
func LitVertices(t Triangle) []Vertex {
	normal := t.Normal()
	back := Negate(normal)
	verts := make([]Vertex, 0, 6)
	for _, p := range t.Corners() {
		verts = append(verts, Vertex{Position: p, Normal: normal})
	}
	for _, p := range t.BackfaceCorners() {
		verts = append(verts, Vertex{Position: p, Normal: back})
	}
	return verts
}

// PlainVertices returns the front face only, without normals.
func PlainVertices(t Triangle) []Vertex {
	c := t.Corners()
	return []Vertex{{Position: c[0]}, {Position: c[1]}, {Position: c[2]}}
}

// Flatten interleaves verts into the float layout expected by the vertex
// buffer.
func (l Layout) Flatten(verts []Vertex) ([]float32, error) {
	data := make([]float32, 0, int(l.Stride())*len(verts))
	for _, v := range verts {
		for _, a := range l {
			switch a.Name {
			case "position":
				data = append(data, v.Position[:]...)
			case "normal":
				data = append(data, v.Normal[:]...)
			default:
				return nil, fmt.Errorf("unknown vertex attribute %q", a.Name)
			}
		}
	}
	return data, nil
}
