package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLitVertices(t *testing.T) {
	tri := sampleTriangle()
	tri.Spin = 1.3
	verts := LitVertices(tri)
	require.Len(t, verts, 6)

	front, back := tri.Corners(), tri.BackfaceCorners()
	n := tri.Normal()
	for k := 0; k < 3; k++ {
		assert.Equal(t, front[k], verts[k].Position)
		assert.Equal(t, n, verts[k].Normal)
		assert.Equal(t, back[k], verts[3+k].Position)
		assert.Equal(t, Negate(n), verts[3+k].Normal)
	}
}

func TestPlainVertices(t *testing.T) {
	tri := sampleTriangle()
	verts := PlainVertices(tri)
	require.Len(t, verts, 3)
	for k, c := range tri.Corners() {
		assert.Equal(t, c, verts[k].Position)
		assert.Equal(t, mgl32.Vec3{}, verts[k].Normal)
	}
}

func TestFlatten(t *testing.T) {
	verts := []Vertex{
		{Position: mgl32.Vec3{1, 2, 3}, Normal: mgl32.Vec3{4, 5, 6}},
		{Position: mgl32.Vec3{7, 8, 9}, Normal: mgl32.Vec3{10, 11, 12}},
	}

	data, err := litLayout.Flatten(verts)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, data)
	assert.Equal(t, int32(6), litLayout.Stride())

	data, err = plainLayout.Flatten(verts)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 7, 8, 9}, data)
	assert.Equal(t, int32(3), plainLayout.Stride())

	_, err = Layout{{Name: "colour", Size: 4}}.Flatten(verts)
	assert.Error(t, err)
}

func TestVariantVertexCount(t *testing.T) {
	tri := sampleTriangle()
	for _, lit := range []bool{true, false} {
		v := selectVariant(lit)
		verts := v.vertices(tri)
		assert.Len(t, verts, v.vertexCount(), "lit=%v", lit)

		data, err := v.layout.Flatten(verts)
		require.NoError(t, err)
		assert.Len(t, data, len(verts)*int(v.layout.Stride()))
	}
	assert.Equal(t, 6, selectVariant(true).vertexCount())
	assert.Equal(t, 3, selectVariant(false).vertexCount())
}

func TestShaderInputsMatchLayout(t *testing.T) {
	for _, lit := range []bool{true, false} {
		v := selectVariant(lit)
		for _, a := range v.layout {
			assert.Contains(t, v.vertexShader, "in vec3 "+a.Name+";", "lit=%v", lit)
		}
		assert.NotContains(t, v.vertexShader, "uniform")
		assert.NotContains(t, v.fragmentShader, "uniform")
	}
}
