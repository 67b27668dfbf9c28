package main

// Shader pairs per variant. Neither program takes uniforms; the vertex stage
// passes positions straight through as clip coordinates.
var (
	litVertexShaderSource = `
		#version 410
		in vec3 position;
		in vec3 normal;
		out float brightness;
		void main() {
			vec3 light = normalize(vec3(-1.0, 1.0, 1.0));
			brightness = 0.25 + 0.75 * max(dot(normalize(normal), light), 0.0);
			gl_Position = vec4(position, 1.0);
		}
	` + "\x00"

	litFragmentShaderSource = `
		#version 410
		in float brightness;
		out vec4 frag_colour;
		void main() {
			frag_colour = vec4(vec3(0.85, 0.35, 0.1) * brightness, 1.0);
		}
	` + "\x00"

	plainVertexShaderSource = `
		#version 410
		in vec3 position;
		void main() {
			gl_Position = vec4(position, 1.0);
		}
	` + "\x00"

	plainFragmentShaderSource = `
		#version 410
		out vec4 frag_colour;
		void main() {
			frag_colour = vec4(0.85, 0.35, 0.1, 1.0);
		}
	` + "\x00"
)

// variant bundles what differs between the lit and the plain rendering.
type variant struct {
	vertexShader   string
	fragmentShader string
	layout         Layout
	vertices       func(Triangle) []Vertex
}

func selectVariant(lit bool) variant {
	if lit {
		return variant{
			vertexShader:   litVertexShaderSource,
			fragmentShader: litFragmentShaderSource,
			layout:         litLayout,
			vertices:       LitVertices,
		}
	}
	return variant{
		vertexShader:   plainVertexShaderSource,
		fragmentShader: plainFragmentShaderSource,
		layout:         plainLayout,
		vertices:       PlainVertices,
	}
}

// vertexCount is the number of vertices a variant must produce per frame.
func (v variant) vertexCount() int {
	if len(v.layout) > 1 {
		return 6
	}
	return 3
}
