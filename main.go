package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func main() {
	runtime.LockOSThread()
	log.SetFlags(0)
	log.SetPrefix("spintri: ")

	configPath := flag.String("config", "", "optional TOML file overriding the default settings")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			log.Fatalln("failed to load config:", err)
		}
	}

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	if err := run(cfg); err != nil {
		glfw.Terminate()
		log.Fatalln(err)
	}
}

// run owns the window and drives the frame loop until the window is closed.
func run(cfg Config) error {
	triangle, err := cfg.Triangle.Shape()
	if err != nil {
		return fmt.Errorf("triangle: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}
	fmt.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	v := selectVariant(cfg.Lit)
	program, err := newProgram(v.vertexShader, v.fragmentShader)
	if err != nil {
		return fmt.Errorf("building program: %w", err)
	}
	defer gl.DeleteProgram(program)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	defer gl.DeleteVertexArrays(1, &vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	defer gl.DeleteBuffers(1, &vbo)

	if err := bindLayout(program, v.layout); err != nil {
		return err
	}

	// Front faces are wound clockwise; counter-clockwise ones get culled.
	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CW)
	gl.CullFace(gl.BACK)

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])

	events := newEventQueue(window)

	start := time.Now()
	lastFps := start
	frameCount := 0

	for running := true; running; running = events.Poll() {
		now := time.Now()

		frameCount++
		if now.Sub(lastFps) >= time.Second {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Window.Title, frameCount))
			frameCount = 0
			lastFps = now
		}

		triangle.Spin = SpinAngle(now.Sub(start), cfg.RevolutionsPerSecond)
		if err := drawFrame(program, v, triangle); err != nil {
			return err
		}
		window.SwapBuffers()
	}
	return nil
}

// drawFrame uploads the current geometry and issues the single draw call.
func drawFrame(program uint32, v variant, t Triangle) error {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	verts := v.vertices(t)
	if len(verts) != v.vertexCount() {
		return fmt.Errorf("assembled %d vertices, want %d", len(verts), v.vertexCount())
	}
	data, err := v.layout.Flatten(verts)
	if err != nil {
		return err
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)

	gl.UseProgram(program)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)))

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("draw failed: gl error 0x%x", code)
	}
	return nil
}

// bindLayout points each attribute of layout at its slot in the bound
// vertex buffer, looked up by name in program.
func bindLayout(program uint32, layout Layout) error {
	stride := layout.Stride() * 4
	var offset int
	for _, a := range layout {
		loc := gl.GetAttribLocation(program, gl.Str(a.Name+"\x00"))
		if loc < 0 {
			return fmt.Errorf("program has no vertex input %q", a.Name)
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointer(uint32(loc), a.Size, gl.FLOAT, false, stride, gl.PtrOffset(offset))
		offset += int(a.Size) * 4
	}
	return nil
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}
