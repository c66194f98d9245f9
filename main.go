package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"windingcircle/config"
	"windingcircle/controls"
	"windingcircle/curve"
	"windingcircle/export"
	"windingcircle/scene"
)

const (
	width  = 800
	height = 600
	title  = "Winding Circle"
)

var (
	vertexShaderSource = `
		#version 410
		in vec3 vp;
		uniform mat4 mvp;
		void main() {
			gl_Position = mvp * vec4(vp, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		out vec4 frag_colour;
		void main() {
			frag_colour = vec4(1, 1, 0, 1); // Yellow
		}
	` + "\x00"
)

var (
	configPath = flag.String("config", "", "TOML parameter file to start from")
	outDir     = flag.String("out", "", "keep created curves in this directory instead of memory")
	format     = flag.String("format", "svg", "preview format written next to each curve in -out")
	logLevel   = flag.String("log-level", "info", "debug, info, warn or error")
)

// curveBuffer holds the vertex buffer of the curve on screen
type curveBuffer struct {
	vao, vbo uint32
	count    int32
	scale    float32
}

func newCurveBuffer(program uint32) *curveBuffer {
	b := &curveBuffer{scale: 1}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
	return b
}

func (b *curveBuffer) upload(seq curve.Sequence) {
	vertices := seq.Flat()
	b.count = int32(len(seq))
	if extent := seq.Extent(); extent > 0 {
		b.scale = float32(1 / extent)
	}
	if len(vertices) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
}

func (b *curveBuffer) draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.LINE_STRIP, 0, b.count)
}

// linkProgram compiles the line shaders and links them into one program
func linkProgram() (uint32, error) {
	program := gl.CreateProgram()
	for _, src := range []struct {
		kind uint32
		code string
	}{
		{gl.VERTEX_SHADER, vertexShaderSource},
		{gl.FRAGMENT_SHADER, fragmentShaderSource},
	} {
		shader := gl.CreateShader(src.kind)
		csources, free := gl.Strs(src.code)
		gl.ShaderSource(shader, 1, csources, nil)
		free()
		gl.CompileShader(shader)

		var ok int32
		gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
		if ok == gl.FALSE {
			var n int32
			gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
			msg := strings.Repeat("\x00", int(n+1))
			gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
			return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(msg, "\x00"))
		}
		gl.AttachShader(program, shader)
		// flagged shaders are freed once the program is deleted
		defer gl.DeleteShader(shader)
	}
	gl.LinkProgram(program)

	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		msg := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(program, n, nil, gl.Str(msg))
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(msg, "\x00"))
	}
	return program, nil
}

func newStore() (scene.Store, error) {
	if *outDir == "" {
		return scene.NewMemory(), nil
	}
	enc, err := export.ByName(*format)
	if err != nil {
		return nil, err
	}
	return scene.OpenDir(*outDir, enc)
}

func main() {
	flag.Parse()
	runtime.LockOSThread()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalln("bad -log-level:", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store, err := newStore()
	if err != nil {
		log.Fatalln("failed to open store:", err)
	}
	panel := controls.New(store)
	panel.Log = logger
	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			log.Fatalln("failed to load config:", err)
		}
		if err := f.Configure(panel); err != nil {
			log.Fatalln("failed to apply config:", err)
		}
	}

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		panic(err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	logger.Info("opengl ready", "version", version)

	program, err := linkProgram()
	if err != nil {
		panic(err)
	}
	gl.UseProgram(program)

	mvpUniform := gl.GetUniformLocation(program, gl.Str("mvp\x00"))

	buf := newCurveBuffer(program)
	panel.OnCommit = func(name string, seq curve.Sequence) {
		buf.upload(seq)
	}
	if _, err := panel.Create(); err != nil {
		logger.Error("create failed", "err", err)
	}

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		if key == glfw.KeyH && action == glfw.Press {
			fmt.Print(controls.Help())
			return
		}
		if key < glfw.KeyA || key > glfw.KeyZ {
			return
		}
		if action == glfw.Repeat && !controls.Repeats(rune(key)) {
			return
		}
		ok, err := panel.Press(rune(key), mods&glfw.ModShift != 0)
		if err != nil {
			logger.Error("control failed", "err", err)
		}
		if ok {
			logger.Debug("controls", "state", panel.Summary())
		}
	})

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	projection := mgl32.Perspective(mgl32.DegToRad(45.0), float32(width)/float32(height), 0.1, 100.0)
	camera := mgl32.LookAtV(mgl32.Vec3{0, 1.6, 3}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	angle := 0.0
	lastFrameTime := glfw.GetTime()
	lastTitleTime := glfw.GetTime()
	frameCount := 0

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastFrameTime
		lastFrameTime = currentTime

		frameCount++
		if currentTime-lastTitleTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | %s | FPS: %d", title, panel.Summary(), frameCount))
			frameCount = 0
			lastTitleTime = currentTime
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		gl.UseProgram(program)

		// slow orbit around the up axis
		orbitSpeed := 0.4
		angle += orbitSpeed * deltaTime

		model := mgl32.HomogRotate3D(float32(angle), mgl32.Vec3{0, 1, 0}).Mul4(mgl32.Scale3D(buf.scale, buf.scale, buf.scale))

		mvp := projection.Mul4(camera).Mul4(model)
		gl.UniformMatrix4fv(mvpUniform, 1, false, &mvp[0])

		buf.draw()

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
