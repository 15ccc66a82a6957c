package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"tablescene/internal/config"
	"tablescene/internal/graphics"
	"tablescene/internal/input"
	"tablescene/internal/scene"
	"tablescene/internal/view"
)

func init() {
	// GL and GLFW calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	config.Load("tablescene.toml")

	if err := glfw.Init(); err != nil {
		log.Fatalf("failed to initialize glfw: %v", err)
	}
	closer.Bind(glfw.Terminate)

	im := input.NewInputManager()

	// the controller is created before the shader exists; the shader is
	// attached once the GL context is current
	controller := view.NewController(nil, im)
	window, err := controller.CreateDisplayWindow("Tabletop Scene")
	if err != nil {
		closer.Fatalln("window creation failed:", err)
	}

	if err := gl.Init(); err != nil {
		closer.Fatalln("failed to initialize OpenGL bindings:", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	shader, err := graphics.NewSceneShader()
	if err != nil {
		closer.Fatalln("shader build failed:", err)
	}
	closer.Bind(shader.Delete)
	shader.Use()
	controller.AttachShader(shader)

	manager := scene.NewManager(shader)
	closer.Bind(manager.Dispose)

	manager.PrepareScene()

	for !window.ShouldClose() {
		gl.ClearColor(0.1, 0.1, 0.1, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		controller.PrepareSceneView()
		manager.RenderScene()

		window.SwapBuffers()
		glfw.PollEvents()
		im.PostUpdate()
	}

	closer.Close()
}
