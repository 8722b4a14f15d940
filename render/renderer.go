package render

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const gridVertexCount = 6

// GridStyle controls how the ground grid is drawn.
type GridStyle struct {
	Size       float32
	CellSize   float32
	ThinColor  mgl32.Vec4
	ThickColor mgl32.Vec4
}

func DefaultGridStyle() GridStyle {
	return GridStyle{
		Size:       100.0,
		CellSize:   0.025,
		ThinColor:  mgl32.Vec4{0.5, 0.5, 0.5, 1.0},
		ThickColor: mgl32.Vec4{0.0, 0.0, 0.0, 1.0},
	}
}

type Renderer struct {
	Vao    uint32
	Shader *Shader
	Grid   GridStyle

	vpLoc             int32
	cameraWorldPosLoc int32
}

func NewRenderer(grid GridStyle) *Renderer {
	return &Renderer{Grid: grid}
}

// Init loads the GL function pointers and builds the grid program. It must
// run on the thread that owns the current context.
func (r *Renderer) Init(shaders fs.FS) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("could not initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	log.Println("OpenGL version", version)

	shader, err := NewShader(shaders, GridVertexShader, GridFragmentShader)
	if err != nil {
		return err
	}
	r.Shader = shader

	if err := r.lookupUniforms(); err != nil {
		r.Shader.Delete()
		return err
	}

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Enable(gl.DEPTH_TEST)

	// Set appropriate blending mode
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	// The grid vertices come from gl_VertexID, but core profile still needs a bound VAO
	gl.GenVertexArrays(1, &r.Vao)
	gl.BindVertexArray(r.Vao)

	return nil
}

func (r *Renderer) lookupUniforms() error {
	var err error
	if r.vpLoc, err = r.Shader.UniformLocation("gVP"); err != nil {
		return err
	}
	if r.cameraWorldPosLoc, err = r.Shader.UniformLocation("gCameraWorldPos"); err != nil {
		return err
	}

	// Grid style is constant for the program's lifetime
	r.Shader.Use()
	style := []struct {
		name string
		set  func(loc int32)
	}{
		{"gGridSize", func(loc int32) { gl.Uniform1f(loc, r.Grid.Size) }},
		{"gGridCellSize", func(loc int32) { gl.Uniform1f(loc, r.Grid.CellSize) }},
		{"gGridColorThin", func(loc int32) { gl.Uniform4fv(loc, 1, &r.Grid.ThinColor[0]) }},
		{"gGridColorThick", func(loc int32) { gl.Uniform4fv(loc, 1, &r.Grid.ThickColor[0]) }},
	}
	for _, u := range style {
		loc, err := r.Shader.UniformLocation(u.name)
		if err != nil {
			return err
		}
		u.set(loc)
	}
	return nil
}

// Viewport sets the GL viewport to the framebuffer size.
func (r *Renderer) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// DrawFrame clears the framebuffer and draws the grid as seen from the camera.
func (r *Renderer) DrawFrame(viewMatrix, projectionMatrix mgl32.Mat4, cameraWorldPos mgl32.Vec3) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.Shader.Use()

	model := mgl32.Ident4()
	vp := projectionMatrix.Mul4(viewMatrix).Mul4(model)
	gl.UniformMatrix4fv(r.vpLoc, 1, false, &vp[0])
	gl.Uniform3fv(r.cameraWorldPosLoc, 1, &cameraWorldPos[0])

	// Draw the plane (generated in the shader)
	gl.BindVertexArray(r.Vao)
	gl.DrawArrays(gl.TRIANGLES, 0, gridVertexCount)
}

func (r *Renderer) Delete() {
	gl.DeleteVertexArrays(1, &r.Vao)
	r.Vao = 0
	if r.Shader != nil {
		r.Shader.Delete()
	}
}
