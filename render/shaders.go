package render

import "embed"

// Shaders holds the GLSL sources under shaders/.
//
//go:embed shaders/*.vert shaders/*.frag
var Shaders embed.FS

const (
	GridVertexShader   = "shaders/infinite_grid.vert"
	GridFragmentShader = "shaders/infinite_grid.frag"
)
