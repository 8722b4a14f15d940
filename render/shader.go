package render

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shader is a linked program. The compiled stages are released once linked.
type Shader struct {
	ProgramShader uint32
}

// NewShader compiles and links the vertex and fragment sources at the given
// paths in fsys. A current GL context is required.
func NewShader(fsys fs.FS, vertPath, fragPath string) (*Shader, error) {
	vertexSource, err := readShaderSource(fsys, vertPath)
	if err != nil {
		return nil, err
	}
	fragmentSource, err := readShaderSource(fsys, fragPath)
	if err != nil {
		return nil, err
	}

	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader %s: %w", vertPath, err)
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, fmt.Errorf("fragment shader %s: %w", fragPath, err)
	}

	programShader := gl.CreateProgram()
	gl.AttachShader(programShader, vertexShader)
	gl.AttachShader(programShader, fragmentShader)
	gl.LinkProgram(programShader)

	// The program keeps the compiled stages alive
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(programShader, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(programShader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(programShader, logLength, nil, gl.Str(log))
		gl.DeleteProgram(programShader)

		return nil, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}
	return &Shader{ProgramShader: programShader}, nil
}

func (sh *Shader) Use() {
	gl.UseProgram(sh.ProgramShader)
}

// UniformLocation looks up a uniform by name. Uniforms the GLSL compiler
// optimised away are reported as errors.
func (sh *Shader) UniformLocation(name string) (int32, error) {
	loc := gl.GetUniformLocation(sh.ProgramShader, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("uniform %q not found", name)
	}
	return loc, nil
}

func (sh *Shader) Delete() {
	gl.DeleteProgram(sh.ProgramShader)
	sh.ProgramShader = 0
}

// readShaderSource loads a GLSL source and null-terminates it for gl.Strs.
func readShaderSource(fsys fs.FS, path string) (string, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("read shader: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", fmt.Errorf("shader %s is empty", path)
	}
	return string(data) + "\x00", nil
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

		return 0, fmt.Errorf("failed to compile: %v", strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}
