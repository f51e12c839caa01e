// Package renderer draws the demo world with a single flat-shaded
// program. Geometry is position-only; face normals come from screen
// derivatives in the fragment shader, mirroring the collision mesh's
// position-only representation.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/stride/internal/engine/scene"
	"github.com/Faultbox/stride/internal/engine/shader"
	"github.com/Faultbox/stride/pkg/math"
)

const vertexShaderSrc = `#version 410 core
layout (location = 0) in vec3 aPos;
uniform mat4 uViewProj;
uniform mat4 uModel;
out vec3 vWorld;
void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorld = world.xyz;
	gl_Position = uViewProj * world;
}
`

const fragmentShaderSrc = `#version 410 core
in vec3 vWorld;
uniform vec3 uTint;
uniform int uUnlit;
out vec4 fragColor;
void main() {
	if (uUnlit == 1) {
		fragColor = vec4(uTint, 1.0);
		return;
	}
	vec3 n = normalize(cross(dFdx(vWorld), dFdy(vWorld)));
	vec3 lightDir = normalize(vec3(0.4, 0.8, 0.45));
	float diff = max(dot(n, lightDir), 0.0);
	vec3 color = uTint * (0.35 + 0.65 * diff);
	fragColor = vec4(color, 1.0);
}
`

type gpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	model      math.Mat4
	tint       [3]float32
}

// Renderer owns the GL program and the uploaded scene geometry.
type Renderer struct {
	program     uint32
	locViewProj int32
	locModel    int32
	locTint     int32
	locUnlit    int32

	meshes []gpuMesh

	overlayVAO   uint32
	overlayVBO   uint32
	overlayCount int32

	width  int32
	height int32
}

// New creates the renderer. The OpenGL context must already exist.
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	program, err := shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("compiling scene shader: %w", err)
	}

	r := &Renderer{
		program:     program,
		locViewProj: shader.GetUniform(program, "uViewProj"),
		locModel:    shader.GetUniform(program, "uModel"),
		locTint:     shader.GetUniform(program, "uTint"),
		locUnlit:    shader.GetUniform(program, "uUnlit"),
		width:       int32(width),
		height:      int32(height),
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return r, nil
}

// UploadScene replaces the uploaded geometry with root's meshes,
// expanding instanced nodes into one draw per instance. Non-collidable
// props are tinted differently so the walkthrough shows what the
// collider ignores.
func (r *Renderer) UploadScene(root *scene.Node) {
	r.releaseMeshes()

	root.Walk(func(node *scene.Node, world math.Mat4, collidable bool) {
		if node.Geometry == nil {
			return
		}
		tint := [3]float32{0.62, 0.64, 0.66}
		if !collidable {
			tint = [3]float32{0.35, 0.55, 0.8}
		}
		if len(node.Instances) > 0 {
			for _, inst := range node.Instances {
				r.uploadMesh(node.Geometry, world.Mul(inst), tint)
			}
		} else {
			r.uploadMesh(node.Geometry, world, tint)
		}
	})
}

func (r *Renderer) uploadMesh(g *scene.Geometry, model math.Mat4, tint [3]float32) {
	indices := g.Indices
	if indices == nil {
		indices = make([]uint32, len(g.Positions)/3)
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	if len(indices) == 0 || len(g.Positions) == 0 {
		return
	}

	m := gpuMesh{indexCount: int32(len(indices)), model: model, tint: tint}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Positions)*4, gl.Ptr(g.Positions), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindVertexArray(0)

	r.meshes = append(r.meshes, m)
}

// SetOverlay replaces the debug line list (packed x,y,z pairs in world
// space) drawn on top of the scene. An empty slice hides the overlay.
func (r *Renderer) SetOverlay(lines []float32) {
	r.overlayCount = int32(len(lines) / 3)
	if r.overlayCount == 0 {
		return
	}

	if r.overlayVAO == 0 {
		gl.GenVertexArrays(1, &r.overlayVAO)
		gl.GenBuffers(1, &r.overlayVBO)
		gl.BindVertexArray(r.overlayVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
		gl.BindVertexArray(0)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(lines)*4, gl.Ptr(lines), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render clears the frame and draws every uploaded mesh from view.
func (r *Renderer) Render(view math.Mat4) {
	gl.Viewport(0, 0, r.width, r.height)
	gl.ClearColor(0.16, 0.18, 0.22, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(r.width) / float32(r.height)
	proj := math.Perspective(0.785398, aspect, 0.1, 1000.0) // 45 degrees FOV
	viewProj := proj.Mul(view)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform1i(r.locUnlit, 0)

	for i := range r.meshes {
		m := &r.meshes[i]
		gl.UniformMatrix4fv(r.locModel, 1, false, m.model.Ptr())
		gl.Uniform3f(r.locTint, m.tint[0], m.tint[1], m.tint[2])
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	}

	if r.overlayCount > 0 && r.overlayVAO != 0 {
		identity := math.Identity()
		gl.UniformMatrix4fv(r.locModel, 1, false, identity.Ptr())
		gl.Uniform3f(r.locTint, 1.0, 0.85, 0.2)
		gl.Uniform1i(r.locUnlit, 1)
		gl.BindVertexArray(r.overlayVAO)
		gl.DrawArrays(gl.LINES, 0, r.overlayCount)
	}
	gl.BindVertexArray(0)
}

// Resize updates the viewport dimensions.
func (r *Renderer) Resize(width, height int) {
	if width > 0 && height > 0 {
		r.width = int32(width)
		r.height = int32(height)
	}
}

func (r *Renderer) releaseMeshes() {
	for i := range r.meshes {
		m := &r.meshes[i]
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	r.meshes = r.meshes[:0]
}

// Destroy releases all GL resources.
func (r *Renderer) Destroy() {
	r.releaseMeshes()
	if r.overlayVAO != 0 {
		gl.DeleteBuffers(1, &r.overlayVBO)
		gl.DeleteVertexArrays(1, &r.overlayVAO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
