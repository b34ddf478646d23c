// Package opengl renders toolkit draw lists with an OpenGL 4.1 core
// profile context.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/scoped/toolkit"
)

// Texture sampling modes, matching the uTexMode uniform.
const (
	texModeNone  = 0 // untextured geometry, vertex color only
	texModeAlpha = 1 // single-channel mask tinted by vertex color
	texModeRGBA  = 2 // full-color texture modulated by vertex color
)

// Renderer implements toolkit.Renderer on an OpenGL 4.1 core context.
// Draw lists arrive finalized from GUI.End, pre-batched by clip rect
// and texture with empty commands pruned, so Render is a straight
// upload and replay.
type Renderer struct {
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32
	fontTex uint32

	uProj    int32
	uSampler int32
	uTexMode int32

	// GPU buffer capacities in bytes; buffers grow when a frame
	// outgrows them and are reused otherwise.
	vtxCap int
	idxCap int

	width  int
	height int

	// Textures sampled as single-channel alpha masks. Anything not in
	// the set is sampled as full RGBA, so textures pushed for Image
	// widgets need no registration; only mask atlases do.
	alphaTextures map[uint32]bool
}

const vertexShaderSrc = `
#version 410 core
layout (location = 0) in vec2 inPos;
layout (location = 1) in vec2 inUV;
layout (location = 2) in vec4 inColor;

uniform mat4 uProj;

out vec2 fragUV;
out vec4 fragTint;

void main() {
    fragUV = inUV;
    fragTint = inColor;
    gl_Position = uProj * vec4(inPos, 0.0, 1.0);
}
` + "\x00"

const fragmentShaderSrc = `
#version 410 core
in vec2 fragUV;
in vec4 fragTint;

uniform sampler2D uSampler;
uniform int uTexMode;

out vec4 outColor;

void main() {
    if (uTexMode == 1) {
        outColor = vec4(fragTint.rgb, fragTint.a * texture(uSampler, fragUV).r);
    } else if (uTexMode == 2) {
        outColor = fragTint * texture(uSampler, fragUV);
    } else {
        outColor = fragTint;
    }
}
` + "\x00"

// NewRenderer creates a renderer for the given viewport size, in the
// same pixel coordinates the toolkit lays out in. A current OpenGL 4.1
// core context is required.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:         width,
		height:        height,
		alphaTextures: make(map[uint32]bool),
	}

	var err error
	r.program, err = linkProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("gui shader: %w", err)
	}
	r.uProj = gl.GetUniformLocation(r.program, gl.Str("uProj\x00"))
	r.uSampler = gl.GetUniformLocation(r.program, gl.Str("uSampler\x00"))
	r.uTexMode = gl.GetUniformLocation(r.program, gl.Str("uTexMode\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	stride := int32(unsafe.Sizeof(toolkit.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, unsafe.Offsetof(toolkit.Vertex{}.Pos))
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(toolkit.Vertex{}.TexCoord))
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(toolkit.Vertex{}.Color))
	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.fontTex = newAlphaTexture(buildFontAtlas(), atlasWidth, atlasHeight)
	r.alphaTextures[r.fontTex] = true

	return r, nil
}

// FontTextureID returns the texture holding the built-in glyph atlas.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// RegisterAlphaTexture marks a texture as a single-channel mask whose
// R channel is alpha, tinted by vertex color — the sampling a font
// atlas wants. Unregistered textures are sampled as full RGBA.
func (r *Renderer) RegisterAlphaTexture(textureID uint32) {
	r.alphaTextures[textureID] = true
}

// UnregisterTexture forgets a texture registered with
// RegisterAlphaTexture. Call it when the texture is deleted.
func (r *Renderer) UnregisterTexture(textureID uint32) {
	delete(r.alphaTextures, textureID)
}

// Resize updates the projection to a new viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render uploads and replays one finalized draw list.
func (r *Renderer) Render(dl *toolkit.DrawList) error {
	if dl == nil || len(dl.CmdBuffer) == 0 {
		return nil
	}

	var saved glState
	saved.capture()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.program)
	proj := pixelProjection(float32(r.width), float32(r.height))
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.uSampler, 0)

	gl.BindVertexArray(r.vao)
	r.upload(dl)

	for _, cmd := range dl.CmdBuffer {
		x, y, w, h, visible := r.scissorRect(cmd.ClipRect)
		if !visible {
			continue
		}
		gl.Scissor(x, y, w, h)
		r.bindTexture(cmd.TextureID)
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT, uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}

	gl.BindVertexArray(0)
	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("gui draw: gl error 0x%04x", e)
	}
	return nil
}

// upload copies the frame's geometry, growing the GPU buffers only
// when the frame outgrows them.
func (r *Renderer) upload(dl *toolkit.DrawList) {
	vtxSize := len(dl.VtxBuffer) * int(unsafe.Sizeof(toolkit.Vertex{}))
	idxSize := len(dl.IdxBuffer) * 2

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if vtxSize > r.vtxCap {
		r.vtxCap = vtxSize * 2
		gl.BufferData(gl.ARRAY_BUFFER, r.vtxCap, nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, vtxSize, gl.Ptr(dl.VtxBuffer))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	if idxSize > r.idxCap {
		r.idxCap = idxSize * 2
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, r.idxCap, nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, idxSize, gl.Ptr(dl.IdxBuffer))
}

// bindTexture binds a command's texture and selects the sampling mode.
func (r *Renderer) bindTexture(tex uint32) {
	if tex == 0 {
		gl.Uniform1i(r.uTexMode, texModeNone)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	mode := int32(texModeRGBA)
	if r.alphaTextures[tex] {
		mode = texModeAlpha
	}
	gl.Uniform1i(r.uTexMode, mode)
}

// scissorRect converts a clip rect from the toolkit's top-left origin
// to GL's bottom-left origin, clamped to the viewport. visible is
// false when the rect cannot contain any pixels.
func (r *Renderer) scissorRect(clip [4]float32) (x, y, w, h int32, visible bool) {
	x = int32(clip[0])
	y = int32(float32(r.height) - clip[3])
	w = int32(clip[2] - clip[0])
	h = int32(clip[3] - clip[1])
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	return x, y, w, h, w > 0 && h > 0
}

// Delete releases all GL objects the renderer owns.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// glState is the slice of GL state Render touches, captured before
// and restored after so the surrounding application's rendering is
// undisturbed.
type glState struct {
	program    int32
	blendSrc   int32
	blendDst   int32
	scissorBox [4]int32
	blend      bool
	depth      bool
	cull       bool
	scissor    bool
}

func (s *glState) capture() {
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.scissor = gl.IsEnabled(gl.SCISSOR_TEST)
}

func (s *glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	setCapability(gl.BLEND, s.blend)
	setCapability(gl.DEPTH_TEST, s.depth)
	setCapability(gl.CULL_FACE, s.cull)
	setCapability(gl.SCISSOR_TEST, s.scissor)
	gl.Scissor(s.scissorBox[0], s.scissorBox[1], s.scissorBox[2], s.scissorBox[3])
}

func setCapability(c uint32, on bool) {
	if on {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

// compileShader compiles one shader stage.
func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, src, nil)
	free()
	gl.CompileShader(shader)

	var ok int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		buf := make([]byte, n+1)
		gl.GetShaderInfoLog(shader, n, nil, &buf[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", string(buf))
	}
	return shader, nil
}

// linkProgram compiles both stages and links them.
func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
		buf := make([]byte, n+1)
		gl.GetProgramInfoLog(prog, n, nil, &buf[0])
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link: %s", string(buf))
	}
	return prog, nil
}

// pixelProjection maps pixel coordinates with a top-left origin onto
// clip space.
func pixelProjection(w, h float32) [16]float32 {
	return [16]float32{
		2 / w, 0, 0, 0,
		0, -2 / h, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}
