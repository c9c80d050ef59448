package scenes

import (
	gfx "github.com/evilkuma/affine2d"
)

// The pair every coloured variant draws with. Positions arrive in pixels
// and u_matrix takes them all the way to clip space.
var colorVS gfx.VertexShader = `#version 120

attribute vec2 a_position;
attribute vec4 a_color;

uniform mat3 u_matrix;

varying vec4 v_color;

void main() {
	gl_Position = vec4((u_matrix * vec3(a_position, 1.0)).xy, 0.0, 1.0);
	v_color = a_color;
}`

var colorFS gfx.FragmentShader = `#version 120

varying vec4 v_color;

void main() {
	gl_FragColor = v_color;
}`

var textureVS gfx.VertexShader = `#version 120

attribute vec2 a_position;
attribute vec2 a_texcoord;

uniform mat3 u_matrix;

varying vec2 v_texcoord;

void main() {
	gl_Position = vec4((u_matrix * vec3(a_position, 1.0)).xy, 0.0, 1.0);
	v_texcoord = a_texcoord;
}`

var textureFS gfx.FragmentShader = `#version 120

uniform sampler2D u_texture;

varying vec2 v_texcoord;

void main() {
	gl_FragColor = texture2D(u_texture, v_texcoord);
}`

// ColorShader builds the coloured-vertex program. The slider panel draws
// with it too.
func ColorShader() (*gfx.Shader, error) {
	attrs := gfx.DefaultVertexAttributes.Subset(gfx.VertexPosition | gfx.VertexColor)
	return gfx.BuildShader(attrs, colorVS, colorFS)
}

func TextureShader() (*gfx.Shader, error) {
	attrs := gfx.DefaultVertexAttributes.Subset(gfx.VertexPosition | gfx.VertexTexcoord)
	return gfx.BuildShader(attrs, textureVS, textureFS)
}
