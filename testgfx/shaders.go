package testgfx

import (
	gfx "github.com/evilkuma/affine2d"
)

var PositionVS gfx.VertexShader = `#version 120
attribute vec2 a_position;

void main() {
	gl_Position = vec4(a_position, 0.0, 1.0);
}`

var WhiteFS gfx.FragmentShader = `#version 120
void main() {
	gl_FragColor = vec4(1.0);
}`

// BrokenFS does not compile.
var BrokenFS gfx.FragmentShader = `#version 120
void main() {
	gl_FragColor = vec4(1.0) +;
}`

// UnlinkedFS compiles but reads a varying no vertex stage writes, so
// linking fails.
var UnlinkedFS gfx.FragmentShader = `#version 120
varying vec4 v_missing;

void main() {
	gl_FragColor = v_missing;
}`
