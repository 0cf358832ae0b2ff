package render

// quadVertSrc places a unit 0..1 quad at a given screen-space origin/size and
// projects it to NDC. Adapted from the teacher's chunk vertex shader, with
// the rotation and camera/zoom terms dropped: the intersection view is a
// fixed top-down orthographic window, never panned or rotated.
const quadVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;

uniform vec2 uOrigin;
uniform vec2 uSize;
uniform vec2 uResolution;

void main() {
    vec2 screenPos = uOrigin + aPos * uSize;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

// quadFragSrc fills the quad with a flat color, used for both zone cells and
// vehicle bounding boxes. Adapted from the teacher's bonus-box fragment
// shader, stripped of its bevel and border passes.
const quadFragSrc = `#version 410 core

uniform vec4 uColor;
out vec4 FragColor;

void main() {
    FragColor = uColor;
}
` + "\x00"
