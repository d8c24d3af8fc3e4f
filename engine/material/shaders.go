package material

// GLSL 1.20 sources of the built-in materials. Attribute and uniform names
// are shared with user shaders: position, normal, tex_coord, view,
// transform, scale (plus ntransform, light_position, color, tex for object).

const objectVertexSrc = `#version 120
attribute vec3 position;
attribute vec3 normal;
attribute vec2 tex_coord;
uniform mat4 view;
uniform mat4 transform;
uniform mat3 scale;
uniform mat3 ntransform;
varying vec3 ws_position;
varying vec3 ws_normal;
varying vec2 tc;

void main() {
    vec4 ws = transform * mat4(scale) * vec4(position, 1.0);
    ws_position = ws.xyz;
    ws_normal   = normalize(ntransform * scale * normal);
    tc          = tex_coord;
    gl_Position = view * ws;
}
`

const objectFragmentSrc = `#version 120
uniform vec3 light_position;
uniform vec3 color;
uniform sampler2D tex;
varying vec3 ws_position;
varying vec3 ws_normal;
varying vec2 tc;

void main() {
    vec3 l       = normalize(light_position - ws_position);
    vec3 n       = normalize(ws_normal);
    float diff   = max(dot(n, l), 0.0);
    float ambient = 0.25;
    vec4 texel   = texture2D(tex, tc);
    gl_FragColor = vec4(color * (ambient + diff), 1.0) * texel;
}
`

const normalsVertexSrc = `#version 120
attribute vec3 position;
attribute vec3 normal;
uniform mat4 view;
uniform mat4 transform;
uniform mat3 scale;
varying vec3 ls_normal;

void main() {
    ls_normal   = normal;
    gl_Position = view * transform * mat4(scale) * vec4(position, 1.0);
}
`

const normalsFragmentSrc = `#version 120
varying vec3 ls_normal;

void main() {
    gl_FragColor = vec4((ls_normal + 1.0) / 2.0, 1.0);
}
`

const uvsVertexSrc = `#version 120
attribute vec3 position;
attribute vec2 tex_coord;
uniform mat4 view;
uniform mat4 transform;
uniform mat3 scale;
varying vec2 uv;

void main() {
    uv          = tex_coord;
    gl_Position = view * transform * mat4(scale) * vec4(position, 1.0);
}
`

const uvsFragmentSrc = `#version 120
varying vec2 uv;

void main() {
    gl_FragColor = vec4(uv, 0.0, 1.0);
}
`
