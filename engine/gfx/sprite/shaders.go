package sprite

// GLSL sources for the two sprite paths. The uniform-block path mirrors
// TransformVertex one-to-one; the batch path receives pre-transformed
// world-space vertices and only applies the view-projection.

// UvSpriteVertexSrc: one sprite per draw, uniforms per instance.
const UvSpriteVertexSrc = `
#version 330 core
layout(location=0) in vec3 aPos;
layout(location=1) in vec3 aNormal;
layout(location=2) in vec2 aUV;

uniform mat4 uViewProj;
uniform mat4 uModel;
uniform vec2 uSize;
uniform vec2 uMinUV;
uniform vec2 uMaxUV;

out vec2 vUV;

void main() {
    vUV = uMinUV + aUV * (uMaxUV - uMinUV);
    vec3 scaled = vec3(aPos.xy * uSize, aPos.z);
    gl_Position = uViewProj * uModel * vec4(scaled, 1.0);
}
`

const UvSpriteFragmentSrc = `
#version 330 core
in vec2 vUV;
uniform sampler2D uTex;
uniform vec4 uTint;
out vec4 FragColor;

void main() {
    FragColor = texture(uTex, vUV) * uTint;
}
`

// BatchVertexSrc: world-space batched quads, 16 texture slots.
const BatchVertexSrc = `
#version 330 core
layout(location=0) in vec3 aPos;
layout(location=1) in vec4 aColor;
layout(location=2) in vec2 aUV;
layout(location=3) in float aTexIndex;

uniform mat4 uVP;

out vec4 vColor;
out vec2 vUV;
out float vTexIndex;

void main() {
    vColor = aColor;
    vUV = aUV;
    vTexIndex = aTexIndex;
    gl_Position = uVP * vec4(aPos, 1.0);
}
`

const BatchFragmentSrc = `
#version 330 core
in vec4 vColor;
in vec2 vUV;
in float vTexIndex;

uniform sampler2D uTex[16];

out vec4 FragColor;

void main() {
    int i = int(vTexIndex + 0.5);
    FragColor = texture(uTex[i], vUV) * vColor;
}
`
