// Package shaders holds the GLSL sources for the scene renderers.
package shaders

// TerrainVertex transforms terrain vertices and forwards lighting inputs.
const TerrainVertex = `#version 410 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aTexCoord;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vNormal;
out vec3 vWorldPos;
out vec2 vTexCoord;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    vNormal = mat3(uModel) * aNormal;
    vTexCoord = aTexCoord;
    gl_Position = uViewProj * world;
}
`

// TerrainFragment shades the ground with one directional light, a
// checker tint from the tiled UVs and optional distance fog.
const TerrainFragment = `#version 410 core
in vec3 vNormal;
in vec3 vWorldPos;
in vec2 vTexCoord;

uniform vec3 uLightDir;   // direction towards the light
uniform vec3 uAmbient;
uniform vec3 uDiffuse;
uniform vec3 uBaseColor;
uniform vec3 uCameraPos;
uniform int uFogUse;
uniform float uFogNear;
uniform float uFogFar;
uniform vec3 uFogColor;

out vec4 fragColor;

void main() {
    vec3 n = normalize(vNormal);
    float lambert = max(dot(n, normalize(uLightDir)), 0.0);

    // Subtle per-tile variation so the tiling reads without a texture.
    float checker = mod(floor(vTexCoord.x) + floor(vTexCoord.y), 2.0);
    vec3 base = uBaseColor * (0.92 + 0.08 * checker);

    vec3 color = base * (uAmbient + uDiffuse * lambert);

    if (uFogUse == 1) {
        float dist = length(vWorldPos - uCameraPos);
        float fog = clamp((dist - uFogNear) / (uFogFar - uFogNear), 0.0, 1.0);
        color = mix(color, uFogColor, fog);
    }
    fragColor = vec4(color, 1.0);
}
`

// GrassVertex places one blade per instance: the per-instance vec4
// carries the world position in xyz and a uniform scale in w.
const GrassVertex = `#version 410 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aTexCoord;
layout(location = 3) in vec4 aInstance;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vTexCoord;

void main() {
    vec3 world = aPosition * aInstance.w + aInstance.xyz;
    vNormal = aNormal;
    vTexCoord = aTexCoord;
    gl_Position = uViewProj * vec4(world, 1.0);
}
`

// GrassFragment shades blades with a root-to-tip gradient.
const GrassFragment = `#version 410 core
in vec3 vNormal;
in vec2 vTexCoord;

uniform vec3 uLightDir;
uniform vec3 uAmbient;
uniform vec3 uDiffuse;
uniform vec3 uBaseColor;

out vec4 fragColor;

void main() {
    // Blades are two-sided; take whichever face the light sees.
    vec3 n = normalize(vNormal);
    float lambert = abs(dot(n, normalize(uLightDir)));

    // Darker at the root, brighter at the tip.
    float tip = 1.0 - vTexCoord.y;
    vec3 base = uBaseColor * (0.6 + 0.4 * tip);

    fragColor = vec4(base * (uAmbient + uDiffuse * lambert), 1.0);
}
`
