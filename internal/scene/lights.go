package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SetupSceneLights configures the scene light sources: a directional
// sun, the lamp spotlight, and two point lights for fill
func (m *Manager) SetupSceneLights() {
	m.shader.SetBool(useLightingUniformName, true)

	// sunlight from the upper right
	m.shader.SetVec3("directionalLight.direction", 0.8, -0.6, -0.4)
	m.shader.SetVec3("directionalLight.ambient", 0.1, 0.1, 0.1)
	m.shader.SetVec3("directionalLight.diffuse", 0.9, 0.9, 0.8)
	m.shader.SetVec3("directionalLight.specular", 1.0, 1.0, 1.0)
	m.shader.SetBool("directionalLight.bActive", true)

	// lamp light, pointing down and slightly forward
	m.shader.SetVec3("spotLight.direction", 0.0, -1.0, -0.2)
	m.shader.SetVec3("spotLight.ambient", 0.5, 0.5, 0.5)
	m.shader.SetVec3("spotLight.diffuse", 0.9, 0.9, 0.9)
	m.shader.SetVec3("spotLight.specular", 0.6, 0.6, 0.6)
	m.shader.SetFloat("spotLight.constant", 1.0)
	m.shader.SetFloat("spotLight.linear", 0.07)
	m.shader.SetFloat("spotLight.quadratic", 0.017)
	m.shader.SetFloat("spotLight.cutOff", math32.Cos(mgl32.DegToRad(12.0)))
	m.shader.SetFloat("spotLight.outerCutOff", math32.Cos(mgl32.DegToRad(15.0)))
	m.shader.SetBool("spotLight.bActive", true)

	// general fill light
	m.shader.SetVec3("pointLights[0].position", -4.0, 1.5, 2.5)
	m.shader.SetVec3("pointLights[0].ambient", 0.05, 0.05, 0.05)
	m.shader.SetVec3("pointLights[0].diffuse", 0.6, 0.6, 0.6)
	m.shader.SetVec3("pointLights[0].specular", 0.8, 0.8, 0.8)
	m.shader.SetFloat("pointLights[0].constant", 1.0)
	m.shader.SetFloat("pointLights[0].linear", 0.09)
	m.shader.SetFloat("pointLights[0].quadratic", 0.032)
	m.shader.SetBool("pointLights[0].bActive", true)

	// reddish accent light
	m.shader.SetVec3("pointLights[1].position", 4.0, 1.0, -2.0)
	m.shader.SetVec3("pointLights[1].ambient", 0.02, 0.01, 0.01)
	m.shader.SetVec3("pointLights[1].diffuse", 0.5, 0.2, 0.2)
	m.shader.SetVec3("pointLights[1].specular", 0.6, 0.3, 0.3)
	m.shader.SetFloat("pointLights[1].constant", 1.0)
	m.shader.SetFloat("pointLights[1].linear", 0.1)
	m.shader.SetFloat("pointLights[1].quadratic", 0.05)
	m.shader.SetBool("pointLights[1].bActive", true)
}
