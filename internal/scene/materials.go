package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefineObjectMaterials clears the material table and repopulates it
// with the fixed catalog the authored scene draws with. Deterministic
// and idempotent.
func (m *Manager) DefineObjectMaterials() {
	m.materials = []Material{
		{
			Tag:           "plastic",
			DiffuseColor:  mgl32.Vec3{0.8, 0.4, 0.8},
			SpecularColor: mgl32.Vec3{0.2, 0.2, 0.2},
			Shininess:     1.0,
		},
		{
			Tag:           "wood",
			DiffuseColor:  mgl32.Vec3{0.6, 0.5, 0.2},
			SpecularColor: mgl32.Vec3{0.1, 0.2, 0.2},
			Shininess:     1.0,
		},
		{
			Tag:           "metal",
			DiffuseColor:  mgl32.Vec3{0.3, 0.3, 0.2},
			SpecularColor: mgl32.Vec3{0.7, 0.7, 0.8},
			Shininess:     8.0,
		},
		{
			Tag:           "glass",
			DiffuseColor:  mgl32.Vec3{0.3, 0.3, 0.2},
			SpecularColor: mgl32.Vec3{0.9, 0.9, 0.8},
			Shininess:     10.0,
		},
		{
			Tag:           "tile",
			DiffuseColor:  mgl32.Vec3{0.5, 0.5, 0.5},
			SpecularColor: mgl32.Vec3{0.7, 0.7, 0.7},
			Shininess:     6.0,
		},
		{
			Tag:           "stone",
			DiffuseColor:  mgl32.Vec3{0.5, 0.5, 0.5},
			SpecularColor: mgl32.Vec3{0.73, 0.3, 0.3},
			Shininess:     6.0,
		},
		// warm cream lamp shade
		{
			Tag:           "lampshade",
			DiffuseColor:  mgl32.Vec3{1.0, 0.98, 0.88},
			SpecularColor: mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:     0.5,
		},
		{
			Tag:           "lampbase",
			DiffuseColor:  mgl32.Vec3{0.25, 0.15, 0.05},
			SpecularColor: mgl32.Vec3{0.2, 0.2, 0.1},
			Shininess:     3.0,
		},
		{
			Tag:           "bookcover",
			DiffuseColor:  mgl32.Vec3{0.4, 0.05, 0.05},
			SpecularColor: mgl32.Vec3{0.05, 0.05, 0.05},
			Shininess:     0.8,
		},
		// ceramic jar
		{
			Tag:           "jar",
			DiffuseColor:  mgl32.Vec3{0.7, 0.7, 0.9},
			SpecularColor: mgl32.Vec3{0.3, 0.3, 0.4},
			Shininess:     3.0,
		},
		// high specular and shininess for a reflective table top
		{
			Tag:           "tableSurface",
			DiffuseColor:  mgl32.Vec3{0.4, 0.3, 0.2},
			SpecularColor: mgl32.Vec3{0.8, 0.8, 0.8},
			Shininess:     30.0,
		},
		// off-white painted wood
		{
			Tag:           "windowFrame",
			DiffuseColor:  mgl32.Vec3{0.9, 0.9, 0.9},
			SpecularColor: mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:     1.0,
		},
	}
}
