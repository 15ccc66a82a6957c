package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderScene issues the draw sequence for the authored tabletop scene:
// the table surface, two matching lamps, a stack of books, a ceramic
// jar, and the window backdrop behind it all. Transform and material
// values are scene content, tuned by eye.
func (m *Manager) RenderScene() {
	m.drawTable()
	m.drawLamp(mgl32.Vec3{-3.0, 0.05, 0.0})
	m.drawLamp(mgl32.Vec3{3.0, 0.05, 0.0})
	m.drawBooks()
	m.drawJar()
	m.drawWindow()
}

func (m *Manager) drawTable() {
	m.SetTransformations(mgl32.Vec3{10.0, 0.1, 5.0}, 0, 0, 0, mgl32.Vec3{0.0, 0.0, 0.0})
	m.SetShaderTexture("table")
	m.SetShaderMaterial("tableSurface")
	m.SetTextureUVScale(2.0, 1.0)
	m.meshes.DrawPlaneMesh()
}

// drawLamp draws one banker-style lamp rooted at basePos; both lamps in
// the scene share this geometry
func (m *Manager) drawLamp(basePos mgl32.Vec3) {
	// base bottom, rotated 45 degrees for a diamond footprint
	m.SetTransformations(mgl32.Vec3{1.8, 0.3, 1.8}, 0, 45.0, 0, basePos)
	m.SetShaderTexture("stand")
	m.SetShaderMaterial("lampbase")
	m.meshes.DrawBoxMesh()

	// base mid
	m.SetTransformations(mgl32.Vec3{1.3, 0.4, 1.3}, 0, 0, 0, basePos.Add(mgl32.Vec3{0.0, 0.3, 0.0}))
	m.SetShaderMaterial("lampbase")
	m.meshes.DrawCylinderMesh()

	// base top, cone inverted
	m.SetTransformations(mgl32.Vec3{1.5, 0.5, 1.5}, 0, 0, 180.0, basePos.Add(mgl32.Vec3{0.0, 0.7, 0.0}))
	m.SetShaderMaterial("lampbase")
	m.meshes.DrawConeMesh()

	// lower body: cylinders with spheres suggesting the curves
	m.SetTransformations(mgl32.Vec3{1.1, 1.0, 1.1}, 0, 0, 0, basePos.Add(mgl32.Vec3{0.0, 1.3, 0.0}))
	m.SetShaderTexture("neck")
	m.SetShaderMaterial("lampbase")
	m.meshes.DrawCylinderMesh()

	m.SetTransformations(mgl32.Vec3{1.0, 0.5, 1.0}, 0, 0, 0, basePos.Add(mgl32.Vec3{0.0, 2.3, 0.0}))
	m.SetShaderMaterial("lampbase")
	m.meshes.DrawSphereMesh()

	m.SetTransformations(mgl32.Vec3{0.9, 1.2, 0.9}, 0, 0, 0, basePos.Add(mgl32.Vec3{0.0, 3.0, 0.0}))
	m.SetShaderMaterial("lampbase")
	m.meshes.DrawCylinderMesh()

	m.SetTransformations(mgl32.Vec3{0.8, 0.4, 0.8}, 0, 0, 0, basePos.Add(mgl32.Vec3{0.0, 4.2, 0.0}))
	m.SetShaderMaterial("lampbase")
	m.meshes.DrawSphereMesh()

	// upper body
	m.SetTransformations(mgl32.Vec3{0.4, 3.0, 0.4}, 0, 0, 0, basePos.Add(mgl32.Vec3{0.0, 5.0, 0.0}))
	m.SetShaderTexture("wooden")
	m.SetShaderMaterial("wood")
	m.meshes.DrawCylinderMesh()

	// shade
	m.SetTransformations(mgl32.Vec3{2.5, 2.5, 2.5}, 0, 0, 0, basePos.Add(mgl32.Vec3{0.0, 8.0, 0.0}))
	m.SetShaderMaterial("lampshade")
	m.meshes.DrawConeMesh()

	// finial
	m.SetTransformations(mgl32.Vec3{0.3, 0.3, 0.3}, 0, 0, 0, basePos.Add(mgl32.Vec3{0.0, 10.5, 0.0}))
	m.SetShaderMaterial("metal")
	m.meshes.DrawSphereMesh()
}

func (m *Manager) drawBooks() {
	// bottom book
	m.SetTransformations(mgl32.Vec3{2.8, 0.15, 2.0}, 0, 0, 0, mgl32.Vec3{0.0, 0.05, 0.0})
	m.SetShaderTexture("bookcover_tex")
	m.SetShaderMaterial("bookcover")
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawBoxMesh()

	// second book stacked on top, slightly rotated
	m.SetTransformations(mgl32.Vec3{2.6, 0.12, 1.9}, 0, 5.0, 0, mgl32.Vec3{0.0, 0.21, 0.0})
	m.SetShaderTexture("bookcover_tex")
	m.SetShaderMaterial("bookcover")
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawBoxMesh()
}

func (m *Manager) drawJar() {
	jarPos := mgl32.Vec3{0.0, 0.36, 0.0} // sits on top of the books

	// base
	m.SetTransformations(mgl32.Vec3{0.8, 0.6, 0.8}, 0, 0, 0, jarPos)
	m.SetShaderTexture("vase")
	m.SetShaderMaterial("jar")
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawCylinderMesh()

	// main body
	m.SetTransformations(mgl32.Vec3{0.9, 0.9, 0.9}, 0, 0, 0, jarPos.Add(mgl32.Vec3{0.0, 0.6, 0.0}))
	m.SetShaderTexture("vase")
	m.SetShaderMaterial("jar")
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawSphereMesh()

	// neck
	m.SetTransformations(mgl32.Vec3{0.5, 0.4, 0.5}, 0, 0, 0, jarPos.Add(mgl32.Vec3{0.0, 1.5, 0.0}))
	m.SetShaderMaterial("jar")
	m.meshes.DrawCylinderMesh()

	// lid, a flattened sphere
	m.SetTransformations(mgl32.Vec3{0.7, 0.3, 0.7}, 0, 0, 0, jarPos.Add(mgl32.Vec3{0.0, 1.9, 0.0}))
	m.SetShaderMaterial("jar")
	m.meshes.DrawSphereMesh()

	// lid handle
	m.SetTransformations(mgl32.Vec3{0.2, 0.2, 0.2}, 0, 0, 0, jarPos.Add(mgl32.Vec3{0.0, 2.1, 0.0}))
	m.SetShaderMaterial("jar")
	m.meshes.DrawSphereMesh()
}

func (m *Manager) drawWindow() {
	// outside view backdrop behind the table
	m.SetTransformations(mgl32.Vec3{15.0, 10.0, 0.1}, 0, 0, 0, mgl32.Vec3{0.0, 5.0, -5.0})
	m.SetShaderMaterial("tile")
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawPlaneMesh()

	// frame, slightly in front of the backdrop
	framePos := mgl32.Vec3{0.0, 5.0, -4.9}
	m.SetShaderMaterial("windowFrame")

	// top horizontal
	m.SetTransformations(mgl32.Vec3{7.5, 0.3, 0.1}, 0, 0, 0, framePos.Add(mgl32.Vec3{0.0, 4.15, 0.0}))
	m.SetShaderTexture("window_frame_tex")
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawBoxMesh()

	// bottom horizontal
	m.SetTransformations(mgl32.Vec3{7.5, 0.3, 0.1}, 0, 0, 0, framePos.Add(mgl32.Vec3{0.0, -4.15, 0.0}))
	m.SetShaderTexture("window_frame_tex")
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawBoxMesh()

	// left vertical
	m.SetTransformations(mgl32.Vec3{0.3, 8.5, 0.1}, 0, 0, 0, framePos.Add(mgl32.Vec3{-3.6, 0.0, 0.0}))
	m.SetShaderTexture("window_frame_tex")
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawBoxMesh()

	// right vertical
	m.SetTransformations(mgl32.Vec3{0.3, 8.5, 0.1}, 0, 0, 0, framePos.Add(mgl32.Vec3{3.6, 0.0, 0.0}))
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawBoxMesh()

	// center divider
	m.SetTransformations(mgl32.Vec3{0.15, 8.3, 0.1}, 0, 0, 0, framePos)
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawBoxMesh()

	// glass panes, in front of the frame
	panePos := mgl32.Vec3{0.0, 5.0, -4.8}
	m.SetTextureUVScale(1.0, 1.0)

	m.SetTransformations(mgl32.Vec3{100.4, 100.2, 0.05}, 0, 0, 0, panePos.Add(mgl32.Vec3{-1.8, 0.0, 0.0}))
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawPlaneMesh()

	m.SetTransformations(mgl32.Vec3{100.4, 100.2, 0.05}, 0, 0, 0, panePos.Add(mgl32.Vec3{1.8, 0.0, 0.0}))
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawPlaneMesh()
}
