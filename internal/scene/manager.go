package scene

import (
	"log"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"tablescene/internal/config"
	"tablescene/internal/graphics"
	"tablescene/internal/mesh"
)

// uniform names shared with the embedded scene shader
const (
	modelUniformName       = "model"
	colorUniformName       = "objectColor"
	textureUniformName     = "objectTexture"
	useTextureUniformName  = "bUseTexture"
	useLightingUniformName = "bUseLighting"
	uvScaleUniformName     = "UVscale"
)

// Manager owns the texture and material registries for the tabletop
// scene and pushes their state into shader uniforms ahead of each draw
// call.
type Manager struct {
	shader    *graphics.Shader
	meshes    *mesh.Shapes
	textures  textureTable
	materials []Material
}

// NewManager creates a scene manager drawing through the given shader
func NewManager(shader *graphics.Shader) *Manager {
	return &Manager{
		shader: shader,
		meshes: mesh.NewShapes(),
	}
}

// CreateGLTexture loads an image file into a GL texture and registers
// it under tag at the next free slot. Reports false when the image
// cannot be decoded or the registry is full; the caller may continue
// without the texture either way.
func (m *Manager) CreateGLTexture(path, tag string) bool {
	img, err := graphics.LoadTextureImage(path)
	if err != nil {
		log.Printf("scene: could not load texture %s: %v", path, err)
		return false
	}

	id := graphics.UploadTexture(img)

	slot, ok := m.textures.add(tag, id)
	if !ok {
		// the table is full; release the texture we just created
		log.Printf("scene: texture registry full (%d slots), could not register %s", MaxTextureSlots, path)
		graphics.DeleteTexture(id)
		return false
	}

	log.Printf("scene: loaded texture %s (%dx%d, %d channels) into slot %d", path, img.Width, img.Height, img.Channels, slot)
	return true
}

// BindGLTextures binds every registered texture to the texture unit
// matching its slot index. Call once after all registrations and before
// the first textured draw.
func (m *Manager) BindGLTextures() {
	for i, slot := range m.textures.slots {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, slot.id)
	}
}

// DestroyGLTextures releases every registered GL texture and empties
// the registry. Safe to call on an already empty registry.
func (m *Manager) DestroyGLTextures() {
	for _, id := range m.textures.reset() {
		graphics.DeleteTexture(id)
	}
}

// FindTextureSlot returns the slot index (and therefore the texture
// unit) registered under tag, or -1 when the tag is unknown
func (m *Manager) FindTextureSlot(tag string) int {
	return m.textures.findSlot(tag)
}

// FindMaterial looks up a defined material by tag. The return value
// reports only whether any materials are defined at all, not whether
// the tag matched; material is written only on a match, so callers that
// need to distinguish a miss must inspect material's prior contents.
func (m *Manager) FindMaterial(tag string, material *Material) bool {
	if len(m.materials) == 0 {
		return false
	}

	for i := range m.materials {
		if m.materials[i].Tag == tag {
			*material = m.materials[i]
			break
		}
	}
	return true
}

// lookupMaterial is the internal lookup with an honest found flag
func (m *Manager) lookupMaterial(tag string) (Material, bool) {
	for i := range m.materials {
		if m.materials[i].Tag == tag {
			return m.materials[i], true
		}
	}
	return Material{}, false
}

// SetTransformations composes the model matrix from scale, the three
// Euler rotations in degrees, and translation, and pushes it to the
// shader
func (m *Manager) SetTransformations(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position mgl32.Vec3) {
	m.SetTransformationsOffset(scale, rotXDeg, rotYDeg, rotZDeg, position, mgl32.Vec3{})
}

// SetTransformationsOffset is SetTransformations with an additional
// additive translation offset
func (m *Manager) SetTransformationsOffset(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position, offset mgl32.Vec3) {
	model := buildModelMatrix(scale, rotXDeg, rotYDeg, rotZDeg, position, offset)
	m.shader.SetMat4(modelUniformName, model)
}

// SetShaderColor disables texturing and sets the flat object color for
// the next draw
func (m *Manager) SetShaderColor(r, g, b, a float32) {
	m.shader.SetBool(useTextureUniformName, false)
	m.shader.SetVec4(colorUniformName, r, g, b, a)
}

// SetShaderTexture enables texturing and selects the texture registered
// under tag for the next draw. An unknown tag logs a warning and falls
// back to untextured rendering.
func (m *Manager) SetShaderTexture(tag string) {
	m.shader.SetBool(useTextureUniformName, true)

	slot := m.FindTextureSlot(tag)
	if slot == notFound {
		log.Printf("scene: warning: texture with tag %q not found, texturing disabled", tag)
		m.shader.SetBool(useTextureUniformName, false)
		return
	}

	m.shader.SetSampler2D(textureUniformName, int32(slot))
}

// SetTextureUVScale sets the texture tiling factors for the next draw
func (m *Manager) SetTextureUVScale(u, v float32) {
	m.shader.SetVec2(uvScaleUniformName, u, v)
}

// SetShaderMaterial pushes the material registered under tag. An
// unknown tag logs a warning and leaves the material uniforms at their
// previous values.
func (m *Manager) SetShaderMaterial(tag string) {
	mat, ok := m.lookupMaterial(tag)
	if !ok {
		log.Printf("scene: warning: material with tag %q not found", tag)
		return
	}

	m.shader.SetVec3V("material.diffuseColor", mat.DiffuseColor)
	m.shader.SetVec3V("material.specularColor", mat.SpecularColor)
	m.shader.SetFloat("material.shininess", mat.Shininess)
}

// LoadSceneTextures registers every texture the authored scene draws
// with, then binds them to their texture units
func (m *Manager) LoadSceneTextures() {
	dir := config.GetTextureDir()

	m.CreateGLTexture(filepath.Join(dir, "wooden.jpg"), "wooden")
	m.CreateGLTexture(filepath.Join(dir, "vase.jpg"), "vase")
	m.CreateGLTexture(filepath.Join(dir, "table.jpg"), "table")
	m.CreateGLTexture(filepath.Join(dir, "stand.jpg"), "stand")
	m.CreateGLTexture(filepath.Join(dir, "neck.jpg"), "neck")
	m.CreateGLTexture(filepath.Join(dir, "book_cover.jpg"), "bookcover_tex")
	m.CreateGLTexture(filepath.Join(dir, "window_frame_tex.jpg"), "window_frame_tex")

	m.BindGLTextures()
}

// PrepareScene loads textures, materials, lights, and the basic shape
// meshes. Call once before the render loop.
func (m *Manager) PrepareScene() {
	m.LoadSceneTextures()
	m.DefineObjectMaterials()
	m.SetupSceneLights()

	m.meshes.LoadPlaneMesh()
	m.meshes.LoadBoxMesh()
	m.meshes.LoadConeMesh()
	m.meshes.LoadSphereMesh()
	m.meshes.LoadCylinderMesh()
}

// Dispose releases every GPU resource the manager owns
func (m *Manager) Dispose() {
	m.DestroyGLTextures()
	m.meshes.Dispose()
}
