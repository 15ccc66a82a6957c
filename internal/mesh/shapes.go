package mesh

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const floatSize = 4

const (
	roundSegments = 36
	sphereStacks  = 24
	sphereSlices  = 36
)

// Shapes owns the GPU buffers for the basic scene primitives. Each
// shape is uploaded once by its Load method and drawn any number of
// times with the currently bound shader/texture state.
type Shapes struct {
	plane    shapeMesh
	box      shapeMesh
	cone     shapeMesh
	sphere   shapeMesh
	cylinder shapeMesh
}

type shapeMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	loaded     bool
}

// NewShapes creates an empty shape library; nothing touches the GPU
// until the Load methods run.
func NewShapes() *Shapes {
	return &Shapes{}
}

// LoadPlaneMesh uploads the plane primitive to the GPU
func (s *Shapes) LoadPlaneMesh() {
	vertices, indices := genPlane()
	s.plane.upload(vertices, indices)
}

// LoadBoxMesh uploads the box primitive to the GPU
func (s *Shapes) LoadBoxMesh() {
	vertices, indices := genBox()
	s.box.upload(vertices, indices)
}

// LoadConeMesh uploads the cone primitive to the GPU
func (s *Shapes) LoadConeMesh() {
	vertices, indices := genCone(roundSegments)
	s.cone.upload(vertices, indices)
}

// LoadSphereMesh uploads the sphere primitive to the GPU
func (s *Shapes) LoadSphereMesh() {
	vertices, indices := genSphere(sphereStacks, sphereSlices)
	s.sphere.upload(vertices, indices)
}

// LoadCylinderMesh uploads the cylinder primitive to the GPU
func (s *Shapes) LoadCylinderMesh() {
	vertices, indices := genCylinder(roundSegments)
	s.cylinder.upload(vertices, indices)
}

// DrawPlaneMesh issues a draw call for the plane primitive
func (s *Shapes) DrawPlaneMesh() { s.plane.draw("plane") }

// DrawBoxMesh issues a draw call for the box primitive
func (s *Shapes) DrawBoxMesh() { s.box.draw("box") }

// DrawConeMesh issues a draw call for the cone primitive
func (s *Shapes) DrawConeMesh() { s.cone.draw("cone") }

// DrawSphereMesh issues a draw call for the sphere primitive
func (s *Shapes) DrawSphereMesh() { s.sphere.draw("sphere") }

// DrawCylinderMesh issues a draw call for the cylinder primitive
func (s *Shapes) DrawCylinderMesh() { s.cylinder.draw("cylinder") }

// Dispose releases all uploaded GPU buffers
func (s *Shapes) Dispose() {
	for _, m := range []*shapeMesh{&s.plane, &s.box, &s.cone, &s.sphere, &s.cylinder} {
		m.dispose()
	}
}

func (m *shapeMesh) upload(vertices []float32, indices []uint32) {
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(vertexStride * floatSize)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*floatSize)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*floatSize)

	gl.BindVertexArray(0)

	m.indexCount = int32(len(indices))
	m.loaded = true
}

func (m *shapeMesh) draw(name string) {
	if !m.loaded {
		log.Printf("mesh: %s drawn before it was loaded", name)
		return
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, unsafe.Pointer(nil))
	gl.BindVertexArray(0)
}

func (m *shapeMesh) dispose() {
	if !m.loaded {
		return
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.loaded = false
}
