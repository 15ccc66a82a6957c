package mesh

import (
	"github.com/chewxy/math32"
)

// Vertex layout: position (3 floats), normal (3 floats), texture
// coordinate (2 floats). All generators produce unit-sized shapes that
// the scene scales per draw call.
const vertexStride = 8

// genPlane generates a flat plane in the XZ plane, extent -1..1, facing +Y
func genPlane() ([]float32, []uint32) {
	vertices := []float32{
		-1, 0, 1, 0, 1, 0, 0, 0,
		1, 0, 1, 0, 1, 0, 1, 0,
		1, 0, -1, 0, 1, 0, 1, 1,
		-1, 0, -1, 0, 1, 0, 0, 1,
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return vertices, indices
}

// genBox generates a unit cube centered on the origin
func genBox() ([]float32, []uint32) {
	type boxFace struct {
		normal  [3]float32
		corners [4][3]float32
	}

	faces := []boxFace{
		// +Z
		{[3]float32{0, 0, 1}, [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		// -Z
		{[3]float32{0, 0, -1}, [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
		// -X
		{[3]float32{-1, 0, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
		// +X
		{[3]float32{1, 0, 0}, [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
		// +Y
		{[3]float32{0, 1, 0}, [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
		// -Y
		{[3]float32{0, -1, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]float32, 0, len(faces)*4*vertexStride)
	indices := make([]uint32, 0, len(faces)*6)

	for fi, f := range faces {
		for ci, c := range f.corners {
			vertices = append(vertices,
				c[0], c[1], c[2],
				f.normal[0], f.normal[1], f.normal[2],
				uvs[ci][0], uvs[ci][1],
			)
		}
		base := uint32(fi * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return vertices, indices
}

// genCylinder generates a cylinder of radius 1 with its base at y=0 and
// top at y=1
func genCylinder(segments int) ([]float32, []uint32) {
	vertices := make([]float32, 0, (segments+1)*2*vertexStride)
	indices := make([]uint32, 0, segments*12)

	// side
	for i := 0; i <= segments; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(segments)
		x := math32.Cos(angle)
		z := math32.Sin(angle)
		u := float32(i) / float32(segments)

		vertices = append(vertices, x, 0, z, x, 0, z, u, 0)
		vertices = append(vertices, x, 1, z, x, 0, z, u, 1)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices,
			base, base+1, base+2,
			base+2, base+1, base+3,
		)
	}

	// caps: a center vertex plus a ring, fanned out
	vertices, indices = appendDiskCap(vertices, indices, segments, 0, -1)
	vertices, indices = appendDiskCap(vertices, indices, segments, 1, 1)

	return vertices, indices
}

// genCone generates a cone with base radius 1 at y=0 and apex at y=1
func genCone(segments int) ([]float32, []uint32) {
	vertices := make([]float32, 0, (segments+1)*2*vertexStride)
	indices := make([]uint32, 0, segments*9)

	// slant normal for a unit cone: (cos, 1, sin)/sqrt(2)
	inv := 1 / math32.Sqrt(2)

	for i := 0; i <= segments; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(segments)
		x := math32.Cos(angle)
		z := math32.Sin(angle)
		u := float32(i) / float32(segments)

		vertices = append(vertices, x, 0, z, x*inv, inv, z*inv, u, 0)
		// per-segment apex vertex so the slant normal stays smooth
		vertices = append(vertices, 0, 1, 0, x*inv, inv, z*inv, u, 1)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
	}

	vertices, indices = appendDiskCap(vertices, indices, segments, 0, -1)

	return vertices, indices
}

// genSphere generates a unit sphere centered on the origin
func genSphere(stacks, slices int) ([]float32, []uint32) {
	vertices := make([]float32, 0, (stacks+1)*(slices+1)*vertexStride)
	indices := make([]uint32, 0, stacks*slices*6)

	for stack := 0; stack <= stacks; stack++ {
		phi := math32.Pi * float32(stack) / float32(stacks)
		y := math32.Cos(phi)
		r := math32.Sin(phi)

		for slice := 0; slice <= slices; slice++ {
			theta := 2 * math32.Pi * float32(slice) / float32(slices)
			x := r * math32.Cos(theta)
			z := r * math32.Sin(theta)

			u := float32(slice) / float32(slices)
			v := 1 - float32(stack)/float32(stacks)

			// unit sphere: the position is its own normal
			vertices = append(vertices, x, y, z, x, y, z, u, v)
		}
	}

	rowLen := uint32(slices + 1)
	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			a := uint32(stack)*rowLen + uint32(slice)
			b := a + rowLen
			indices = append(indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}

	return vertices, indices
}

// appendDiskCap appends a horizontal disk of radius 1 at height y with
// the given normal direction (+1 up, -1 down)
func appendDiskCap(vertices []float32, indices []uint32, segments int, y, ny float32) ([]float32, []uint32) {
	center := uint32(len(vertices) / vertexStride)
	vertices = append(vertices, 0, y, 0, 0, ny, 0, 0.5, 0.5)

	for i := 0; i <= segments; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(segments)
		x := math32.Cos(angle)
		z := math32.Sin(angle)
		vertices = append(vertices, x, y, z, 0, ny, 0, 0.5+x/2, 0.5+z/2)
	}

	for i := 0; i < segments; i++ {
		ring := center + 1 + uint32(i)
		if ny > 0 {
			indices = append(indices, center, ring+1, ring)
		} else {
			indices = append(indices, center, ring, ring+1)
		}
	}

	return vertices, indices
}
