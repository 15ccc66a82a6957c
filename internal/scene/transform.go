package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// buildModelMatrix composes T(position+offset) * Rz * Ry * Rx * S.
// Rotation applies X, then Y, then Z; the authored scene layout depends
// on this exact order.
func buildModelMatrix(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position, offset mgl32.Vec3) mgl32.Mat4 {
	translation := mgl32.Translate3D(
		position.X()+offset.X(),
		position.Y()+offset.Y(),
		position.Z()+offset.Z(),
	)
	rotationX := mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))
	rotationY := mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))
	rotationZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZDeg))
	scaling := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return translation.Mul4(rotationZ).Mul4(rotationY).Mul4(rotationX).Mul4(scaling)
}
