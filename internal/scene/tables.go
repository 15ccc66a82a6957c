package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxTextureSlots bounds the texture registry. The slot index doubles
// as the bound texture unit, and 16 simultaneous units is the floor
// OpenGL guarantees.
const MaxTextureSlots = 16

// notFound is the sentinel returned by tag lookups
const notFound = -1

// Material holds the flat Phong material triple identified by a tag
type Material struct {
	Tag           string
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	Shininess     float32
}

type textureSlot struct {
	tag string
	id  uint32
}

// textureTable is the append-ordered texture registry. Registration
// order determines the slot index for the lifetime of the table.
type textureTable struct {
	slots []textureSlot
}

// add registers a texture handle under a tag. Reports the assigned slot
// index, or (notFound, false) when the table is at capacity.
func (t *textureTable) add(tag string, id uint32) (int, bool) {
	if len(t.slots) >= MaxTextureSlots {
		return notFound, false
	}
	t.slots = append(t.slots, textureSlot{tag: tag, id: id})
	return len(t.slots) - 1, true
}

// findSlot returns the slot index of the first texture registered under
// tag, or notFound
func (t *textureTable) findSlot(tag string) int {
	for i := range t.slots {
		if t.slots[i].tag == tag {
			return i
		}
	}
	return notFound
}

// reset empties the table and returns the handles it held so the caller
// can release them
func (t *textureTable) reset() []uint32 {
	ids := make([]uint32, 0, len(t.slots))
	for _, s := range t.slots {
		ids = append(ids, s.id)
	}
	t.slots = nil
	return ids
}

func (t *textureTable) len() int {
	return len(t.slots)
}
