package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// TestFindMaterialEmptyTable verifies lookup on an undefined material
// table reports false
func TestFindMaterialEmptyTable(t *testing.T) {
	m := NewManager(nil)

	var out Material
	if m.FindMaterial("wood", &out) {
		t.Error("FindMaterial on empty table returned true, want false")
	}
}

// TestFindMaterialMatch verifies a defined tag returns the exact
// diffuse/specular/shininess triple from the catalog
func TestFindMaterialMatch(t *testing.T) {
	m := NewManager(nil)
	m.DefineObjectMaterials()

	var out Material
	if !m.FindMaterial("tableSurface", &out) {
		t.Fatal("FindMaterial(tableSurface) returned false")
	}

	wantDiffuse := mgl32.Vec3{0.4, 0.3, 0.2}
	wantSpecular := mgl32.Vec3{0.8, 0.8, 0.8}
	if out.DiffuseColor != wantDiffuse {
		t.Errorf("diffuse = %v, want %v", out.DiffuseColor, wantDiffuse)
	}
	if out.SpecularColor != wantSpecular {
		t.Errorf("specular = %v, want %v", out.SpecularColor, wantSpecular)
	}
	if out.Shininess != 30.0 {
		t.Errorf("shininess = %v, want 30", out.Shininess)
	}
}

// TestFindMaterialUnknownTagQuirk pins down the long-standing contract:
// once materials are defined the return value is true even when the tag
// does not match, and the out-parameter keeps its prior contents
func TestFindMaterialUnknownTagQuirk(t *testing.T) {
	m := NewManager(nil)
	m.DefineObjectMaterials()

	out := Material{Tag: "sentinel", Shininess: -1}
	if !m.FindMaterial("no-such-material", &out) {
		t.Error("FindMaterial(unknown) on populated table returned false; the contract reports table emptiness, not a match")
	}
	if out.Tag != "sentinel" || out.Shininess != -1 {
		t.Errorf("out-parameter modified on a miss: %+v", out)
	}
}

// TestLookupMaterialHonestFlag verifies the internal lookup used by the
// shader push distinguishes hits from misses
func TestLookupMaterialHonestFlag(t *testing.T) {
	m := NewManager(nil)
	m.DefineObjectMaterials()

	if _, ok := m.lookupMaterial("no-such-material"); ok {
		t.Error("lookupMaterial(unknown) reported found")
	}
	mat, ok := m.lookupMaterial("jar")
	if !ok {
		t.Fatal("lookupMaterial(jar) reported not found")
	}
	if mat.Tag != "jar" {
		t.Errorf("lookupMaterial(jar) returned tag %q", mat.Tag)
	}
}

// TestDefineObjectMaterialsIdempotent verifies redefining replaces the
// table wholesale instead of growing it
func TestDefineObjectMaterialsIdempotent(t *testing.T) {
	m := NewManager(nil)
	m.DefineObjectMaterials()
	first := len(m.materials)
	if first == 0 {
		t.Fatal("DefineObjectMaterials produced an empty catalog")
	}

	m.DefineObjectMaterials()
	if len(m.materials) != first {
		t.Errorf("catalog grew from %d to %d on redefinition", first, len(m.materials))
	}

	// every catalog tag must resolve
	for _, tag := range []string{
		"plastic", "wood", "metal", "glass", "tile", "stone",
		"lampshade", "lampbase", "bookcover", "jar", "tableSurface", "windowFrame",
	} {
		if _, ok := m.lookupMaterial(tag); !ok {
			t.Errorf("catalog tag %q missing after redefinition", tag)
		}
	}
}
