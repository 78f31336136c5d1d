package resolve

import (
	"testing"

	"github.com/Faultbox/apx-unpack/pkg/apx"
)

func testProject() *apx.Project {
	return &apx.Project{
		TextureGenerators: []apx.TextureGenerator{{GUID: "tg1", Name: "Noise"}},
		Techniques:        []apx.RenderTechnique{{GUID: "t1", Name: "Glow"}},
		RenderTargets:     []apx.RenderTarget{{GUID: "rt1", Name: "Main RT"}},
		RenderLayers:      []apx.RenderLayer{{GUID: "rl1", Name: "Solid"}},
		Materials:         []apx.Material{{GUID: "m1", Name: "Stone", TechniqueGUID: "t1"}},
		Models: []apx.Model{{
			GUID: "mod1", Name: "Tower",
			Objects: []apx.ModelObject{{GUID: "o1", Name: "Base"}},
		}},
		Scenes: []apx.Scene{
			{GUID: "s1", Name: "Opening", Clips: []apx.Clip{{GUID: "c1", Name: "Intro"}}},
			{GUID: "s2", Name: "Finale", Clips: []apx.Clip{{GUID: "c2", Name: "Loop"}, {GUID: "c3", Name: "End"}}},
		},
	}
}

func TestName(t *testing.T) {
	r := New(testProject())

	tests := []struct {
		kind Kind
		guid string
		want string
	}{
		{KindTextureGenerator, "tg1", "Noise"},
		{KindTechnique, "t1", "Glow"},
		{KindTechnique, "nonexistent", Unknown},
		{KindRenderTarget, "rt1", "Main RT"},
		{KindRenderLayer, "rl1", "Solid"},
		{KindMaterial, "m1", "Stone"},
		{KindModel, "mod1", "Tower"},
		{KindModelObject, "o1", "Base"},
		{KindScene, "s2", "Finale"},
		{KindClip, "c1", "Opening/Intro"},
		{KindClip, "c3", "Finale/End"},
		{KindScene, "c1", Unknown},
		{KindMaterial, "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.guid, func(t *testing.T) {
			if got := r.Name(tt.kind, tt.guid); got != tt.want {
				t.Errorf("Name(%s, %q) = %q, want %q", tt.kind, tt.guid, got, tt.want)
			}
		})
	}
}

func TestNameOrPrefix(t *testing.T) {
	r := New(testProject())

	if got := r.NameOrPrefix(KindRenderTarget, "rt1"); got != "Main RT" {
		t.Errorf("expected resolved name, got %q", got)
	}
	if got := r.NameOrPrefix(KindRenderTarget, "0123456789ABCDEF0123456789ABCDEF"); got != "0123456789ABCDEF" {
		t.Errorf("expected 16 character prefix, got %q", got)
	}
	if got := r.NameOrPrefix(KindRenderTarget, "short"); got != "short" {
		t.Errorf("expected short GUID unchanged, got %q", got)
	}

	names := r.NamesOrPrefix(KindRenderTarget, []string{"rt1", "FFFFFFFFFFFFFFFFFFFF"})
	if len(names) != 2 || names[0] != "Main RT" || names[1] != "FFFFFFFFFFFFFFFF" {
		t.Errorf("NamesOrPrefix = %v", names)
	}
}

func TestClipMapCoversAllScenes(t *testing.T) {
	r := New(testProject())
	if n := r.Len(KindClip); n != 3 {
		t.Errorf("expected 3 clips, got %d", n)
	}
}

func TestLookupInvalidKind(t *testing.T) {
	r := New(&apx.Project{})
	if _, ok := r.Lookup(Kind(42), "x"); ok {
		t.Error("Lookup with invalid kind reported found")
	}
	if got := r.Name(Kind(-1), "x"); got != Unknown {
		t.Errorf("Name with invalid kind = %q, want %q", got, Unknown)
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestDuplicateGUIDLastWins(t *testing.T) {
	r := New(&apx.Project{Materials: []apx.Material{
		{GUID: "m", Name: "First"},
		{GUID: "m", Name: "Second"},
	}})
	if got := r.Name(KindMaterial, "m"); got != "Second" {
		t.Errorf("Name = %q, want Second", got)
	}
}
