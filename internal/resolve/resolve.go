// Package resolve maps entity GUIDs to display names once a project has been
// fully decoded.
package resolve

import (
	"fmt"

	"github.com/Faultbox/apx-unpack/pkg/apx"
)

// Unknown is returned for GUIDs with no matching entity.
const Unknown = "Unknown"

// PrefixLength is the number of GUID characters NameOrPrefix falls back to.
const PrefixLength = 16

// Kind identifies an entity collection.
type Kind int

const (
	KindTextureGenerator Kind = iota
	KindTechnique
	KindRenderTarget
	KindRenderLayer
	KindMaterial
	KindModel
	KindScene
	KindClip
	KindModelObject
	kindCount
)

var kindNames = [...]string{
	KindTextureGenerator: "texgen",
	KindTechnique:        "technique",
	KindRenderTarget:     "render_target",
	KindRenderLayer:      "render_layer",
	KindMaterial:         "material",
	KindModel:            "model",
	KindScene:            "scene",
	KindClip:             "clip",
	KindModelObject:      "model_object",
}

// String returns the kind name.
func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Resolver holds per-kind GUID to name indices. It is read-only after New.
type Resolver struct {
	names [kindCount]map[string]string
}

// New indexes every entity of p. Later duplicates of a GUID win.
func New(p *apx.Project) *Resolver {
	r := &Resolver{}
	for k := range r.names {
		r.names[k] = make(map[string]string)
	}

	for _, tg := range p.TextureGenerators {
		r.names[KindTextureGenerator][tg.GUID] = tg.Name
	}
	for _, t := range p.Techniques {
		r.names[KindTechnique][t.GUID] = t.Name
	}
	for _, rt := range p.RenderTargets {
		r.names[KindRenderTarget][rt.GUID] = rt.Name
	}
	for _, rl := range p.RenderLayers {
		r.names[KindRenderLayer][rl.GUID] = rl.Name
	}
	for _, m := range p.Materials {
		r.names[KindMaterial][m.GUID] = m.Name
	}
	for _, m := range p.Models {
		r.names[KindModel][m.GUID] = m.Name
		for _, obj := range m.Objects {
			r.names[KindModelObject][obj.GUID] = obj.Name
		}
	}
	for _, s := range p.Scenes {
		r.names[KindScene][s.GUID] = s.Name
		for _, c := range s.Clips {
			r.names[KindClip][c.GUID] = s.Name + "/" + c.Name
		}
	}

	return r
}

// Lookup returns the display name for guid and whether it was found.
func (r *Resolver) Lookup(kind Kind, guid string) (string, bool) {
	if kind < 0 || kind >= kindCount {
		return "", false
	}
	name, ok := r.names[kind][guid]
	return name, ok
}

// Name returns the display name for guid, or Unknown.
func (r *Resolver) Name(kind Kind, guid string) string {
	if name, ok := r.Lookup(kind, guid); ok {
		return name
	}
	return Unknown
}

// NameOrPrefix returns the display name for guid, or its first PrefixLength
// characters. Render layer target lists and technique target layers are
// written this way instead of with Unknown.
func (r *Resolver) NameOrPrefix(kind Kind, guid string) string {
	if name, ok := r.Lookup(kind, guid); ok {
		return name
	}
	return prefix(guid, PrefixLength)
}

// NamesOrPrefix resolves each GUID with NameOrPrefix.
func (r *Resolver) NamesOrPrefix(kind Kind, guids []string) []string {
	names := make([]string, 0, len(guids))
	for _, guid := range guids {
		names = append(names, r.NameOrPrefix(kind, guid))
	}
	return names
}

// Len returns the number of indexed GUIDs of the given kind.
func (r *Resolver) Len(kind Kind) int {
	if kind < 0 || kind >= kindCount {
		return 0
	}
	return len(r.names[kind])
}

func prefix(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
