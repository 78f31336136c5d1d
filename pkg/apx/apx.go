// Package apx decodes apEx/Phoenix project files (.apx) into typed entities.
//
// A project file is an XML document whose root holds one element per entity:
// shaders, texture pages, materials, models, scenes, timeline events and
// render configuration. Cross references between entities are stored as GUID
// strings and are left unresolved here; see internal/resolve.
package apx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/beevik/etree"

	"github.com/Faultbox/apx-unpack/pkg/encoding"
)

// Project file errors.
var (
	ErrInputNotFound      = errors.New("input file not found")
	ErrMalformedContainer = errors.New("malformed project file")
)

// Top-level element tags.
const (
	TagRenderTechnique = "rendertechnique"
	TagRenderTarget    = "rendertarget"
	TagRenderLayer     = "renderlayer"
	TagTexturePage     = "texturepage"
	TagMaterial        = "material"
	TagModel           = "model"
	TagScene           = "scene"
	TagEvent           = "event"
)

// Project holds every entity decoded from a project file, in file order.
type Project struct {
	TextureGenerators []TextureGenerator
	Techniques        []RenderTechnique
	TexturePages      []TexturePage
	Materials         []Material
	Models            []Model
	Scenes            []Scene
	Events            []TimelineEvent
	RenderTargets     []RenderTarget
	RenderLayers      []RenderLayer

	// Dropped lists tags of top-level elements that matched no entity kind.
	Dropped []string
}

// Counts holds the number of decoded entities per kind.
type Counts struct {
	TextureGenerators int
	Techniques        int
	TexturePages      int
	Materials         int
	Models            int
	Scenes            int
	Events            int
	RenderTargets     int
	RenderLayers      int
}

// Counts returns the number of entities of each kind.
func (p *Project) Counts() Counts {
	return Counts{
		TextureGenerators: len(p.TextureGenerators),
		Techniques:        len(p.Techniques),
		TexturePages:      len(p.TexturePages),
		Materials:         len(p.Materials),
		Models:            len(p.Models),
		Scenes:            len(p.Scenes),
		Events:            len(p.Events),
		RenderTargets:     len(p.RenderTargets),
		RenderLayers:      len(p.RenderLayers),
	}
}

// Open reads and decodes the project file at path.
func Open(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseBytes(data)
}

// Parse reads a whole project file from r and decodes it.
func Parse(r io.Reader) (*Project, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("reading project: %w", err)
	}
	return ParseBytes(buf.Bytes())
}

// ParseBytes decodes a project file from raw bytes.
func ParseBytes(data []byte) (*Project, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = encoding.CharsetReader

	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedContainer)
	}
	if err := checkTopLevel(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}

	return Decode(root), nil
}

// checkTopLevel rejects documents with more than one top-level element or with
// non-whitespace text outside the root.
func checkTopLevel(doc *etree.Document) error {
	if n := len(doc.ChildElements()); n != 1 {
		return fmt.Errorf("%d top-level elements", n)
	}
	for _, tok := range doc.Child {
		if cd, ok := tok.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return errors.New("text outside the document element")
		}
	}
	return nil
}

// Decode builds a Project from the children of root. Malformed children never
// fail decoding; missing fields fall back to their zero values.
func Decode(root *etree.Element) *Project {
	p := &Project{}

	for _, el := range root.ChildElements() {
		switch el.Tag {
		case TagRenderTechnique:
			p.Techniques = append(p.Techniques, parseRenderTechnique(el))
		case TagRenderTarget:
			p.RenderTargets = append(p.RenderTargets, parseRenderTarget(el))
		case TagRenderLayer:
			p.RenderLayers = append(p.RenderLayers, parseRenderLayer(el))
		case TagTexturePage:
			p.TexturePages = append(p.TexturePages, parseTexturePage(el))
		case TagMaterial:
			p.Materials = append(p.Materials, parseMaterial(el))
		case TagModel:
			p.Models = append(p.Models, parseModel(el))
		case TagScene:
			p.Scenes = append(p.Scenes, parseScene(el))
		case TagEvent:
			p.Events = append(p.Events, parseTimelineEvent(el))
		default:
			// Texture generators are stored under their own type-specific
			// tags, so anything else with a GUID and a Name is one.
			if tg, ok := parseTextureGenerator(el); ok {
				p.TextureGenerators = append(p.TextureGenerators, tg)
			} else {
				p.Dropped = append(p.Dropped, el.Tag)
			}
		}
	}

	return p
}
