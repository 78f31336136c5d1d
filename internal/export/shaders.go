package export

import (
	"fmt"
	"strings"

	"github.com/Faultbox/apx-unpack/internal/resolve"
	"github.com/Faultbox/apx-unpack/pkg/apx"
)

// Shader file extension and output directories.
const (
	shaderExt       = ".hlsl"
	texgenDir       = "shaders/texgen"
	techniqueDir    = "shaders/materials"
	passBannerWidth = 70
)

var passBanner = "// " + strings.Repeat("=", passBannerWidth) + "\n"

// texgenSource renders a texture generator as a commented shader file.
func texgenSource(tg *apx.TextureGenerator) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// Texture Generator: %s\n", tg.Name)
	fmt.Fprintf(&b, "// GUID: %s\n", tg.GUID)
	if len(tg.Parameters) > 0 {
		b.WriteString("// Parameters:\n")
		for _, p := range tg.Parameters {
			fmt.Fprintf(&b, "//   [%d] %s (%s)\n", int(p.Type), p.Name, p.Type)
		}
	}
	b.WriteString("\n")
	b.WriteString(tg.Code)

	return b.String()
}

// techniqueSource renders a render technique with one banner block per pass.
func techniqueSource(t *apx.RenderTechnique, names *resolve.Resolver) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// Render Technique: %s\n", t.Name)
	fmt.Fprintf(&b, "// Type: %s\n", t.Type)
	fmt.Fprintf(&b, "// GUID: %s\n", t.GUID)
	if t.TargetLayer != nil && *t.TargetLayer != "" {
		fmt.Fprintf(&b, "// Target Layer: %s\n", names.NameOrPrefix(resolve.KindRenderLayer, *t.TargetLayer))
	}
	b.WriteString("\n")

	for i, pass := range t.Passes {
		b.WriteString(passBanner)
		fmt.Fprintf(&b, "// Pass %d: %s\n", i+1, pass.Name)
		for _, p := range pass.Parameters {
			fmt.Fprintf(&b, "//   • %s (%s, %s)\n", p.Name, p.Type, p.Scope)
		}
		b.WriteString(passBanner)
		b.WriteString("\n")
		if pass.Code != "" {
			b.WriteString(pass.Code)
		} else {
			b.WriteString("// (no shader code)\n")
		}
		b.WriteString("\n\n")
	}

	return b.String()
}

func (e *Exporter) writeShaders(res *Result) error {
	for _, dir := range []string{texgenDir, techniqueDir} {
		if err := e.mkdir(dir); err != nil {
			return err
		}
	}

	for i := range e.project.TextureGenerators {
		tg := &e.project.TextureGenerators[i]
		if !tg.HasCode() {
			continue
		}
		rel := texgenDir + "/" + Slug(tg.Name) + shaderExt
		if err := e.writeFile(rel, []byte(texgenSource(tg))); err != nil {
			return err
		}
		res.addShader(rel)
	}

	for i := range e.project.Techniques {
		t := &e.project.Techniques[i]
		if !t.HasCode() {
			continue
		}
		rel := techniqueDir + "/" + Slug(t.Name) + shaderExt
		if err := e.writeFile(rel, []byte(techniqueSource(t, e.names))); err != nil {
			return err
		}
		res.addShader(rel)
	}

	return nil
}
