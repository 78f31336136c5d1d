package export

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Faultbox/apx-unpack/pkg/apx"
)

const indexFile = "index.md"

// sortedByName returns pointers to items ordered by display name. Items with
// equal names keep their project order.
func sortedByName[T any](items []T, name func(*T) string) []*T {
	sorted := make([]*T, 0, len(items))
	for i := range items {
		sorted = append(sorted, &items[i])
	}
	slices.SortStableFunc(sorted, func(a, b *T) int {
		return strings.Compare(name(a), name(b))
	})
	return sorted
}

// renderIndex builds the markdown summary linking every exported artifact.
func renderIndex(p *apx.Project, sourcePath string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Extracted: %s\n\n", filepath.Base(sourcePath))
	fmt.Fprintf(&b, "Source: `%s`\n\n", sourcePath)

	b.WriteString("## Shaders\n\n")
	b.WriteString("### Texture Generators\n\n")
	for _, tg := range sortedByName(p.TextureGenerators, func(t *apx.TextureGenerator) string { return t.Name }) {
		if !tg.HasCode() {
			continue
		}
		fmt.Fprintf(&b, "- [%s](%s/%s%s) (%d lines)\n", tg.Name, texgenDir, Slug(tg.Name), shaderExt, lineCount(tg.Code))
	}

	b.WriteString("\n### Render Techniques\n\n")
	for _, t := range sortedByName(p.Techniques, func(t *apx.RenderTechnique) string { return t.Name }) {
		if !t.HasCode() {
			continue
		}
		fmt.Fprintf(&b, "- [%s](%s/%s%s) [%s]\n", t.Name, techniqueDir, Slug(t.Name), shaderExt, t.Type)
	}

	b.WriteString("\n## Texture Pages\n\n")
	for _, page := range sortedByName(p.TexturePages, func(t *apx.TexturePage) string { return t.Name }) {
		fmt.Fprintf(&b, "- [%s](%s/%s%s) (%d operators)\n", page.Name, texturesDir, Slug(page.Name), docExt, len(page.Operators))
	}

	b.WriteString("\n## Models\n\n")
	for _, m := range sortedByName(p.Models, func(m *apx.Model) string { return m.Name }) {
		fmt.Fprintf(&b, "- [%s](%s/%s%s) (%d objects)\n", m.Name, modelsDir, Slug(m.Name), docExt, len(m.Objects))
	}

	b.WriteString("\n## Scenes\n\n")
	for _, s := range sortedByName(p.Scenes, func(s *apx.Scene) string { return s.Name }) {
		fmt.Fprintf(&b, "- [%s](%s/%s%s) (%d objects, %d clips)\n", s.Name, scenesDir, Slug(s.Name), docExt, len(s.Objects), len(s.Clips))
	}

	b.WriteString("\n## Timeline\n\n")
	if len(p.Events) > 0 {
		fmt.Fprintf(&b, "Total events: %d, Duration: %d frames\n\n", len(p.Events), timelineDuration(p.Events))
		fmt.Fprintf(&b, "See [%s](%s)\n", timelineFile, timelineFile)
	}

	b.WriteString("\n## Render Configuration\n\n")
	fmt.Fprintf(&b, "- [%s](%s) (%d targets)\n", renderTargetsFile, renderTargetsFile, len(p.RenderTargets))
	fmt.Fprintf(&b, "- [%s](%s) (%d layers)\n", renderLayersFile, renderLayersFile, len(p.RenderLayers))
	fmt.Fprintf(&b, "- [%s](%s) (%d materials)\n", materialsFile, materialsFile, len(p.Materials))

	stats := ComputeStats(p)
	b.WriteString("\n## Statistics\n\n")
	fmt.Fprintf(&b, "- Total shader lines: %d\n", stats.ShaderLines)
	fmt.Fprintf(&b, "- Total animation splines: %d\n", stats.Splines)
	fmt.Fprintf(&b, "- Total texture operators: %d\n", stats.Operators)

	return b.String()
}

func (e *Exporter) writeIndex(res *Result) error {
	if err := e.writeFile(indexFile, []byte(renderIndex(e.project, e.opts.SourcePath))); err != nil {
		return err
	}
	res.Files = append(res.Files, indexFile)
	return nil
}
