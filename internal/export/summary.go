package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/Faultbox/apx-unpack/pkg/apx"
)

// WriteSummary prints an overview of the project contents to w without
// writing any files.
func WriteSummary(w io.Writer, name string, p *apx.Project) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", name)
	b.WriteString(strings.Repeat("=", 70) + "\n")

	var generators []*apx.TextureGenerator
	for i := range p.TextureGenerators {
		if p.TextureGenerators[i].HasCode() {
			generators = append(generators, &p.TextureGenerators[i])
		}
	}
	fmt.Fprintf(&b, "\nTexture Generators: %d with shader code\n", len(generators))
	for _, tg := range head(generators, 8) {
		fmt.Fprintf(&b, "   - %s (%d lines)\n", tg.Name, lineCount(tg.Code))
	}
	more(&b, len(generators), 8)

	var techniques []*apx.RenderTechnique
	for i := range p.Techniques {
		if p.Techniques[i].HasCode() {
			techniques = append(techniques, &p.Techniques[i])
		}
	}
	fmt.Fprintf(&b, "\nRender Techniques: %d\n", len(techniques))
	for _, t := range head(techniques, 10) {
		fmt.Fprintf(&b, "   - [%s] %s (%d passes, %d lines)\n", t.Type, t.Name, len(t.Passes), techniqueLines(t))
	}
	more(&b, len(techniques), 10)

	stats := ComputeStats(p)

	fmt.Fprintf(&b, "\nTexture Pages: %d (%d total operators)\n", len(p.TexturePages), stats.Operators)
	for _, page := range head(p.TexturePages, 5) {
		fmt.Fprintf(&b, "   - %s (%d ops, %dx%d)\n", page.Name, len(page.Operators), page.XRes, page.YRes)
	}
	more(&b, len(p.TexturePages), 5)

	fmt.Fprintf(&b, "\nMaterials: %d\n", len(p.Materials))
	for _, m := range head(p.Materials, 5) {
		fmt.Fprintf(&b, "   - %s\n", m.Name)
	}
	more(&b, len(p.Materials), 5)

	totalObjects := 0
	for _, m := range p.Models {
		totalObjects += len(m.Objects)
	}
	fmt.Fprintf(&b, "\nModels: %d (%d total objects)\n", len(p.Models), totalObjects)
	for _, m := range head(p.Models, 5) {
		fmt.Fprintf(&b, "   - %s (%d objects)\n", m.Name, len(m.Objects))
	}
	more(&b, len(p.Models), 5)

	sceneObjects, clips := 0, 0
	for _, s := range p.Scenes {
		sceneObjects += len(s.Objects)
		clips += len(s.Clips)
	}
	fmt.Fprintf(&b, "\nScenes: %d (%d objects, %d clips)\n", len(p.Scenes), sceneObjects, clips)
	for _, s := range head(p.Scenes, 5) {
		fmt.Fprintf(&b, "   - %s (%d objs, %d clips)\n", s.Name, len(s.Objects), len(s.Clips))
	}
	more(&b, len(p.Scenes), 5)

	if len(p.Events) > 0 {
		fmt.Fprintf(&b, "\nTimeline Events: %d (duration: %d frames)\n", len(p.Events), timelineDuration(p.Events))
		for _, ev := range head(p.Events, 5) {
			fmt.Fprintf(&b, "   - [%s] %d-%d\n", ev.Type, ev.StartFrame, ev.EndFrame)
		}
		more(&b, len(p.Events), 5)
	}

	fmt.Fprintf(&b, "\nRender Targets: %d\n", len(p.RenderTargets))
	fmt.Fprintf(&b, "Render Layers: %d\n", len(p.RenderLayers))

	b.WriteString("\nStatistics:\n")
	fmt.Fprintf(&b, "   - Total shader lines: ~%d\n", stats.ShaderLines)
	fmt.Fprintf(&b, "   - Total animation splines: ~%d\n", stats.Splines)
	if animated, tangents := keyframeCounts(p); animated > 0 {
		fmt.Fprintf(&b, "   - Keyframed splines: %d (%d keys with tangents)\n", animated, tangents)
	}
	fmt.Fprintf(&b, "   - Total texture operators: %d\n", stats.Operators)

	_, err := io.WriteString(w, b.String())
	return err
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func more(b *strings.Builder, total, shown int) {
	if total > shown {
		fmt.Fprintf(b, "   ... and %d more\n", total-shown)
	}
}
