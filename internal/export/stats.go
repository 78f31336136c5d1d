package export

import (
	"strings"

	"github.com/Faultbox/apx-unpack/pkg/apx"
)

// Stats holds run-level aggregate counters.
type Stats struct {
	ShaderLines int // lines across all generator and pass sources
	Splines     int // clip splines across all scenes
	Operators   int // operators across all texture pages
}

// ComputeStats counts shader lines, clip splines and texture operators.
func ComputeStats(p *apx.Project) Stats {
	var s Stats

	for i := range p.TextureGenerators {
		if code := p.TextureGenerators[i].Code; code != "" {
			s.ShaderLines += lineCount(code)
		}
	}
	for i := range p.Techniques {
		for _, pass := range p.Techniques[i].Passes {
			if pass.Code != "" {
				s.ShaderLines += lineCount(pass.Code)
			}
		}
	}

	for i := range p.Scenes {
		s.Splines += p.Scenes[i].SplineCount()
	}

	for _, page := range p.TexturePages {
		s.Operators += len(page.Operators)
	}

	return s
}

// keyframeCounts returns the number of clip splines that carry keyframes and
// the number of keys with tangent data among them.
func keyframeCounts(p *apx.Project) (animated, tangents int) {
	for i := range p.Scenes {
		for _, obj := range p.Scenes[i].Objects {
			for _, cd := range obj.ClipData {
				for _, cs := range cd.Splines {
					if cs.Spline == nil || !cs.Spline.IsAnimated() {
						continue
					}
					animated++
					for k := range cs.Spline.Keys {
						if cs.Spline.Keys[k].HasControlPoints() {
							tangents++
						}
					}
				}
			}
		}
	}
	return animated, tangents
}

// lineCount returns the number of newline separated segments in code.
func lineCount(code string) int {
	return strings.Count(code, "\n") + 1
}

// techniqueLines returns the line count across all passes with code.
func techniqueLines(t *apx.RenderTechnique) int {
	n := 0
	for _, pass := range t.Passes {
		if pass.Code != "" {
			n += lineCount(pass.Code)
		}
	}
	return n
}

// timelineDuration returns the largest end frame, 0 without events.
func timelineDuration(events []apx.TimelineEvent) int {
	if len(events) == 0 {
		return 0
	}
	duration := events[0].EndFrame
	for _, e := range events[1:] {
		duration = max(duration, e.EndFrame)
	}
	return duration
}
