// Package export writes decoded project entities to an output directory:
// shader sources, JSON documents and a markdown index.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/apx-unpack/internal/logger"
	"github.com/Faultbox/apx-unpack/internal/resolve"
	"github.com/Faultbox/apx-unpack/pkg/apx"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Options controls what an Exporter writes.
type Options struct {
	// ShadersOnly stops after the .hlsl files; no JSON documents or index.
	ShadersOnly bool
	// SourcePath is the project file path cited in the index.
	SourcePath string
}

// Result describes the files written by Extract.
type Result struct {
	OutputDir string
	Shaders   int
	Documents int
	Files     []string // slash-separated paths relative to OutputDir
}

func (r *Result) addShader(rel string) {
	r.Shaders++
	r.Files = append(r.Files, rel)
}

func (r *Result) addDocument(rel string) {
	r.Documents++
	r.Files = append(r.Files, rel)
}

// Exporter writes a decoded project to disk.
type Exporter struct {
	project *apx.Project
	names   *resolve.Resolver
	opts    Options
	outDir  string
}

// New returns an Exporter for p. names must have been built from p.
func New(p *apx.Project, names *resolve.Resolver, opts Options) *Exporter {
	return &Exporter{
		project: p,
		names:   names,
		opts:    opts,
	}
}

// Extract writes all artifacts under outDir. Existing directories are reused
// and existing files overwritten.
func (e *Exporter) Extract(outDir string) (*Result, error) {
	e.outDir = outDir
	res := &Result{OutputDir: outDir}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return res, fmt.Errorf("creating output directory: %w", err)
	}

	logger.Debug("resolved references",
		zap.Int("texgens", e.names.Len(resolve.KindTextureGenerator)),
		zap.Int("techniques", e.names.Len(resolve.KindTechnique)),
		zap.Int("render_targets", e.names.Len(resolve.KindRenderTarget)),
		zap.Int("render_layers", e.names.Len(resolve.KindRenderLayer)),
		zap.Int("model_objects", e.names.Len(resolve.KindModelObject)),
		zap.Int("clips", e.names.Len(resolve.KindClip)),
	)

	if err := e.writeShaders(res); err != nil {
		return res, err
	}
	if e.opts.ShadersOnly {
		logger.Info("extracted shaders", zap.String("dir", outDir), zap.Int("files", res.Shaders))
		return res, nil
	}

	steps := []func(*Result) error{
		e.writeTexturePages,
		e.writeMaterials,
		e.writeModels,
		e.writeScenes,
		e.writeTimeline,
		e.writeRenderTargets,
		e.writeRenderLayers,
		e.writeIndex,
	}
	for _, step := range steps {
		if err := step(res); err != nil {
			return res, err
		}
	}

	logger.Info("extracted project",
		zap.String("dir", outDir),
		zap.Int("shaders", res.Shaders),
		zap.Int("documents", res.Documents),
	)
	return res, nil
}

func (e *Exporter) mkdir(rel string) error {
	if err := os.MkdirAll(filepath.Join(e.outDir, filepath.FromSlash(rel)), dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", rel, err)
	}
	return nil
}

func (e *Exporter) writeFile(rel string, data []byte) error {
	path := filepath.Join(e.outDir, filepath.FromSlash(rel))
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	logger.Debug("wrote file", zap.String("path", rel), zap.Int("bytes", len(data)))
	return nil
}
