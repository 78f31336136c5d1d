// apxtool extracts shaders, texture graphs, models, scenes and timeline data
// from apEx project files (.apx).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/apx-unpack/internal/config"
	"github.com/Faultbox/apx-unpack/internal/export"
	"github.com/Faultbox/apx-unpack/internal/logger"
	"github.com/Faultbox/apx-unpack/internal/resolve"
	"github.com/Faultbox/apx-unpack/pkg/apx"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	input := config.Input()
	if input == "" {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		logger.Info("saved config", zap.String("path", path))
	}

	if err := run(cfg, input); err != nil {
		fmt.Fprintln(os.Stderr, diagnostic(err, input))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `apxtool - apEx project file extractor

Usage:
  apxtool [options] <file.apx>

Options:
  -o <dir>            Output directory (default: <file stem>_extracted)
  -list               List contents only, write nothing
  -shaders-only       Extract only shaders/texgen and shaders/materials
  -config <file>      Config file (default: ./apxtool.yaml)
  -save-config <file> Write the effective config to a file
  -log-file <file>    Also write logs to a rotating file
  -debug              Enable debug logging

Examples:
  apxtool project.apx
  apxtool -o extracted/ project.apx
  apxtool -list project.apx
  apxtool -shaders-only project.apx`)
}

func run(cfg *config.Config, input string) error {
	project, err := apx.Open(input)
	if err != nil {
		return err
	}

	logger.Debug("decoded project",
		zap.String("input", input),
		zap.Any("counts", project.Counts()),
	)
	if len(project.Dropped) > 0 {
		logger.Warn("skipped unrecognized elements", zap.Strings("tags", project.Dropped))
	}

	if config.ListOnly() {
		return export.WriteSummary(os.Stdout, filepath.Base(input), project)
	}

	names := resolve.New(project)
	outDir := cfg.OutputDir(input)

	exporter := export.New(project, names, export.Options{
		ShadersOnly: cfg.Output.ShadersOnly,
		SourcePath:  input,
	})
	res, err := exporter.Extract(outDir)
	if err != nil {
		return err
	}

	printResult(res, project, cfg.Output.ShadersOnly)
	return nil
}

// diagnostic returns the message printed for a failed run.
func diagnostic(err error, input string) string {
	switch {
	case errors.Is(err, apx.ErrInputNotFound):
		return fmt.Sprintf("Error: File not found: %s", input)
	case errors.Is(err, apx.ErrMalformedContainer):
		return fmt.Sprintf("Error: Failed to parse XML: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func printResult(res *export.Result, p *apx.Project, shadersOnly bool) {
	if shadersOnly {
		fmt.Printf("\nExtracted %d shader files to %s\n", res.Shaders, filepath.Join(res.OutputDir, "shaders"))
		return
	}

	texgens, techniques := 0, 0
	for i := range p.TextureGenerators {
		if p.TextureGenerators[i].HasCode() {
			texgens++
		}
	}
	for i := range p.Techniques {
		if p.Techniques[i].HasCode() {
			techniques++
		}
	}

	fmt.Printf("\nExtracted to %s\n", res.OutputDir)
	fmt.Printf("   shaders/texgen/ (%d files)\n", texgens)
	fmt.Printf("   shaders/materials/ (%d files)\n", techniques)
	fmt.Printf("   textures/ (%d files)\n", len(p.TexturePages))
	fmt.Printf("   models/ (%d files)\n", len(p.Models))
	fmt.Printf("   scenes/ (%d files)\n", len(p.Scenes))
	fmt.Printf("   timeline.json (%d events)\n", len(p.Events))
	fmt.Printf("   materials.json (%d materials)\n", len(p.Materials))
	fmt.Printf("   render_targets.json (%d targets)\n", len(p.RenderTargets))
	fmt.Printf("   render_layers.json (%d layers)\n", len(p.RenderLayers))
}
