package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	pydox "github.com/pydox/pydox"
	"github.com/pydox/pydox/internal/config"
)

// Sentinel errors for CLI operations.
var ErrInvalidTimeout = errors.New("invalid timeout value")

// runGenerate loads configuration, merges flags, and runs the generation service.
func runGenerate(ctx context.Context, positionalArgs []string, flags *generateFlags, env *Environment) error {
	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// "-" means the current directory, matching the no-args syntax hint.
	projectDir := "."
	if len(positionalArgs) > 0 && positionalArgs[0] != "-" {
		projectDir = positionalArgs[0]
	}

	opts, err := serviceOptions(flags)
	if err != nil {
		return err
	}

	svc := pydox.New(opts...)
	defer func() { _ = svc.Close() }()

	start := env.Now()
	result, err := svc.Generate(ctx, pydox.Input{
		ProjectDir: projectDir,
		Manifest:   cfg.Project.Manifest,
		Module:     cfg.Project.Module,
		OutputDir:  cfg.Output.Dir,
		Style:      cfg.Render.Style,
		StyleDir:   cfg.Render.StyleDir,
		GitHubUser: cfg.Project.GitHubUser,
		WithCSS:    cfg.Render.WithCSS,
		WithReadme: cfg.Render.WithReadme,
		WithPDF:    cfg.Render.WithPDF,
	})
	if err != nil {
		return err
	}

	printResult(result, flags, env, env.Now().Sub(start))
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	// Project flags
	if flags.project.manifest != "" {
		cfg.Project.Manifest = flags.project.manifest
	}
	if flags.project.module != "" {
		cfg.Project.Module = flags.project.module
	}
	if flags.project.githubUser != "" {
		cfg.Project.GitHubUser = flags.project.githubUser
	}

	// Output flags
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}

	// Render flags
	if flags.render.style != "" {
		cfg.Render.Style = flags.render.style
	}
	if flags.render.styleDir != "" {
		cfg.Render.StyleDir = flags.render.styleDir
	}
	if flags.render.withCSS {
		cfg.Render.WithCSS = true
	}
	if flags.render.withReadme {
		cfg.Render.WithReadme = true
	}
	if flags.render.withPDF {
		cfg.Render.WithPDF = true
	}
}

// serviceOptions builds service options from CLI flags.
func serviceOptions(flags *generateFlags) ([]pydox.Option, error) {
	if flags.timeout == "" {
		return nil, nil
	}

	d, err := time.ParseDuration(flags.timeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.timeout)
	}
	if d <= 0 {
		return nil, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, flags.timeout)
	}

	return []pydox.Option{pydox.WithTimeout(d)}, nil
}

// printResult outputs warnings and generated paths.
func printResult(result *pydox.Result, flags *generateFlags, env *Environment, elapsed time.Duration) {
	for _, w := range result.Warnings {
		fmt.Fprintf(env.Stderr, "warning: %s\n", w)
	}

	if flags.common.quiet {
		return
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Created %s (%v)\n", result.IndexPath, elapsed.Round(time.Millisecond))
	} else {
		fmt.Fprintf(env.Stdout, "Created %s\n", result.IndexPath)
	}
	if result.CSSPath != "" {
		fmt.Fprintf(env.Stdout, "Created %s\n", result.CSSPath)
	}
	if result.PDFPath != "" {
		fmt.Fprintf(env.Stdout, "Created %s\n", result.PDFPath)
	}
}
