package operations

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/charmbracelet/log"
	"github.com/indaco/scafsln/internal/core"
	"github.com/indaco/scafsln/internal/logging"
	"github.com/indaco/scafsln/internal/templates"
)

// ScaffoldOptions configures a Scaffolder.
type ScaffoldOptions struct {
	// Resolver supplies template content; nil uses the built-in defaults.
	Resolver *templates.Resolver
	Logger   *log.Logger
	DryRun   bool
}

// Scaffolder writes template-based files into a solution root.
type Scaffolder struct {
	fs       core.FileSystem
	resolver *templates.Resolver
	logger   *log.Logger
	dryRun   bool
}

// NewScaffolder creates a Scaffolder.
func NewScaffolder(fs core.FileSystem, opts ScaffoldOptions) *Scaffolder {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = templates.NewResolver(nil, opts.Logger)
	}
	return &Scaffolder{
		fs:       fs,
		resolver: resolver,
		logger:   logging.OrDiscard(opts.Logger),
		dryRun:   opts.DryRun,
	}
}

// Scaffold writes the named template to its target below root. The
// build-props template has a configurable target; use BuildProps for it.
func (s *Scaffolder) Scaffold(ctx context.Context, root, name string) (Artifact, error) {
	if err := validateRoot(ctx, s.fs, root); err != nil {
		return Artifact{}, err
	}

	tmpl, err := templates.GetTemplate(name)
	if err != nil {
		return Artifact{}, &core.InvalidArgumentError{Name: "template", Reason: err.Error()}
	}
	if tmpl.Target == "" {
		return Artifact{}, &core.InvalidArgumentError{Name: "template", Reason: fmt.Sprintf("%q has no fixed target", name)}
	}

	content, origin, err := s.resolver.Resolve(ctx, name)
	if err != nil {
		return Artifact{}, err
	}

	art, err := writeIfChanged(ctx, s.fs, root, filepath.FromSlash(tmpl.Target), []byte(content), s.dryRun)
	if err != nil {
		return art, err
	}
	s.logger.Debug("scaffolded file", "file", art.RelPath, "template", origin, "changed", art.Changed)
	return art, nil
}

// buildPropsData is passed to the build-props template.
type buildPropsData struct {
	// AnalyzerPackage is the pinned analyzer, empty when pinning is off.
	AnalyzerPackage string
}

// BuildProps renders the build-props template into root/filename. A user
// override that fails to render is logged and replaced by the built-in
// template.
func (s *Scaffolder) BuildProps(ctx context.Context, root, filename, analyzer string) (Artifact, error) {
	content, origin, err := s.resolver.Resolve(ctx, templates.NameBuildProps)
	if err != nil {
		return Artifact{}, err
	}

	data := buildPropsData{AnalyzerPackage: analyzer}
	out, err := renderBuildProps(content, data)
	if err != nil && origin == templates.OriginOverride {
		s.logger.Warn("build-props override failed to render, using built-in template", "error", err)
		content, err = templates.Default(templates.NameBuildProps)
		if err != nil {
			return Artifact{}, err
		}
		out, err = renderBuildProps(content, data)
	}
	if err != nil {
		return Artifact{}, err
	}

	return writeIfChanged(ctx, s.fs, root, filename, out, s.dryRun)
}

func renderBuildProps(content string, data buildPropsData) ([]byte, error) {
	tmpl, err := template.New(templates.NameBuildProps).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, &core.ParseError{Path: templates.NameBuildProps + " template", Err: err}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, &core.ParseError{Path: templates.NameBuildProps + " template", Err: err}
	}
	if b := buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
