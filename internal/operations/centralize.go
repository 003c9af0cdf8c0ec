package operations

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/indaco/scafsln/internal/config"
	"github.com/indaco/scafsln/internal/core"
	"github.com/indaco/scafsln/internal/cpm"
	"github.com/indaco/scafsln/internal/discovery"
	"github.com/indaco/scafsln/internal/logging"
	"github.com/indaco/scafsln/internal/msbuild"
	"github.com/indaco/scafsln/internal/semver"
	"github.com/indaco/scafsln/internal/templates"
	"golang.org/x/sync/errgroup"
)

// CentralizeOptions configures a Centralizer.
type CentralizeOptions struct {
	// Config supplies file names, the pin, discovery rules and the scan
	// worker count; nil uses the defaults.
	Config *config.Config
	// Resolver supplies the build-props template.
	Resolver *templates.Resolver
	Logger   *log.Logger
	// DryRun computes every change without writing anything.
	DryRun bool
}

// Centralizer converts a solution tree to central package management.
type Centralizer struct {
	fs         core.FileSystem
	cfg        *config.Config
	editor     *msbuild.Editor
	discovery  *discovery.Service
	scanner    *cpm.Scanner
	rewriter   *cpm.Rewriter
	scaffolder *Scaffolder
	comparator *semver.Comparator
	logger     *log.Logger
	dryRun     bool
}

// NewCentralizer creates a Centralizer over fs.
func NewCentralizer(fs core.FileSystem, opts CentralizeOptions) *Centralizer {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := logging.OrDiscard(opts.Logger)
	editor := msbuild.NewEditor(fs)

	return &Centralizer{
		fs:        fs,
		cfg:       cfg,
		editor:    editor,
		discovery: discovery.NewService(fs, cfg),
		scanner:   cpm.NewScanner(editor),
		rewriter:  cpm.NewRewriter(editor),
		scaffolder: NewScaffolder(fs, ScaffoldOptions{
			Resolver: opts.Resolver,
			Logger:   logger,
			DryRun:   opts.DryRun,
		}),
		comparator: semver.NewComparator(),
		logger:     logger,
		dryRun:     opts.DryRun,
	}
}

// Resolve runs the whole conversion on root:
//  1. validate root
//  2. discover descriptors
//  3. scan every descriptor (all scans finish before aggregation starts)
//  4. aggregate, seeded by an existing manifest and forced to the pin
//  5. rewrite descriptors
//  6. write the manifest
//  7. write the build settings file
//
// Any error aborts the run; files already written stay written.
func (c *Centralizer) Resolve(ctx context.Context, root string) (*Result, error) {
	if err := validateRoot(ctx, c.fs, root); err != nil {
		return nil, err
	}

	found, err := c.discovery.Discover(ctx, root)
	if err != nil {
		return nil, err
	}
	paths := found.Paths()
	c.logger.Debug("discovered descriptors", "root", root, "count", len(paths))

	refs, err := c.scanAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	manifestRel := c.cfg.GetManifestFilename()
	seed, existed, err := cpm.ReadManifest(ctx, c.editor, filepath.Join(root, manifestRel))
	if err != nil {
		return nil, err
	}
	if existed {
		c.logger.Debug("seeding from existing manifest", "file", manifestRel, "entries", len(seed))
	}

	pin := c.cfg.GetPin()
	table := cpm.Aggregate(refs, cpm.AggregateOptions{
		Pin:        cpm.Pin{Name: pin.Name, Version: pin.Version},
		Seed:       seed,
		Comparator: c.comparator,
	})

	result := &Result{
		Root:          root,
		DryRun:        c.dryRun,
		References:    len(refs),
		Entries:       table.Entries(),
		Unresolved:    table.Unresolved(),
		CaseConflicts: table.CaseConflicts(),
		Mismatches:    cpm.DetectMismatches(refs, table),
	}
	for _, d := range found.Descriptors {
		result.Descriptors = append(result.Descriptors, d.RelPath)
	}

	for _, d := range found.Descriptors {
		changes, err := c.rewriter.Rewrite(ctx, d.Path, table, c.dryRun)
		if err != nil {
			return nil, err
		}
		if len(changes) == 0 {
			continue
		}
		c.logger.Debug("rewrote descriptor", "file", d.RelPath, "changes", len(changes), "dry-run", c.dryRun)
		result.Files = append(result.Files, FileChanges{Path: d.Path, RelPath: d.RelPath, Changes: changes})
	}

	result.Manifest, err = writeIfChanged(ctx, c.fs, root, manifestRel, cpm.RenderManifest(result.Entries), c.dryRun)
	if err != nil {
		return nil, err
	}

	result.BuildProps, err = c.scaffolder.BuildProps(ctx, root, c.cfg.GetBuildPropsFilename(), pin.Name)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// scanAll scans paths on a bounded worker pool and returns the references
// in descriptor order.
func (c *Centralizer) scanAll(ctx context.Context, paths []string) ([]cpm.PackageReference, error) {
	perFile := make([][]cpm.PackageReference, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, c.cfg.GetWorkers()))
	for i, path := range paths {
		g.Go(func() error {
			refs, err := c.scanner.Scan(gctx, path)
			if err != nil {
				return err
			}
			perFile[i] = refs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []cpm.PackageReference
	for _, refs := range perFile {
		all = append(all, refs...)
	}
	return all, nil
}
