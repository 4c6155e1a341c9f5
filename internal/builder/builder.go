// Package builder orchestrates the manifest pipeline: load the site
// configuration, scan each configured directory, extract entries, and
// write the manifest. Execution is sequential and fail-fast; the first
// error aborts the run and no partial manifest is written.
package builder

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"

	"github.com/quantmind-br/sitenav-go/internal/config"
	"github.com/quantmind-br/sitenav-go/internal/domain"
	"github.com/quantmind-br/sitenav-go/internal/extract"
	"github.com/quantmind-br/sitenav-go/internal/output"
	"github.com/quantmind-br/sitenav-go/internal/scanner"
	"github.com/quantmind-br/sitenav-go/internal/site"
	"github.com/quantmind-br/sitenav-go/internal/utils"
)

// Builder coordinates the manifest generation pipeline
type Builder struct {
	root         string
	configPath   string
	outputPath   string
	dryRun       bool
	showProgress bool
	log          *utils.Logger
	loader       *site.Loader
	extractor    *extract.Extractor
}

// Options contains options for creating a builder
type Options struct {
	RootDir      string
	ConfigPath   string
	OutputPath   string
	DryRun       bool
	ShowProgress bool
	Logger       *utils.Logger
}

// New creates a new builder with the given options
func New(opts Options) (*Builder, error) {
	root := opts.RootDir
	if root == "" {
		root = config.DefaultRoot
	}
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultSiteConfig
	}
	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = config.DefaultManifest
	}

	log := opts.Logger
	if log == nil {
		log = utils.NewDefaultLogger()
	}

	return &Builder{
		root:         root,
		configPath:   configPath,
		outputPath:   outputPath,
		dryRun:       opts.DryRun,
		showProgress: opts.ShowProgress,
		log:          log.WithComponent("builder"),
		loader:       site.NewLoader(),
		extractor:    extract.New(root),
	}, nil
}

// Run assembles the manifest and writes it to the output path
func (b *Builder) Run(ctx context.Context) error {
	manifest, err := b.Assemble(ctx)
	if err != nil {
		return err
	}

	path := utils.ResolvePath(b.root, b.outputPath)
	writer := output.NewWriter(output.WriterOptions{
		Path:   path,
		DryRun: b.dryRun,
	})
	if err := writer.Write(manifest); err != nil {
		return err
	}

	if b.dryRun {
		b.log.Info().Str("path", path).Msg("dry run, manifest not written")
		return nil
	}
	b.log.Info().Str("path", path).Msg("manifest written")
	return nil
}

// Assemble loads the site configuration and builds the manifest value
// without writing it
func (b *Builder) Assemble(ctx context.Context) (*domain.Manifest, error) {
	cfg, err := b.loadConfig()
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if b.showProgress {
		bar = utils.NewProgressBar(-1, utils.DescExtracting)
		defer func() { _ = bar.Finish() }()
	}

	manifest := &domain.Manifest{
		PreviewTitle:       cfg.PreviewTitle,
		PreviewDescription: cfg.PreviewDescription,
		Collections:        make([]domain.ManifestCollection, 0, len(cfg.Collections)),
	}

	for _, col := range cfg.Collections {
		mc := domain.ManifestCollection{
			Label:    col.Label,
			Children: make([]domain.ManifestChild, 0, len(col.Children)),
		}
		for _, child := range col.Children {
			files, err := b.buildChild(ctx, child, bar)
			if err != nil {
				return nil, err
			}
			mc.Children = append(mc.Children, domain.ManifestChild{
				ID:          child.ID,
				Label:       child.Label,
				Description: child.Description,
				Files:       files,
			})
		}
		manifest.Collections = append(manifest.Collections, mc)
	}

	return manifest, nil
}

// Validate loads the site configuration and checks every configured
// directory without writing anything. Explicitly ordered filenames that
// are not on disk are reported at debug level; they are not errors.
func (b *Builder) Validate(ctx context.Context) error {
	cfg, err := b.loadConfig()
	if err != nil {
		return err
	}

	for _, col := range cfg.Collections {
		for _, child := range col.Children {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			dir := utils.ResolvePath(b.root, child.Directory)
			names, err := scanner.ListHTML(dir)
			if err != nil {
				return err
			}

			present := make(map[string]bool, len(names))
			for _, name := range names {
				present[name] = true
			}
			for _, name := range child.FileOrder {
				if !present[name] {
					b.log.Debug().
						Str("child", child.ID).
						Str("file", name).
						Msg("ordered file not found on disk")
				}
			}
			b.log.Info().
				Str("child", child.ID).
				Int("files", len(names)).
				Msg("directory ok")
		}
	}

	return nil
}

func (b *Builder) loadConfig() (*site.Config, error) {
	path := utils.ResolvePath(b.root, b.configPath)
	cfg, err := b.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load site configuration: %w", err)
	}
	b.log.Debug().
		Str("path", path).
		Int("collections", len(cfg.Collections)).
		Msg("site configuration loaded")
	return cfg, nil
}

// buildChild scans one child directory and extracts its entries in final
// manifest order
func (b *Builder) buildChild(ctx context.Context, child site.Child, bar *progressbar.ProgressBar) ([]domain.FileEntry, error) {
	dir := utils.ResolvePath(b.root, child.Directory)

	names, err := scanner.ListHTML(dir)
	if err != nil {
		return nil, err
	}
	ordered := OrderFiles(names, child.FileOrder)

	clog := b.log.WithChild(child.ID)
	clog.Debug().Int("files", len(ordered)).Str("dir", dir).Msg("directory scanned")

	entries := make([]domain.FileEntry, 0, len(ordered))
	for _, name := range ordered {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		entry, err := b.extractor.Extract(child.Directory, name, child.Overrides)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return entries, nil
}
