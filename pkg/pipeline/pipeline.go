// Package pipeline provides the load → embed → render pipeline for treelay.
//
// This package wires the document loader, the layout embedder, and the
// render sinks into one entry point shared by the CLI and by library users
// who want the whole chain instead of the individual stages.
//
// # Stages
//
//  1. Load: read and validate a TOML tree document
//  2. Embed: compute the planar embedding of the tree
//  3. Render: produce the requested artifacts (SVG, PNG, DOT, JSON)
//
// Any stage failure aborts the run; no partial artifacts are returned.
//
// # Caching
//
// Graphviz renders are the only expensive stage, so their artifacts are
// cached keyed by DOT source and format. Pass a [cache.Cache] to [NewRunner]
// to enable it; a nil cache disables caching.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Run(ctx, pipeline.Options{
//	    Input:   "tree.toml",
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhofer/treelay/pkg/cache"
	"github.com/mhofer/treelay/pkg/document"
	"github.com/mhofer/treelay/pkg/errors"
	"github.com/mhofer/treelay/pkg/layout"
	"github.com/mhofer/treelay/pkg/render"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// Visualization views.
const (
	// ViewLayered draws the embedding's own coordinates (the default).
	ViewLayered = "layered"
	// ViewGraphviz hands the tree structure to Graphviz for a node-link view.
	ViewGraphviz = "graphviz"
)

// Options configures a pipeline run.
type Options struct {
	Input    string   // path of the TOML tree document
	View     string   // "layered" (default) or "graphviz"
	Formats  []string // output formats; defaults to ["svg"]
	Detailed bool     // include ord/level in graphviz labels

	// Geometry of the layered SVG view. Zero values use the render
	// package defaults.
	Unit        float64
	LevelHeight float64
}

// Result holds everything a pipeline run produced.
type Result struct {
	Document  *document.Document
	Embedding layout.Embedding
	Artifacts map[string][]byte // format → rendered bytes
}

// artifactTTL bounds how long cached Graphviz renders stay valid.
const artifactTTL = 24 * time.Hour

// Runner executes the pipeline with consistent caching and logging.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil cache disables artifact
// caching; a nil logger falls back to the default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{cache: c, logger: logger}
}

// Run executes load → embed → render and returns all requested artifacts.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	normalize(&opts)
	if err := validate(opts); err != nil {
		return nil, err
	}

	start := time.Now()
	doc, err := document.Load(opts.Input)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("loaded document", "path", opts.Input, "nodes", doc.Tree.Len(), "elapsed", time.Since(start).Round(time.Millisecond))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	emb, err := EmbedDocument(doc)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("computed embedding", "placements", len(emb), "width", emb.Width(), "levels", emb.Height(), "elapsed", time.Since(start).Round(time.Millisecond))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	artifacts, err := r.render(ctx, emb, opts)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("rendered artifacts", "formats", opts.Formats, "elapsed", time.Since(start).Round(time.Millisecond))

	return &Result{Document: doc, Embedding: emb, Artifacts: artifacts}, nil
}

// EmbedDocument runs the layout stage with the document's label and emphasis
// strategies. Documents with a source string label their leaf tokens with
// the exact source slice.
func EmbedDocument(doc *document.Document) (layout.Embedding, error) {
	opts := []layout.Option[document.Node]{
		layout.WithEmphasis(func(n document.Node) bool { return n.Emphasize }),
	}
	if doc.Source != "" {
		opts = append(opts, layout.WithSourceFallback[document.Node](doc.Source))
	}
	return layout.Embed(doc.Tree, opts...)
}

func (r *Runner) render(ctx context.Context, emb layout.Embedding, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := r.renderOne(ctx, emb, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func (r *Runner) renderOne(ctx context.Context, emb layout.Embedding, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return render.RenderJSON(emb, render.WithJSONGeometry(opts.Unit, opts.LevelHeight))
	case FormatDOT:
		return []byte(render.ToDOT(emb, render.DOTOptions{Detailed: opts.Detailed})), nil
	case FormatSVG:
		if opts.View == ViewGraphviz {
			return r.graphviz(ctx, emb, format, opts)
		}
		return render.RenderSVG(emb,
			render.WithUnit(opts.Unit),
			render.WithLevelHeight(opts.LevelHeight),
		), nil
	case FormatPNG:
		return r.graphviz(ctx, emb, format, opts)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", format)
	}
}

// graphviz renders the node-link view, consulting the artifact cache first.
// Cache failures are logged and ignored; rendering always wins.
func (r *Runner) graphviz(ctx context.Context, emb layout.Embedding, format string, opts Options) ([]byte, error) {
	dot := render.ToDOT(emb, render.DOTOptions{Detailed: opts.Detailed})
	key := cache.ArtifactKey(format, []byte(dot))

	if data, hit, err := r.cache.Get(ctx, key); err == nil && hit {
		r.logger.Debug("artifact cache hit", "format", format)
		return data, nil
	}

	var data []byte
	var err error
	switch format {
	case FormatPNG:
		data, err = render.GraphvizPNG(dot)
	default:
		data, err = render.GraphvizSVG(dot)
	}
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, data, artifactTTL); err != nil {
		r.logger.Debug("artifact cache write failed", "format", format, "err", err)
	}
	return data, nil
}

func normalize(opts *Options) {
	if opts.View == "" {
		opts.View = ViewLayered
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []string{FormatSVG}
	}
	if opts.Unit == 0 {
		opts.Unit = render.DefaultUnit
	}
	if opts.LevelHeight == 0 {
		opts.LevelHeight = render.DefaultLevelHeight
	}
}

func validate(opts Options) error {
	if opts.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "no input document given")
	}
	if err := errors.ValidateView(opts.View); err != nil {
		return err
	}
	for _, f := range opts.Formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	return errors.ValidateGeometry(opts.Unit, opts.LevelHeight)
}
