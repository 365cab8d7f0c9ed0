package layout

import (
	"fmt"

	"github.com/mhofer/treelay/pkg/tree"
)

// TextFunc produces the label text for a node value.
type TextFunc[V any] func(v V) string

// EmphasisFunc reports whether a node value should be visually emphasized.
type EmphasisFunc[V any] func(v V) bool

// Option configures how [Embed] derives label text and emphasis from node
// values. Options resolve at call time; no strategy is baked into the
// embedder itself.
type Option[V any] func(*config[V])

type sourceMode int

const (
	sourceNone sourceMode = iota // text strategy for every node
	sourceAll                    // source slice for every node with a span
	sourceLeaves                 // source slice for leaves, text strategy for interior nodes
)

type config[V any] struct {
	text      TextFunc[V]
	emphasize EmphasisFunc[V]
	source    string
	mode      sourceMode
}

// WithText sets a custom text strategy. Without it, values implementing
// [fmt.Stringer] are rendered via String, everything else via the fmt
// default format.
func WithText[V any](fn TextFunc[V]) Option[V] {
	return func(c *config[V]) { c.text = fn }
}

// WithEmphasis sets the emphasis strategy. The default emphasizes nothing.
func WithEmphasis[V any](fn EmphasisFunc[V]) Option[V] {
	return func(c *config[V]) { c.emphasize = fn }
}

// WithSource labels nodes with the slice of src covered by their span.
// Nodes without a recorded span fall back to the text strategy.
func WithSource[V any](src string) Option[V] {
	return func(c *config[V]) {
		c.source = src
		c.mode = sourceAll
	}
}

// WithSourceFallback labels leaf nodes with their source slice and interior
// nodes with the text strategy. This suits syntax trees where tokens carry
// spans and interior nodes carry rule names.
func WithSourceFallback[V any](src string) Option[V] {
	return func(c *config[V]) {
		c.source = src
		c.mode = sourceLeaves
	}
}

func newConfig[V any](opts []Option[V]) *config[V] {
	c := &config[V]{
		text:      defaultText[V],
		emphasize: func(V) bool { return false },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultText[V any](v V) string {
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

// textFor resolves the label for one node according to the configured
// strategy and source mode.
func (c *config[V]) textFor(t *tree.Tree[V], id tree.NodeID) string {
	switch c.mode {
	case sourceAll:
		if s, ok := c.slice(t, id); ok {
			return s
		}
	case sourceLeaves:
		if !t.HasChildren(id) {
			if s, ok := c.slice(t, id); ok {
				return s
			}
		}
	}
	return c.text(t.Value(id))
}

func (c *config[V]) slice(t *tree.Tree[V], id tree.NodeID) (string, bool) {
	span, ok := t.Span(id)
	if !ok || span.Start < 0 || span.End > len(c.source) || span.Start > span.End {
		return "", false
	}
	return c.source[span.Start:span.End], true
}
