package layout

import (
	"unicode/utf8"

	"github.com/mhofer/treelay/pkg/errors"
	"github.com/mhofer/treelay/pkg/tree"
)

// Embed arranges the nodes of t in the plane and returns one placement per
// node, indexed by traversal order. Label text and emphasis are derived from
// node values via the given options; see [WithText], [WithEmphasis],
// [WithSource], and [WithSourceFallback].
//
// The layout guarantees that siblings never overlap, that every parent is
// centered over the span occupied by its children, and that the output is
// identical across calls for the same tree and options.
//
// An empty tree yields an empty embedding. A tree with more than one
// top-level node fails with [errors.ErrCodeMultipleRoots] before any
// traversal begins. The algorithm runs in O(n) time and O(n) space.
func Embed[V any](t *tree.Tree[V], opts ...Option[V]) (Embedding, error) {
	if t.Len() == 0 {
		return Embedding{}, nil
	}
	if roots := t.Roots(); len(roots) > 1 {
		return nil, errors.New(errors.ErrCodeMultipleRoots,
			"tree has %d top-level nodes, only a single root is supported", len(roots))
	}

	cfg := newConfig(opts)

	// Stage A: one depth-first walk assigns ord, y_order, text, emphasis,
	// and parent on every record.
	ix := buildIndex(t, cfg)

	// Stage B: post-order sweep fills x_extent_of_children and
	// x_extent_children bottom-up.
	if err := applyChildExtents(t, ix); err != nil {
		return nil, err
	}

	// Stage C: layer-by-layer top-down sweep assigns x_center.
	if err := applyCenters(ix); err != nil {
		return nil, err
	}

	// Stage D: flatten the index into the public collection.
	return project(ix), nil
}

// buildIndex creates one record per node in depth-first order. Parents are
// visited before their descendants, so a child can always resolve its
// parent's ord through the identity map.
func buildIndex[V any](t *tree.Tree[V], cfg *config[V]) *index {
	ix := newIndex(t.Len())
	ord := 0
	t.Walk(func(depth int, id tree.NodeID) {
		text := cfg.textFor(t, id)
		r := record{
			ord:     ord,
			yOrder:  depth,
			xExtent: utf8.RuneCountInString(text) + 1,
			text:    text,
			parent:  NoParent,
			node:    id,
		}
		r.emphasized = cfg.emphasize(t.Value(id))
		if p, ok := t.Parent(id); ok {
			if pr, ok := ix.byNode(p); ok {
				r.parent = pr.ord
			}
		}
		ix.insert(ord, r)
		ord++
	})
	return ix
}

// applyChildExtents folds each node's direct children on the post-order
// leave event. Children leave before their parent, so their
// xExtentChildren values are final when the parent is folded.
func applyChildExtents[V any](t *tree.Tree[V], ix *index) error {
	var err error
	t.WalkEvents(func(ev tree.Event, id tree.NodeID) {
		if ev != tree.Leave || err != nil {
			return
		}
		sum := 0
		for _, child := range t.Children(id) {
			cr, ok := ix.byNode(child)
			if !ok {
				err = errors.New(errors.ErrCodeInternal, "no record for child node %d", child)
				return
			}
			sum += cr.xExtentChildren
		}
		r, ok := ix.byNode(id)
		if !ok {
			err = errors.New(errors.ErrCodeInternal, "no record for node %d", id)
			return
		}
		r.xExtentOfChildren = sum
		r.xExtentChildren = max(r.xExtent, sum)
	})
	return err
}

// applyCenters sweeps the layers from the root down. Each layer depends on
// the previous layer's centers, so the order is strict.
func applyCenters(ix *index) error {
	height := 0
	for i := range ix.recs {
		if ix.recs[i].yOrder > height {
			height = ix.recs[i].yOrder
		}
	}
	for l := 0; l <= height; l++ {
		if err := centerLayer(l, ix); err != nil {
			return err
		}
	}
	return nil
}

// centerLayer positions all records of one layer. Records are grouped by
// parent in sibling order; each group starts at the left edge of its
// parent's children block and each member is centered within the span it is
// allotted. Halves are integer-truncated, at the parent's block as well as
// at each member's own extent.
func centerLayer(layer int, ix *index) error {
	var inLayer []int
	for ord := range ix.recs {
		if ix.recs[ord].yOrder == layer {
			inLayer = append(inLayer, ord)
		}
	}

	seen := make(map[int]bool, len(inLayer))
	for _, ord := range inLayer {
		p := ix.recs[ord].parent
		if seen[p] {
			continue
		}
		seen[p] = true

		offset := 0
		if p != NoParent {
			pr, ok := ix.byOrd(p)
			if !ok {
				return errors.New(errors.ErrCodeInternal, "no record for parent ord %d", p)
			}
			// Left edge of the parent's children block, centered
			// under the parent.
			offset = pr.xCenter - pr.xExtentOfChildren/2
		}

		for _, member := range inLayer {
			r := &ix.recs[member]
			if r.parent != p {
				continue
			}
			r.xCenter = offset + r.xExtentChildren/2
			offset += r.xExtentChildren
		}
	}
	return nil
}

// project converts the fully computed index into the public embedding,
// preserving ord as array position.
func project(ix *index) Embedding {
	out := make(Embedding, 0, ix.len())
	for _, r := range ix.recs {
		out = append(out, Placement{
			Ord:             r.ord,
			YOrder:          r.yOrder,
			XCenter:         r.xCenter,
			XExtent:         r.xExtent,
			XExtentChildren: r.xExtentChildren,
			Text:            r.text,
			Emphasized:      r.emphasized,
			Parent:          r.parent,
		})
	}
	return out
}
