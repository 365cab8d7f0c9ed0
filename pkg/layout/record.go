package layout

// NoParent is the Parent value of the root placement.
const NoParent = -1

// Placement is the computed position of a single tree node in the logical
// layout plane. Coordinates are in logical units: one unit per character of
// label text horizontally, one unit per tree level vertically. Renderers
// scale these into pixels.
type Placement struct {
	// Ord is the node's position in the depth-first traversal of the tree.
	// Ords are dense and zero-based, and a parent's Ord is always smaller
	// than the Ords of its descendants.
	Ord int `json:"ord"`

	// YOrder is the node's level; the root has YOrder 0.
	YOrder int `json:"y_order"`

	// XCenter is the logical x coordinate of the node's center.
	XCenter int `json:"x_center"`

	// XExtent is the width of the node's own label in logical units:
	// the label's character count plus one unit of padding.
	XExtent int `json:"x_extent"`

	// XExtentChildren is the horizontal space the node occupies: the
	// maximum of its own XExtent and the summed XExtentChildren of its
	// direct children.
	XExtentChildren int `json:"x_extent_children"`

	// Text is the node's label, produced by the configured text strategy.
	Text string `json:"text"`

	// Emphasized marks nodes a renderer should visually distinguish.
	Emphasized bool `json:"emphasized,omitempty"`

	// Parent is the Ord of the parent placement, or NoParent for the root.
	Parent int `json:"parent"`
}

// Embedding is the ordered collection of placements produced by [Embed],
// indexed by Ord. It is the sole input renderers consume.
type Embedding []Placement

// Width returns the total horizontal space of the embedding in logical
// units. For a non-empty embedding this is the root's XExtentChildren.
func (e Embedding) Width() int {
	w := 0
	for _, p := range e {
		if right := p.XCenter + (p.XExtentChildren+1)/2; right > w {
			w = right
		}
	}
	return w
}

// Height returns the number of levels in the embedding.
func (e Embedding) Height() int {
	h := 0
	for _, p := range e {
		if p.YOrder+1 > h {
			h = p.YOrder + 1
		}
	}
	return h
}
