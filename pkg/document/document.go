package document

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mhofer/treelay/pkg/errors"
	"github.com/mhofer/treelay/pkg/tree"
)

// Node is the value type stored in trees loaded from documents.
type Node struct {
	ID        string // unique identifier within the document
	Label     string // display label (defaults to ID)
	Emphasize bool   // render with emphasis
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// String implements fmt.Stringer so documents work with the embedder's
// default text strategy.
func (n Node) String() string { return n.DisplayLabel() }

// Document is a tree description loaded from a TOML file.
type Document struct {
	// Source is the optional source string node spans refer to.
	Source string
	// Tree holds the document's nodes in file order.
	Tree *tree.Tree[Node]
}

// fileDoc mirrors the TOML file structure.
type fileDoc struct {
	Source string     `toml:"source"`
	Nodes  []fileNode `toml:"node"`
}

type fileNode struct {
	ID        string `toml:"id"`
	Label     string `toml:"label"`
	Parent    string `toml:"parent"`
	Emphasize bool   `toml:"emphasize"`
	Span      []int  `toml:"span"`
}

// Load reads and parses a tree document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes a TOML tree document. Each [[node]] entry needs a unique id;
// parent references must point at a node defined earlier in the file, which
// keeps documents acyclic by construction. The order of entries fixes
// sibling order. A span may only appear on leaf nodes and indexes into the
// top-level source string.
func Parse(data []byte) (*Document, error) {
	var f fileDoc
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode tree document")
	}

	if err := validate(&f); err != nil {
		return nil, err
	}

	t, err := build(&f)
	if err != nil {
		return nil, err
	}
	return &Document{Source: f.Source, Tree: t}, nil
}

func validate(f *fileDoc) error {
	seen := make(map[string]bool, len(f.Nodes))
	for _, n := range f.Nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return err
		}
		if seen[n.ID] {
			return errors.New(errors.ErrCodeInvalidDocument, "duplicate node id %q", n.ID)
		}
		if n.Parent != "" && !seen[n.Parent] {
			return errors.New(errors.ErrCodeInvalidDocument,
				"node %q references parent %q, which is not defined earlier in the document", n.ID, n.Parent)
		}
		if len(n.Span) != 0 && len(n.Span) != 2 {
			return errors.New(errors.ErrCodeInvalidDocument,
				"node %q: span must be [start, end], got %d values", n.ID, len(n.Span))
		}
		if len(n.Span) == 2 {
			if n.Span[0] < 0 || n.Span[1] < n.Span[0] || n.Span[1] > len(f.Source) {
				return errors.New(errors.ErrCodeInvalidDocument,
					"node %q: span [%d, %d] out of range for source of length %d",
					n.ID, n.Span[0], n.Span[1], len(f.Source))
			}
		}
		seen[n.ID] = true
	}
	return nil
}

func build(f *fileDoc) (*tree.Tree[Node], error) {
	children := make(map[string][]fileNode)
	var roots []fileNode
	hasKids := make(map[string]bool)
	for _, n := range f.Nodes {
		if n.Parent == "" {
			roots = append(roots, n)
		} else {
			children[n.Parent] = append(children[n.Parent], n)
			hasKids[n.Parent] = true
		}
	}

	b := tree.NewBuilder[Node]()
	var add func(n fileNode) error
	add = func(n fileNode) error {
		value := Node{ID: n.ID, Label: n.Label, Emphasize: n.Emphasize}
		if !hasKids[n.ID] {
			if len(n.Span) == 2 {
				b.Token(value, n.Span[0], n.Span[1])
			} else {
				b.Open(value)
				if err := b.Close(); err != nil {
					return err
				}
			}
			return nil
		}
		if len(n.Span) == 2 {
			return errors.New(errors.ErrCodeInvalidDocument,
				"node %q: span is only allowed on leaf nodes", n.ID)
		}
		b.Open(value)
		for _, kid := range children[n.ID] {
			if err := add(kid); err != nil {
				return err
			}
		}
		return b.Close()
	}

	for _, r := range roots {
		if err := add(r); err != nil {
			return err
		}
	}

	t, err := b.Build()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build tree from document")
	}
	return t, nil
}
