// Package obs defines the Observation tree: the full nested record of one
// exam's findings. An Observation is built field-by-field as the operator
// edits the form, projected into feature sets for classification, and
// walked by the section composer when a report is generated.
package obs

import (
	"strings"

	"github.com/google/uuid"
)

// Kind discriminates the value held by a Field.
type Kind string

const (
	KindScalar Kind = "scalar"
	KindNote   Kind = "note"
	KindList   Kind = "list"
	KindGroup  Kind = "group"
)

// Field is one named entry in a Node. Exactly one of Scalar, Note, Items or
// Group is meaningful, selected by Kind.
type Field struct {
	Key    string
	Kind   Kind
	Scalar string
	Note   string
	Items  []*Item
	Group  *Node
}

// Item is one sub-observation in a list field (a lesion, a vessel segment,
// a reflux event). The ID is assigned at creation and preserved across
// edits and serialization so repeated entities keep a stable identity.
type Item struct {
	ID   uuid.UUID
	Node *Node
}

// Node holds an ordered set of fields with unique keys.
type Node struct {
	fields []*Field
}

// Observation is the root of one exam's finding record.
type Observation struct {
	Domain string
	Root   *Node
}

// New creates an empty Observation for the given exam domain.
func New(domain string) *Observation {
	return &Observation{Domain: domain, Root: &Node{}}
}

func NewNode() *Node { return &Node{} }

// Fields returns the node's fields in insertion order.
func (n *Node) Fields() []*Field {
	if n == nil {
		return nil
	}
	return n.fields
}

// Get returns the field with the given key, or nil if absent. Safe on a
// nil node so callers can chain lookups without guarding every step.
func (n *Node) Get(key string) *Field {
	if n == nil {
		return nil
	}
	for _, f := range n.fields {
		if f.Key == key {
			return f
		}
	}
	return nil
}

func (n *Node) find(key string, kind Kind) *Field {
	f := n.Get(key)
	if f != nil && f.Kind == kind {
		return f
	}
	return nil
}

func (n *Node) upsert(key string, kind Kind) *Field {
	if f := n.Get(key); f != nil {
		// An existing field changes kind only by being rewritten wholesale.
		if f.Kind != kind {
			*f = Field{Key: key, Kind: kind}
		}
		return f
	}
	f := &Field{Key: key, Kind: kind}
	n.fields = append(n.fields, f)
	return f
}

// SetScalar stores a scalar value, creating the field if needed.
func (n *Node) SetScalar(key, value string) {
	n.upsert(key, KindScalar).Scalar = value
}

// SetNote stores a free-text note, creating the field if needed.
func (n *Node) SetNote(key, value string) {
	n.upsert(key, KindNote).Note = value
}

// Scalar returns the scalar value for key, or "" if the field is absent or
// not a scalar. Whitespace-only values read as absent.
func (n *Node) Scalar(key string) string {
	f := n.find(key, KindScalar)
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f.Scalar)
}

// Note returns the note text for key, or "" if absent.
func (n *Node) Note(key string) string {
	f := n.find(key, KindNote)
	if f == nil {
		return ""
	}
	return f.Note
}

// Group returns the nested node for key, creating it if needed.
func (n *Node) Group(key string) *Node {
	f := n.upsert(key, KindGroup)
	if f.Group == nil {
		f.Group = &Node{}
	}
	return f.Group
}

// GroupIfPresent returns the nested node for key, or nil. Unlike Group it
// never mutates the tree, so it is safe during rendering.
func (n *Node) GroupIfPresent(key string) *Node {
	f := n.find(key, KindGroup)
	if f == nil {
		return nil
	}
	return f.Group
}

// Items returns the sub-observations of a list field in stable creation
// order, or nil if the field is absent or not a list.
func (n *Node) Items(key string) []*Item {
	f := n.find(key, KindList)
	if f == nil {
		return nil
	}
	return f.Items
}

// AddItem appends a new sub-observation to the list field, creating the
// field if needed, and returns it with a freshly assigned ID.
func (n *Node) AddItem(key string) *Item {
	f := n.upsert(key, KindList)
	item := &Item{ID: uuid.New(), Node: &Node{}}
	f.Items = append(f.Items, item)
	return item
}

// Item returns the sub-observation with the given ID, or nil.
func (n *Node) Item(key string, id uuid.UUID) *Item {
	for _, it := range n.Items(key) {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// RemoveItem deletes the sub-observation with the given ID. Removing an
// unknown ID is a no-op.
func (n *Node) RemoveItem(key string, id uuid.UUID) {
	f := n.find(key, KindList)
	if f == nil {
		return
	}
	for i, it := range f.Items {
		if it.ID == id {
			f.Items = append(f.Items[:i], f.Items[i+1:]...)
			return
		}
	}
}

// Path resolves a dot-separated path of group keys ending in a field key
// and returns the owning node plus the final key segment. Intermediate
// groups are created on demand when create is true; otherwise a missing
// segment yields a nil node.
func (n *Node) Path(path string, create bool) (*Node, string) {
	segs := strings.Split(path, ".")
	cur := n
	for _, seg := range segs[:len(segs)-1] {
		if cur == nil {
			return nil, ""
		}
		if create {
			cur = cur.Group(seg)
		} else {
			cur = cur.GroupIfPresent(seg)
		}
	}
	return cur, segs[len(segs)-1]
}

// ScalarAt reads a scalar through a dot-separated path without mutating
// the tree.
func (n *Node) ScalarAt(path string) string {
	node, key := n.Path(path, false)
	if node == nil {
		return ""
	}
	return node.Scalar(key)
}

// SetScalarAt writes a scalar through a dot-separated path, creating
// intermediate groups.
func (n *Node) SetScalarAt(path, value string) {
	node, key := n.Path(path, true)
	node.SetScalar(key, value)
}

// Features projects the listed keys of a node into a flat feature set for
// classification. Absent fields are simply omitted.
func Features(n *Node, keys []string) map[string]string {
	fs := make(map[string]string, len(keys))
	for _, k := range keys {
		if v := n.Scalar(k); v != "" {
			fs[k] = v
		}
	}
	return fs
}
