package obs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SnapshotMetadata describes a saved Observation.
type SnapshotMetadata struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Domain    string    `json:"domain"`
	Version   int       `json:"version"`
}

// Snapshot is the serializable form of an Observation: a metadata block
// plus a payload keyed by exam domain. The payload holds exactly one key;
// keying it by domain lets a loader reject a snapshot saved for a
// different exam type before touching any session state.
type Snapshot struct {
	Metadata SnapshotMetadata           `json:"metadata"`
	Payload  map[string]json.RawMessage `json:"payload"`
}

// fieldJSON is the wire form of a Field. Nodes serialize as arrays of
// these so field order survives the round trip (JSON objects would not
// preserve it).
type fieldJSON struct {
	Key    string      `json:"key"`
	Kind   Kind        `json:"kind"`
	Scalar string      `json:"value,omitempty"`
	Note   string      `json:"note,omitempty"`
	Items  []itemJSON  `json:"items,omitempty"`
	Group  []fieldJSON `json:"fields,omitempty"`
}

type itemJSON struct {
	ID     uuid.UUID   `json:"id"`
	Fields []fieldJSON `json:"fields"`
}

func encodeNode(n *Node) []fieldJSON {
	if n == nil {
		return nil
	}
	out := make([]fieldJSON, 0, len(n.fields))
	for _, f := range n.fields {
		fj := fieldJSON{Key: f.Key, Kind: f.Kind, Scalar: f.Scalar, Note: f.Note}
		switch f.Kind {
		case KindList:
			fj.Items = make([]itemJSON, 0, len(f.Items))
			for _, it := range f.Items {
				fj.Items = append(fj.Items, itemJSON{ID: it.ID, Fields: encodeNode(it.Node)})
			}
		case KindGroup:
			fj.Group = encodeNode(f.Group)
		}
		out = append(out, fj)
	}
	return out
}

func decodeNode(fields []fieldJSON) (*Node, error) {
	n := &Node{}
	seen := make(map[string]bool, len(fields))
	for _, fj := range fields {
		if fj.Key == "" {
			return nil, fmt.Errorf("field with empty key")
		}
		if seen[fj.Key] {
			return nil, fmt.Errorf("duplicate field key %q", fj.Key)
		}
		seen[fj.Key] = true

		f := &Field{Key: fj.Key, Kind: fj.Kind, Scalar: fj.Scalar, Note: fj.Note}
		switch fj.Kind {
		case KindScalar, KindNote:
		case KindList:
			for _, ij := range fj.Items {
				node, err := decodeNode(ij.Fields)
				if err != nil {
					return nil, fmt.Errorf("item %s: %w", ij.ID, err)
				}
				id := ij.ID
				if id == uuid.Nil {
					id = uuid.New()
				}
				f.Items = append(f.Items, &Item{ID: id, Node: node})
			}
		case KindGroup:
			node, err := decodeNode(fj.Group)
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", fj.Key, err)
			}
			f.Group = node
		default:
			return nil, fmt.Errorf("field %q: unknown kind %q", fj.Key, fj.Kind)
		}
		n.fields = append(n.fields, f)
	}
	return n, nil
}

// Export serializes the Observation into a named Snapshot.
func (o *Observation) Export(name string, version int, now time.Time) (*Snapshot, error) {
	raw, err := json.Marshal(encodeNode(o.Root))
	if err != nil {
		return nil, fmt.Errorf("encode observation payload: %w", err)
	}
	return &Snapshot{
		Metadata: SnapshotMetadata{
			Name:      name,
			CreatedAt: now.UTC(),
			Domain:    o.Domain,
			Version:   version,
		},
		Payload: map[string]json.RawMessage{o.Domain: raw},
	}, nil
}

// Load rebuilds an Observation from a Snapshot for the given exam domain.
// The whole payload loads or none of it does: a snapshot missing its
// domain key, or holding a malformed tree, is rejected without producing
// a half-populated Observation.
func Load(s *Snapshot, domain string) (*Observation, error) {
	if s == nil {
		return nil, fmt.Errorf("nil snapshot")
	}
	raw, ok := s.Payload[domain]
	if !ok {
		return nil, fmt.Errorf("snapshot %q has no payload for domain %q", s.Metadata.Name, domain)
	}
	var fields []fieldJSON
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode %q payload: %w", domain, err)
	}
	root, err := decodeNode(fields)
	if err != nil {
		return nil, fmt.Errorf("decode %q payload: %w", domain, err)
	}
	return &Observation{Domain: domain, Root: root}, nil
}
