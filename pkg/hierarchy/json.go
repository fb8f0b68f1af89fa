package hierarchy

import "encoding/json"

// nodeJSON is the wire shape of one tree node.
type nodeJSON struct {
	ID       int64   `json:"id"`
	GlobalID string  `json:"guid,omitempty"`
	Class    string  `json:"class"`
	Name     string  `json:"name,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// MarshalJSON renders the node as {id, guid, class, name, children}.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{
		ID:       n.Entity.ID(),
		GlobalID: n.Entity.GlobalID(),
		Class:    n.Entity.Class(),
		Name:     n.Entity.Name(),
		Children: n.Children,
	})
}

// MarshalJSON renders the tree as the array of its roots.
func (t *Tree) MarshalJSON() ([]byte, error) {
	if t.Roots == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.Roots)
}
