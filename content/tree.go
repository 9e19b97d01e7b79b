package content

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

// json behaves like the standard library but leaves &, < and > unescaped in exported documents
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// NodeType variant tag of a tree node
type NodeType string

const (
	// NodeTypeFolder a node that holds children
	NodeTypeFolder NodeType = "folder"
	// NodeTypeFile a leaf node pointing to a resource url
	NodeTypeFile NodeType = "file"
)

// TreeNode node in the resource tree
type TreeNode struct {
	// ID runtime only identifier, never exported
	ID   string
	Name string
	Type NodeType
	// URL target of a file node
	URL string
	// Children ordered child nodes, nil when the node came without children
	Children []*TreeNode
	// rawChildren holds a children value that was not an array
	rawChildren jsoniter.RawMessage
}

type treeNodeJSON struct {
	ID       string              `json:"id,omitempty"`
	Name     string              `json:"name"`
	Type     NodeType            `json:"type,omitempty"`
	URL      *string             `json:"url,omitempty"`
	Children jsoniter.RawMessage `json:"children,omitempty"`
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

// NewFolder returns an empty folder with a fresh id
func NewFolder(name string, newID IDFunc) *TreeNode {
	return &TreeNode{
		ID:       newID(),
		Name:     name,
		Type:     NodeTypeFolder,
		Children: []*TreeNode{},
	}
}

// NewFile returns a file node with a fresh id
func NewFile(name, url string, newID IDFunc) *TreeNode {
	return &TreeNode{
		ID:   newID(),
		Name: name,
		Type: NodeTypeFile,
		URL:  url,
	}
}

// NewRoot returns the empty default tree
func NewRoot(newID IDFunc) *TreeNode {
	return NewFolder(RootName, newID)
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (n *TreeNode) IsFolder() bool {
	return n.Type == NodeTypeFolder
}

func (n *TreeNode) IsFile() bool {
	return n.Type == NodeTypeFile
}

// HasChildren reports whether children were given as an array, an empty one included
func (n *TreeNode) HasChildren() bool {
	return n.Children != nil && n.rawChildren == nil
}

// MalformedChildren reports whether children were present but not an array
func (n *TreeNode) MalformedChildren() bool {
	return n.rawChildren != nil
}

func (n *TreeNode) MarshalJSON() ([]byte, error) {
	v := treeNodeJSON{
		ID:   n.ID,
		Name: n.Name,
		Type: n.Type,
	}
	if n.IsFile() || n.URL != "" {
		url := n.URL
		v.URL = &url
	}
	switch {
	case n.rawChildren != nil:
		v.Children = n.rawChildren
	case n.Children != nil:
		children, err := json.Marshal(n.Children)
		if err != nil {
			return nil, err
		}
		v.Children = children
	}
	return json.Marshal(v)
}

func (n *TreeNode) UnmarshalJSON(data []byte) error {
	var v treeNodeJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = TreeNode{
		ID:   v.ID,
		Name: v.Name,
		Type: v.Type,
	}
	if v.URL != nil {
		n.URL = *v.URL
	}
	raw := bytes.TrimSpace(v.Children)
	switch {
	case len(raw) == 0:
		// null decodes to an empty raw message, keep it apart from a missing key
		var fields map[string]jsoniter.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		if _, ok := fields["children"]; ok {
			n.rawChildren = jsoniter.RawMessage("null")
		}
	case raw[0] == '[':
		children := make([]*TreeNode, 0)
		if err := json.Unmarshal(raw, &children); err != nil {
			return err
		}
		n.Children = children
	default:
		n.rawChildren = append(jsoniter.RawMessage{}, raw...)
	}
	return nil
}

// ------------------------------------------------------------------------------------------------
// ~ Tree walks
// ------------------------------------------------------------------------------------------------

// Normalize assigns missing ids in place and returns the given node.
// Only folders with array children are descended into, anything else keeps its children as is.
func Normalize(node *TreeNode, newID IDFunc) *TreeNode {
	if node == nil {
		return nil
	}
	if node.ID == "" {
		node.ID = newID()
	}
	switch node.Type {
	case NodeTypeFolder:
		if node.HasChildren() {
			for i, child := range node.Children {
				node.Children[i] = Normalize(child, newID)
			}
		}
	case NodeTypeFile:
	default:
	}
	return node
}

// Count returns the number of file nodes in the given tree.
// Descending is driven by the presence of children, not by the node type.
func Count(node *TreeNode) int {
	if node == nil {
		return 0
	}
	count := 0
	if node.IsFile() {
		count = 1
	}
	if node.HasChildren() {
		for _, child := range node.Children {
			count += Count(child)
		}
	}
	return count
}

// Clean returns a deep copy without any ids, the given tree is not touched
func Clean(node *TreeNode) *TreeNode {
	return clone(node, false)
}

// Copy returns a deep copy including ids
func Copy(node *TreeNode) *TreeNode {
	return clone(node, true)
}

// Walk calls fn for every node in pre-order
func Walk(node *TreeNode, fn func(n *TreeNode)) {
	if node == nil {
		return
	}
	fn(node)
	for _, child := range node.Children {
		Walk(child, fn)
	}
}

// Find returns the first node with the given id in pre-order
func Find(node *TreeNode, id string) *TreeNode {
	if node == nil || id == "" {
		return nil
	}
	if node.ID == id {
		return node
	}
	for _, child := range node.Children {
		if found := Find(child, id); found != nil {
			return found
		}
	}
	return nil
}

// FindParent returns the parent of the node with the given id and the node's index
func FindParent(node *TreeNode, id string) (*TreeNode, int) {
	if node == nil || id == "" {
		return nil, -1
	}
	for i, child := range node.Children {
		if child != nil && child.ID == id {
			return node, i
		}
		if parent, index := FindParent(child, id); parent != nil {
			return parent, index
		}
	}
	return nil, -1
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func clone(node *TreeNode, keepID bool) *TreeNode {
	if node == nil {
		return nil
	}
	c := &TreeNode{
		Name: node.Name,
		Type: node.Type,
		URL:  node.URL,
	}
	if keepID {
		c.ID = node.ID
	}
	if node.rawChildren != nil {
		c.rawChildren = append(jsoniter.RawMessage{}, node.rawChildren...)
	}
	if node.Children != nil {
		c.Children = make([]*TreeNode, len(node.Children))
		for i, child := range node.Children {
			c.Children[i] = clone(child, keepID)
		}
	}
	return c
}

// hasNilNode reports whether any children slot in the tree is empty
func hasNilNode(node *TreeNode) bool {
	for _, child := range node.Children {
		if child == nil || hasNilNode(child) {
			return true
		}
	}
	return false
}
