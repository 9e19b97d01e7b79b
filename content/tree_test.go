package content

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence() IDFunc {
	i := 0
	return func() string {
		i++
		return fmt.Sprintf("id-%d", i)
	}
}

const testTree = `{
  "name": "Resources",
  "type": "folder",
  "children": [
    {"name": "Notes", "type": "folder", "children": [
      {"name": "Week 1", "type": "file", "url": "https://example.com/w1.pdf"},
      {"name": "Week 2", "type": "file", "url": "https://example.com/w2.pdf"}
    ]},
    {"name": "Empty", "type": "folder", "children": []},
    {"name": "Syllabus", "type": "file", "url": "https://example.com/syllabus.pdf"}
  ]
}`

func decodeTestTree(t *testing.T) *TreeNode {
	t.Helper()
	root := &TreeNode{}
	require.NoError(t, json.Unmarshal([]byte(testTree), root))
	return root
}

func TestNormalizeAssignsIDs(t *testing.T) {
	root := Normalize(decodeTestTree(t), NewID)

	var nodes int
	Walk(root, func(n *TreeNode) {
		nodes++
		assert.NotEmpty(t, n.ID, "node %q has no id", n.Name)
		assert.True(t, strings.HasPrefix(n.ID, IDPrefix))
		if n.IsFolder() {
			assert.NotNil(t, n.Children, "folder %q has nil children", n.Name)
		}
	})
	assert.Equal(t, 6, nodes)
}

func TestNormalizeKeepsExistingIDs(t *testing.T) {
	root := &TreeNode{ID: "keep", Name: "Resources", Type: NodeTypeFolder, Children: []*TreeNode{
		{Name: "a", Type: NodeTypeFile},
	}}
	Normalize(root, sequence())
	assert.Equal(t, "keep", root.ID)
	assert.Equal(t, "id-1", root.Children[0].ID)
}

func TestNormalizeReturnsSameNode(t *testing.T) {
	root := decodeTestTree(t)
	assert.Same(t, root, Normalize(root, NewID))
	assert.Nil(t, Normalize(nil, NewID))
}

func TestNormalizeLeavesMalformedChildren(t *testing.T) {
	root := &TreeNode{}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","type":"folder","children":"oops"}`), root))
	Normalize(root, sequence())

	assert.Equal(t, "id-1", root.ID)
	assert.True(t, root.MalformedChildren())
	assert.False(t, root.HasChildren())

	out, err := json.Marshal(root)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"id-1","name":"x","type":"folder","children":"oops"}`, string(out))
}

func TestNormalizeDoesNotDescendIntoFiles(t *testing.T) {
	root := &TreeNode{Name: "f", Type: NodeTypeFile, Children: []*TreeNode{{Name: "inner", Type: NodeTypeFile}}}
	Normalize(root, sequence())
	assert.Equal(t, "id-1", root.ID)
	assert.Empty(t, root.Children[0].ID)
}

func TestCount(t *testing.T) {
	root := Normalize(decodeTestTree(t), NewID)
	assert.Equal(t, 3, Count(root))
	assert.Equal(t, 0, Count(nil))
	assert.Equal(t, 0, Count(NewRoot(NewID)))
	assert.Equal(t, 1, Count(NewFile("a", "u", NewID)))
}

func TestCountFollowsChildrenNotType(t *testing.T) {
	untyped := &TreeNode{Name: "untyped", Children: []*TreeNode{
		{Name: "a", Type: NodeTypeFile},
		{Name: "b", Type: NodeTypeFile},
	}}
	assert.Equal(t, 2, Count(untyped))

	fileWithChildren := &TreeNode{Name: "f", Type: NodeTypeFile, Children: []*TreeNode{{Name: "g", Type: NodeTypeFile}}}
	assert.Equal(t, 2, Count(fileWithChildren))

	assert.Equal(t, 0, Count(&TreeNode{Name: "nothing"}))
}

func TestCleanStripsIDs(t *testing.T) {
	root := Normalize(decodeTestTree(t), NewID)
	before, err := json.Marshal(root)
	require.NoError(t, err)

	clean := Clean(root)
	out, err := json.Marshal(clean)
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"id"`)
	Walk(clean, func(n *TreeNode) {
		assert.Empty(t, n.ID)
	})

	after, err := json.Marshal(root)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "live tree must not change")
	assert.Equal(t, Count(root), Count(clean))
}

func TestCleanRoundTrip(t *testing.T) {
	root := Normalize(decodeTestTree(t), NewID)
	exported, err := Encode(Clean(root))
	require.NoError(t, err)

	reimported := &TreeNode{}
	require.NoError(t, json.Unmarshal(exported, reimported))
	Normalize(reimported, NewID)

	assert.Equal(t, shape(root), shape(reimported))
	assert.NotEqual(t, root.ID, reimported.ID)
}

func TestEmptyFolderExportsEmptyChildren(t *testing.T) {
	out, err := json.Marshal(Clean(NewRoot(NewID)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Resources","type":"folder","children":[]}`, string(out))
}

func TestFileExportsURL(t *testing.T) {
	out, err := json.Marshal(Clean(NewFile("a", "", NewID)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a","type":"file","url":""}`, string(out))
}

func TestNullChildrenRoundTrip(t *testing.T) {
	node := &TreeNode{}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","type":"folder","children":null}`), node))
	assert.True(t, node.MalformedChildren())
	assert.False(t, node.HasChildren())
	assert.Equal(t, 0, Count(node))

	out, err := json.Marshal(Clean(Normalize(node, NewID)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","type":"folder","children":null}`, string(out))

	missing := &TreeNode{}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","type":"folder"}`), missing))
	assert.False(t, missing.MalformedChildren())
	out, err = json.Marshal(missing)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","type":"folder"}`, string(out))
}

func TestEncodeKeepsHTMLCharacters(t *testing.T) {
	out, err := Encode(Clean(NewFile("Q&A <draft>", "https://example.com/?a=1&b=2", NewID)))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"url": "https://example.com/?a=1&b=2"`)
	assert.Contains(t, string(out), `"name": "Q&A <draft>"`)
}

func TestFind(t *testing.T) {
	root := Normalize(decodeTestTree(t), sequence())

	node := Find(root, "id-4")
	require.NotNil(t, node)
	assert.Equal(t, "Week 2", node.Name)
	assert.Nil(t, Find(root, "nope"))
	assert.Nil(t, Find(root, ""))

	parent, index := FindParent(root, "id-4")
	require.NotNil(t, parent)
	assert.Equal(t, "Notes", parent.Name)
	assert.Equal(t, 1, index)

	parent, index = FindParent(root, root.ID)
	assert.Nil(t, parent)
	assert.Equal(t, -1, index)
}

func TestCopyKeepsIDs(t *testing.T) {
	root := Normalize(decodeTestTree(t), NewID)
	c := Copy(root)
	assert.Equal(t, root.ID, c.ID)
	c.Children[0].Name = "changed"
	assert.Equal(t, "Notes", root.Children[0].Name)
}

func TestNewIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 10000; i++ {
		id := NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

// shape renders names, types, urls and child order
func shape(n *TreeNode) string {
	if n == nil {
		return "nil"
	}
	var b strings.Builder
	b.WriteString(n.Name + "|" + string(n.Type) + "|" + n.URL)
	if n.Children != nil {
		b.WriteString("[")
		for _, child := range n.Children {
			b.WriteString(shape(child) + ",")
		}
		b.WriteString("]")
	}
	return b.String()
}
