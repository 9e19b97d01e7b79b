package content

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// ErrMalformedTree the document is neither a unified tree nor a legacy mapping
var ErrMalformedTree = errors.New("malformed resource tree")

// ResourcesFormat tells which way a resources document was decoded
type ResourcesFormat string

const (
	ResourcesFormatUnified ResourcesFormat = "unified"
	ResourcesFormatLegacy  ResourcesFormat = "legacy"
)

// DecodeResources turns a resources document into a normalized tree.
// Objects with type folder and array children are unified trees, every other object is migrated.
func DecodeResources(data []byte, newID IDFunc) (*TreeNode, ResourcesFormat, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return Migrate(nil, newID), ResourcesFormatLegacy, nil
	}
	if len(data) == 0 || data[0] != '{' {
		return nil, "", errors.Wrap(ErrMalformedTree, "document is not an object")
	}

	var probe map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, "", errors.Wrap(ErrMalformedTree, err.Error())
	}

	if isUnified(probe) {
		root := &TreeNode{}
		if err := json.Unmarshal(data, root); err != nil {
			return nil, "", errors.Wrap(ErrMalformedTree, err.Error())
		}
		if hasNilNode(root) {
			return nil, "", errors.Wrap(ErrMalformedTree, "tree contains null nodes")
		}
		return Normalize(root, newID), ResourcesFormatUnified, nil
	}

	var legacy Legacy
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, "", errors.Wrap(ErrMalformedTree, err.Error())
	}
	return Migrate(legacy, newID), ResourcesFormatLegacy, nil
}

func isUnified(probe map[string]jsoniter.RawMessage) bool {
	var nodeType string
	if err := json.Unmarshal(probe["type"], &nodeType); err != nil || NodeType(nodeType) != NodeTypeFolder {
		return false
	}
	children := bytes.TrimSpace(probe["children"])
	return len(children) > 0 && children[0] == '['
}
