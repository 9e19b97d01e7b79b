package content

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

// LegacyEntry entry of a legacy category list
type LegacyEntry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Legacy flat categorical resources format, keyed by category key.
// A key that is present with an empty list differs from a missing key.
type Legacy map[string][]LegacyEntry

// LegacyCategory maps a legacy key to the folder it becomes
type LegacyCategory struct {
	Key   string
	Label string
}

// LegacyCategories in the order their folders are created
var LegacyCategories = []LegacyCategory{
	{Key: "notes", Label: "Notes"},
	{Key: "slides", Label: "Slides"},
	{Key: "recordings", Label: "Recordings"},
	{Key: "external_links", Label: "External Links"},
}

func (l *Legacy) UnmarshalJSON(data []byte) error {
	var raw map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	legacy := Legacy{}
	for _, category := range LegacyCategories {
		value, ok := raw[category.Key]
		if !ok {
			continue
		}
		entries := []LegacyEntry{}
		if value = bytes.TrimSpace(value); len(value) == 0 || string(value) == "null" {
			// a null list still gets its folder
			legacy[category.Key] = entries
			continue
		}
		if err := json.Unmarshal(value, &entries); err != nil {
			return err
		}
		if entries == nil {
			entries = []LegacyEntry{}
		}
		legacy[category.Key] = entries
	}
	*l = legacy
	return nil
}

// Migrate converts the legacy format into a tree below a fresh root.
// Only categories present in the given legacy data get a folder, an empty legacy yields an empty root.
func Migrate(legacy Legacy, newID IDFunc) *TreeNode {
	root := NewRoot(newID)
	if len(legacy) == 0 {
		return root
	}
	for _, category := range LegacyCategories {
		entries, ok := legacy[category.Key]
		if !ok {
			continue
		}
		folder := NewFolder(category.Label, newID)
		for _, entry := range entries {
			folder.Children = append(folder.Children, NewFile(entry.Title, entry.URL, newID))
		}
		root.Children = append(root.Children, folder)
	}
	return root
}
