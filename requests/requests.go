package requests

// Empty - requests without parameters, e.g. getStats or reload
type Empty struct{}

// Index - address a list entry, e.g. deleteAnnouncement
type Index struct {
	Index int `json:"index"`
}

// Field - set a single field of a list entry
type Field struct {
	Index int    `json:"index"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// Timetable - replace the timetable pointer
type Timetable struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// AddResource - append a node to a folder, an empty parent means the root
type AddResource struct {
	ParentID string `json:"parentId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	URL      string `json:"url"`
}

// RenameResource - change the name of a node
type RenameResource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ResourceURL - change the url of a file node
type ResourceURL struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// RemoveResource - remove a node and its subtree
type RemoveResource struct {
	ID string `json:"id"`
}
