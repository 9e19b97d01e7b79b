// contains data structures that describe the editable site content collections
package content

const (
	// Indent for json indentation of exported documents
	Indent string = "  "
	// RootName name of the resource tree root
	RootName = "Resources"
)
