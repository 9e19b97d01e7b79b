package responses

import (
	"github.com/foomo/contentadmin/content"
)

// Load - information about a session load
type Load struct {
	// did the load get applied to the store
	Success bool `json:"success"`
	// collections that fell back to their default, for diagnostics
	Fallbacks map[content.Collection]string `json:"fallbacks,omitempty"`
	// how the resources document was read
	ResourcesFormat content.ResourcesFormat `json:"resourcesFormat,omitempty"`
	Stats           content.Stats           `json:"stats"`
	// seconds
	Runtime float64 `json:"runtime"`
	// this is for humans
	Notification *content.Notification `json:"notification,omitempty"`
}

// Reply - envelope of every admin api response
type Reply struct {
	Reply        interface{}           `json:"reply"`
	Notification *content.Notification `json:"notification,omitempty"`
}
