package content

import (
	"strings"

	"github.com/google/uuid"
)

// IDPrefix prefix of every generated node id
const IDPrefix = "r_"

// IDFunc returns a new process unique identifier
type IDFunc func() string

// NewID combines a time component and a random component, see uuid v7
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return IDPrefix + strings.ReplaceAll(id.String(), "-", "")
}
