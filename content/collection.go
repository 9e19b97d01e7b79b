package content

import (
	"github.com/pkg/errors"
)

// Collection name of an editable content collection
type Collection string

const (
	CollectionAnnouncements Collection = "announcements"
	CollectionEvents        Collection = "events"
	CollectionResources     Collection = "resources"
	CollectionTimetable     Collection = "timetable"
)

// ErrUnknownCollection there is no such collection
var ErrUnknownCollection = errors.New("unknown collection")

// Collections all collections in load order
var Collections = []Collection{
	CollectionAnnouncements,
	CollectionEvents,
	CollectionResources,
	CollectionTimetable,
}

// ParseCollection validates a collection name
func ParseCollection(name string) (Collection, error) {
	for _, c := range Collections {
		if string(c) == name {
			return c, nil
		}
	}
	return "", errors.Wrap(ErrUnknownCollection, name)
}

// Filename of the exported document
func (c Collection) Filename() string {
	return string(c) + ".json"
}
