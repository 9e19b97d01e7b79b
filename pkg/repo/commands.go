package repo

import (
	"context"
	"slices"

	"github.com/foomo/contentadmin/content"
	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrNodeNotFound     = errors.New("node not found")
	ErrNotAFolder       = errors.New("node is not a folder")
	ErrNotAFile         = errors.New("node is not a file")
	ErrRootRemoval      = errors.New("the root node can not be removed")
	ErrUnknownNodeType  = errors.New("unknown node type")
	ErrInvalidTimetable = errors.New("invalid timetable")
)

// ------------------------------------------------------------------------------------------------
// ~ Queries
// ------------------------------------------------------------------------------------------------

// Stats returns the dashboard numbers
func (r *Repo) Stats(ctx context.Context) (stats content.Stats, err error) {
	err = r.do(ctx, func(s *state) error {
		stats = r.stats(s)
		return nil
	})
	return stats, err
}

func (r *Repo) Announcements(ctx context.Context) (list []content.Announcement, err error) {
	err = r.do(ctx, func(s *state) error {
		list = slices.Clone(s.announcements)
		return nil
	})
	return list, err
}

func (r *Repo) Events(ctx context.Context) (list []content.Event, err error) {
	err = r.do(ctx, func(s *state) error {
		list = copyEvents(s.events)
		return nil
	})
	return list, err
}

// Resources returns a copy of the live tree, ids included
func (r *Repo) Resources(ctx context.Context) (root *content.TreeNode, err error) {
	err = r.do(ctx, func(s *state) error {
		root = content.Copy(s.resources)
		return nil
	})
	return root, err
}

func (r *Repo) Timetable(ctx context.Context) (timetable content.Timetable, err error) {
	err = r.do(ctx, func(s *state) error {
		timetable = s.timetable
		return nil
	})
	return timetable, err
}

// ------------------------------------------------------------------------------------------------
// ~ Announcements & events
// ------------------------------------------------------------------------------------------------

// AddAnnouncement prepends a placeholder announcement
func (r *Repo) AddAnnouncement(ctx context.Context) (item content.Announcement, err error) {
	err = r.do(ctx, func(s *state) error {
		item = content.NewAnnouncement(r.now())
		s.announcements = slices.Insert(s.announcements, 0, item)
		r.touch(s)
		return nil
	})
	return item, err
}

func (r *Repo) DeleteAnnouncement(ctx context.Context, index int) error {
	return r.do(ctx, func(s *state) error {
		if !inRange(index, len(s.announcements)) {
			return errors.Wrapf(ErrIndexOutOfRange, "announcement %d", index)
		}
		s.announcements = slices.Delete(s.announcements, index, index+1)
		r.touch(s)
		return nil
	})
}

// SetAnnouncementField edits one field of the announcement at index
func (r *Repo) SetAnnouncementField(ctx context.Context, index int, field, value string) (item content.Announcement, err error) {
	err = r.do(ctx, func(s *state) error {
		if !inRange(index, len(s.announcements)) {
			return errors.Wrapf(ErrIndexOutOfRange, "announcement %d", index)
		}
		if err := s.announcements[index].Set(field, value); err != nil {
			return err
		}
		item = s.announcements[index]
		r.touch(s)
		return nil
	})
	return item, err
}

// AddEvent prepends a placeholder event
func (r *Repo) AddEvent(ctx context.Context) (item content.Event, err error) {
	err = r.do(ctx, func(s *state) error {
		item = content.NewEvent(r.now())
		s.events = slices.Insert(s.events, 0, item)
		item = copyEvent(item)
		r.touch(s)
		return nil
	})
	return item, err
}

func (r *Repo) DeleteEvent(ctx context.Context, index int) error {
	return r.do(ctx, func(s *state) error {
		if !inRange(index, len(s.events)) {
			return errors.Wrapf(ErrIndexOutOfRange, "event %d", index)
		}
		s.events = slices.Delete(s.events, index, index+1)
		r.touch(s)
		return nil
	})
}

// SetEventField edits one field of the event at index
func (r *Repo) SetEventField(ctx context.Context, index int, field, value string) (item content.Event, err error) {
	err = r.do(ctx, func(s *state) error {
		if !inRange(index, len(s.events)) {
			return errors.Wrapf(ErrIndexOutOfRange, "event %d", index)
		}
		if err := s.events[index].Set(field, value); err != nil {
			return err
		}
		item = copyEvent(s.events[index])
		r.touch(s)
		return nil
	})
	return item, err
}

// SetTimetable replaces the timetable pointer
func (r *Repo) SetTimetable(ctx context.Context, timetable content.Timetable) error {
	if err := timetable.Validate(); err != nil {
		return errors.Wrap(ErrInvalidTimetable, err.Error())
	}
	return r.do(ctx, func(s *state) error {
		s.timetable = timetable
		r.touch(s)
		return nil
	})
}

// ------------------------------------------------------------------------------------------------
// ~ Resource tree
// ------------------------------------------------------------------------------------------------

// AddResource appends a new node to the folder parentID, an empty parentID means the root
func (r *Repo) AddResource(ctx context.Context, parentID, name string, nodeType content.NodeType, url string) (node *content.TreeNode, err error) {
	err = r.do(ctx, func(s *state) error {
		parent := s.resources
		if parentID != "" {
			parent = content.Find(s.resources, parentID)
		}
		if parent == nil {
			return errors.Wrapf(ErrNodeNotFound, "parent %q", parentID)
		}
		if !parent.IsFolder() || parent.MalformedChildren() {
			return errors.Wrapf(ErrNotAFolder, "parent %q", parent.ID)
		}
		var child *content.TreeNode
		switch nodeType {
		case content.NodeTypeFolder:
			child = content.NewFolder(name, r.newID)
		case content.NodeTypeFile:
			child = content.NewFile(name, url, r.newID)
		default:
			return errors.Wrapf(ErrUnknownNodeType, "%q", nodeType)
		}
		if parent.Children == nil {
			parent.Children = []*content.TreeNode{}
		}
		parent.Children = append(parent.Children, child)
		node = content.Copy(child)
		r.touch(s)
		return nil
	})
	return node, err
}

func (r *Repo) RenameResource(ctx context.Context, id, name string) error {
	return r.do(ctx, func(s *state) error {
		node := content.Find(s.resources, id)
		if node == nil {
			return errors.Wrapf(ErrNodeNotFound, "%q", id)
		}
		node.Name = name
		r.touch(s)
		return nil
	})
}

func (r *Repo) SetResourceURL(ctx context.Context, id, url string) error {
	return r.do(ctx, func(s *state) error {
		node := content.Find(s.resources, id)
		if node == nil {
			return errors.Wrapf(ErrNodeNotFound, "%q", id)
		}
		if !node.IsFile() {
			return errors.Wrapf(ErrNotAFile, "%q", id)
		}
		node.URL = url
		r.touch(s)
		return nil
	})
}

// RemoveResource removes a node and everything below it
func (r *Repo) RemoveResource(ctx context.Context, id string) error {
	return r.do(ctx, func(s *state) error {
		if id != "" && s.resources.ID == id {
			return ErrRootRemoval
		}
		parent, index := content.FindParent(s.resources, id)
		if parent == nil {
			return errors.Wrapf(ErrNodeNotFound, "%q", id)
		}
		parent.Children = slices.Delete(parent.Children, index, index+1)
		r.touch(s)
		return nil
	})
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (r *Repo) stats(s *state) content.Stats {
	stats := content.Stats{
		Announcements: len(s.announcements),
		Events:        len(s.events),
		Resources:     content.Count(s.resources),
	}
	if !s.lastUpdated.IsZero() {
		stats.LastUpdated = s.lastUpdated.Format(content.DateLayout)
	}
	return stats
}

func inRange(index, length int) bool {
	return index >= 0 && index < length
}

func copyEvent(e content.Event) content.Event {
	if e.FormURL != nil {
		formURL := *e.FormURL
		e.FormURL = &formURL
	}
	return e
}

func copyEvents(events []content.Event) []content.Event {
	list := make([]content.Event, len(events))
	for i, e := range events {
		list[i] = copyEvent(e)
	}
	return list
}
