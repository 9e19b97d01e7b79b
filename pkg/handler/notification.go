package handler

import (
	"strings"

	"github.com/foomo/contentadmin/content"
)

// HeaderNotification carries the notification message of a download
const HeaderNotification = "X-Notification"

const (
	MessageAnnouncementCreated = "New announcement created"
	MessageAnnouncementDeleted = "Announcement deleted"
	MessageEventCreated        = "New event created"
	MessageEventDeleted        = "Event deleted"
)

// ExportMessage e.g. "Events exported successfully"
func ExportMessage(collection content.Collection) string {
	name := string(collection)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:] + " exported successfully"
}
