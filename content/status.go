package content

// NotificationType kind of a user notification
type NotificationType string

const (
	// NotificationSuccess an action went through
	NotificationSuccess NotificationType = "success"
	// NotificationError an action failed
	NotificationError NotificationType = "error"
	// NotificationInfo anything else
	NotificationInfo NotificationType = "info"
)

// Notification short non blocking message for the editor
type Notification struct {
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
}

// NewNotification uses the default title of the given type
func NewNotification(t NotificationType, message string) *Notification {
	title := "Info"
	switch t {
	case NotificationSuccess:
		title = "Success"
	case NotificationError:
		title = "Error"
	}
	return &Notification{
		Type:    t,
		Title:   title,
		Message: message,
	}
}

// Stats dashboard numbers
type Stats struct {
	Announcements int    `json:"announcements"`
	Events        int    `json:"events"`
	Resources     int    `json:"resources"`
	LastUpdated   string `json:"lastUpdated"`
}
