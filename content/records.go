package content

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pkg/errors"
)

// DateLayout layout of record dates
const DateLayout = "2006-01-02"

// Record fields that can be edited
const (
	FieldTitle       = "title"
	FieldDate        = "date"
	FieldDescription = "description"
	FieldFormURL     = "form_url"
)

// ErrUnknownField the record has no such field
var ErrUnknownField = errors.New("unknown field")

type (
	// Announcement entry of announcements.json
	Announcement struct {
		Title       string `json:"title"`
		Date        string `json:"date"`
		Description string `json:"description"`
	}
	// Event entry of events.json
	Event struct {
		Title       string `json:"title"`
		Date        string `json:"date"`
		Description string `json:"description"`
		// FormURL optional registration form, nil when the source had none
		FormURL *string `json:"form_url,omitempty"`
	}
)

// NewAnnouncement returns the placeholder announcement for the given day
func NewAnnouncement(now time.Time) Announcement {
	return Announcement{
		Title: "New Announcement",
		Date:  now.UTC().Format(DateLayout),
	}
}

// NewEvent returns the placeholder event for the given day
func NewEvent(now time.Time) Event {
	formURL := ""
	return Event{
		Title:   "New Event",
		Date:    now.UTC().Format(DateLayout),
		FormURL: &formURL,
	}
}

// Set assigns a single field after validating its value
func (a *Announcement) Set(field, value string) error {
	if err := validateField(field, value); err != nil {
		return err
	}
	switch field {
	case FieldTitle:
		a.Title = value
	case FieldDate:
		a.Date = value
	case FieldDescription:
		a.Description = value
	default:
		return errors.Wrap(ErrUnknownField, field)
	}
	return nil
}

// Set assigns a single field after validating its value
func (e *Event) Set(field, value string) error {
	if err := validateField(field, value); err != nil {
		return err
	}
	switch field {
	case FieldTitle:
		e.Title = value
	case FieldDate:
		e.Date = value
	case FieldDescription:
		e.Description = value
	case FieldFormURL:
		e.FormURL = &value
	default:
		return errors.Wrap(ErrUnknownField, field)
	}
	return nil
}

func validateField(field, value string) error {
	var err error
	switch field {
	case FieldDate:
		err = validation.Validate(value, validation.Date(DateLayout))
	case FieldFormURL:
		err = validation.Validate(value, is.URL)
	}
	if err != nil {
		return errors.Wrapf(err, "invalid %s", field)
	}
	return nil
}
