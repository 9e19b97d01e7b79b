package content

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// TimetableType how the timetable url is rendered
type TimetableType string

const (
	TimetableTypeImage TimetableType = "image"
	TimetableTypePDF   TimetableType = "pdf"
)

// Timetable content of timetable.json
type Timetable struct {
	URL  string        `json:"url"`
	Type TimetableType `json:"type"`
}

// NewTimetable returns the default timetable
func NewTimetable() Timetable {
	return Timetable{
		URL:  "",
		Type: TimetableTypeImage,
	}
}

// DecodeTimetable merges the document over the default timetable
func DecodeTimetable(data []byte) (Timetable, error) {
	t := NewTimetable()
	if err := json.Unmarshal(data, &t); err != nil {
		return NewTimetable(), err
	}
	return t, nil
}

func (t Timetable) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.URL, is.URL),
		validation.Field(&t.Type, validation.Required, validation.In(TimetableTypeImage, TimetableTypePDF)),
	)
}
