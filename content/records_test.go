package content

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC)

func TestNewAnnouncement(t *testing.T) {
	out, err := json.Marshal(NewAnnouncement(testNow))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"New Announcement","date":"2024-03-09","description":""}`, string(out))
}

func TestNewEvent(t *testing.T) {
	out, err := json.Marshal(NewEvent(testNow))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"New Event","date":"2024-03-09","description":"","form_url":""}`, string(out))
}

func TestEventWithoutFormURL(t *testing.T) {
	var e Event
	require.NoError(t, json.Unmarshal([]byte(`{"title":"a","date":"2024-01-01","description":"d"}`), &e))
	assert.Nil(t, e.FormURL)
	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"a","date":"2024-01-01","description":"d"}`, string(out))
}

func TestAnnouncementSet(t *testing.T) {
	a := NewAnnouncement(testNow)
	require.NoError(t, a.Set(FieldTitle, "Exam dates"))
	require.NoError(t, a.Set(FieldDate, "2024-04-01"))
	require.NoError(t, a.Set(FieldDescription, "room 101"))
	assert.Equal(t, Announcement{Title: "Exam dates", Date: "2024-04-01", Description: "room 101"}, a)

	err := a.Set(FieldFormURL, "https://example.com")
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.Error(t, a.Set(FieldDate, "01.04.2024"))
	assert.NoError(t, a.Set(FieldDate, ""))
}

func TestEventSet(t *testing.T) {
	e := NewEvent(testNow)
	require.NoError(t, e.Set(FieldFormURL, "https://forms.example.com/x"))
	require.NotNil(t, e.FormURL)
	assert.Equal(t, "https://forms.example.com/x", *e.FormURL)

	assert.Error(t, e.Set(FieldFormURL, "not a url"))
	assert.NoError(t, e.Set(FieldFormURL, ""))
	assert.True(t, errors.Is(e.Set("color", "red"), ErrUnknownField))
}

func TestDecodeTimetable(t *testing.T) {
	tt, err := DecodeTimetable([]byte(`{"url":"https://example.com/t.pdf"}`))
	require.NoError(t, err)
	assert.Equal(t, Timetable{URL: "https://example.com/t.pdf", Type: TimetableTypeImage}, tt)

	tt, err = DecodeTimetable([]byte(`{"url":"u","type":"pdf"}`))
	require.NoError(t, err)
	assert.Equal(t, TimetableTypePDF, tt.Type)

	tt, err = DecodeTimetable([]byte(`[`))
	require.Error(t, err)
	assert.Equal(t, NewTimetable(), tt)
}

func TestTimetableValidate(t *testing.T) {
	assert.NoError(t, NewTimetable().Validate())
	assert.NoError(t, Timetable{URL: "https://example.com/t.png", Type: TimetableTypeImage}.Validate())
	assert.Error(t, Timetable{Type: "gif"}.Validate())
	assert.Error(t, Timetable{URL: "not a url", Type: TimetableTypePDF}.Validate())
}

func TestParseCollection(t *testing.T) {
	c, err := ParseCollection("events")
	require.NoError(t, err)
	assert.Equal(t, "events.json", c.Filename())

	_, err = ParseCollection("pages")
	assert.True(t, errors.Is(err, ErrUnknownCollection))
}
