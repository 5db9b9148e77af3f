package clickstream

import (
	"io"
	"log"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func newTestCapture(store Store) *Capture {
	logger := NewLogger(store, &fakeIPResolver{ip: "203.0.113.7"}, log.New(io.Discard, "", 0), "web")
	capture := NewCapture(logger)
	capture.Start()
	return capture
}

func learnerSession() Session {
	return Session{UserID: 42, Email: "learner@example.com"}
}

func TestHandleInteractionNearestTaggedAncestor(t *testing.T) {
	store := newFakeStore()
	capture := newTestCapture(store)

	// Кнопка логаута внутри помеченной карточки курса: клик по span
	// должен дать ровно одно событие с атрибутами ближайшего предка.
	card := &Element{
		Tag: "DIV",
		Dataset: map[string]string{
			"analytics-id": "dashboard-course-card",
			"course-title": "Go 101",
		},
	}
	button := &Element{
		Tag:     "BUTTON",
		Text:    "Open course",
		Dataset: map[string]string{"analytics-id": "nav-dashboard"},
		Parent:  card,
	}
	span := &Element{Tag: "SPAN", Text: "Open", Parent: button}

	accepted := capture.HandleInteraction(learnerSession(), span, "/dashboard")
	capture.Stop()

	assert.True(t, accepted)
	events := store.appended()
	assert.Len(t, events, 1, "nested tagged elements must not double-fire")
	assert.Equal(t, "nav-dashboard", events[0].EventName, "nearest tagged ancestor wins")
	assert.Equal(t, "/dashboard", events[0].EventContext)
}

func TestHandleInteractionTaggedTargetItself(t *testing.T) {
	store := newFakeStore()
	capture := newTestCapture(store)

	target := &Element{
		Tag:  "BUTTON",
		Text: "  Logout  ",
		Dataset: map[string]string{
			"analytics-id": "logout-button",
		},
	}

	accepted := capture.HandleInteraction(learnerSession(), target, "/dashboard")
	capture.Stop()

	assert.True(t, accepted)
	events := store.appended()
	assert.Len(t, events, 1)
	assert.Equal(t, "logout-button", events[0].EventName)
}

func TestHandleInteractionUntaggedTreeIsDropped(t *testing.T) {
	store := newFakeStore()
	capture := newTestCapture(store)

	parent := &Element{Tag: "DIV"}
	target := &Element{Tag: "P", Text: "plain text", Parent: parent}

	accepted := capture.HandleInteraction(learnerSession(), target, "/courses")
	capture.Stop()

	assert.False(t, accepted)
	assert.Empty(t, store.appended(), "not every click is tracked")
}

func TestHandleInteractionAnonymousSessionIsDropped(t *testing.T) {
	store := newFakeStore()
	capture := newTestCapture(store)

	target := &Element{
		Tag:     "BUTTON",
		Dataset: map[string]string{"analytics-id": "logout-button"},
	}

	accepted := capture.HandleInteraction(Session{}, target, "/dashboard")
	capture.Stop()

	assert.False(t, accepted)
	assert.Empty(t, store.appended())
}

func TestHandleInteractionAfterStopIsDropped(t *testing.T) {
	store := newFakeStore()
	capture := newTestCapture(store)
	capture.Stop()

	target := &Element{
		Tag:     "BUTTON",
		Dataset: map[string]string{"analytics-id": "logout-button"},
	}

	accepted := capture.HandleInteraction(learnerSession(), target, "/dashboard")

	assert.False(t, accepted)
	assert.Empty(t, store.appended())
}

func TestHandleInteractionExtractsAttributesAndSession(t *testing.T) {
	store := newFakeStore()
	capture := newTestCapture(store)

	target := &Element{
		Tag:  "BUTTON",
		Text: "Mark as Complete",
		Dataset: map[string]string{
			"analytics-id":     "completion-button",
			"course-title":     "Go 101",
			"content-type":     "video",
			"completed-status": "false",
		},
	}

	session := Session{UserID: 7, Email: "learner@example.com", IsAdmin: false}
	capture.HandleInteraction(session, target, "/courses/1")
	capture.Stop()

	events := store.appended()
	assert.Len(t, events, 1)

	entry := events[0]
	assert.Equal(t, "completion-button", entry.EventName)
	assert.Equal(t, "Go 101", entry.CourseTitle)
	assert.Equal(t, "video", entry.ContentType)
	assert.Equal(t, "ui_click", entry.Action)
	assert.Equal(t, uint(7), entry.UserID)
	assert.Equal(t, "learner@example.com", entry.UserEmail)
	assert.Equal(t, "Learner", entry.UserRole)
	assert.Contains(t, entry.Description, "as complete")
}

func TestTrimElementText(t *testing.T) {
	assert.Equal(t, "Logout", TrimElementText("  Logout \n"))

	long := ""
	for i := 0; i < 30; i++ {
		long += "abcdefghij"
	}
	assert.Len(t, TrimElementText(long), 100)
}

func TestTrimElementTextKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("абвгдежзий", 30) // 300 символов, по 2 байта каждый

	trimmed := TrimElementText(long)
	assert.True(t, utf8.ValidString(trimmed), "truncation must not split a rune")
	assert.Equal(t, 100, utf8.RuneCountInString(trimmed))
	assert.Equal(t, strings.Repeat("абвгдежзий", 10), trimmed)
}
