package clickstream

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(store Store, ip IPResolver) *Logger {
	return NewLogger(store, ip, log.New(io.Discard, "", 0), "web")
}

func TestRecordSkipsAnonymousActor(t *testing.T) {
	store := newFakeStore()
	logger := newTestLogger(store, &fakeIPResolver{ip: "203.0.113.7"})

	logger.Record(context.Background(), 0, Event{Kind: KindNavDashboard})

	assert.Equal(t, 0, store.appendAttempts(), "anonymous activity must never be recorded")
}

func TestRecordAppendsEnrichedEntry(t *testing.T) {
	store := newFakeStore()
	logger := newTestLogger(store, &fakeIPResolver{ip: "203.0.113.7"})

	logger.Record(context.Background(), 42, Event{
		Kind:        KindDashboardCourseCard,
		Action:      "ui_click",
		Path:        "/dashboard",
		UserEmail:   "learner@example.com",
		CourseTitle: "Go 101",
		Attrs:       map[string]string{"analytics-id": "dashboard-course-card"},
	})

	events := store.appended()
	assert.Len(t, events, 1)

	entry := events[0]
	assert.Equal(t, "dashboard-course-card", entry.EventName)
	assert.Equal(t, "203.0.113.7", entry.IPAddress)
	assert.Equal(t, "web", entry.Origin)
	assert.Equal(t, "/dashboard", entry.EventContext)
	assert.Equal(t, "learner@example.com", entry.UserEmail)
	assert.Equal(t, "Learner", entry.UserRole)
	assert.Equal(t, uint(42), entry.UserID)
	assert.Equal(t, "The user '42' viewed the course 'Go 101' from their dashboard.", entry.Description)
	assert.NotEmpty(t, entry.RawData)
}

func TestRecordWritesEntryWhenIPLookupFails(t *testing.T) {
	store := newFakeStore()
	logger := newTestLogger(store, &fakeIPResolver{err: errors.New("network unreachable")})

	logger.Record(context.Background(), 42, Event{Kind: KindNavDashboard, UserEmail: "learner@example.com"})

	events := store.appended()
	assert.Len(t, events, 1, "IP resolution failure must not block the write")
	assert.Empty(t, events[0].IPAddress)
}

func TestRecordSwallowsStorageFailure(t *testing.T) {
	store := newFakeStore()
	store.appendErr = errStoreDown
	logger := newTestLogger(store, &fakeIPResolver{ip: "203.0.113.7"})

	assert.NotPanics(t, func() {
		logger.Record(context.Background(), 42, Event{Kind: KindNavDashboard})
	})

	// Одна попытка, без повторов: потерянное событие теряется насовсем
	assert.Equal(t, 1, store.appendAttempts())
	assert.Empty(t, store.appended())
}

func TestRecordAdminRole(t *testing.T) {
	store := newFakeStore()
	logger := newTestLogger(store, &fakeIPResolver{ip: "203.0.113.7"})

	logger.Record(context.Background(), 1, Event{
		Kind:      KindNavAdmin,
		UserEmail: "admin@example.com",
		IsAdmin:   true,
	})

	events := store.appended()
	assert.Len(t, events, 1)
	assert.Equal(t, "Admin", events[0].UserRole)
}

func TestRecordAsyncDrainsOnClose(t *testing.T) {
	store := newFakeStore()
	logger := newTestLogger(store, &fakeIPResolver{ip: "203.0.113.7"})

	for i := 0; i < 10; i++ {
		logger.RecordAsync(42, Event{Kind: KindNavDashboard, UserEmail: "learner@example.com"})
	}
	logger.Close()

	assert.Len(t, store.appended(), 10)
}

func TestRecordMissingContextUsesPlaceholders(t *testing.T) {
	store := newFakeStore()
	logger := newTestLogger(store, &fakeIPResolver{ip: "203.0.113.7"})

	logger.Record(context.Background(), 42, Event{Kind: KindVideoPlayer, UserEmail: "learner@example.com"})

	events := store.appended()
	assert.Len(t, events, 1)
	assert.Equal(t, "N/A", events[0].CourseTitle)
	assert.Equal(t, "N/A", events[0].ContentType)
	assert.Equal(t, "N/A", events[0].Component)
	assert.Nil(t, events[0].Score)
	assert.Nil(t, events[0].TimeSpentSeconds)
}
