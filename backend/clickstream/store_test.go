package clickstream

import (
	"context"
	"errors"
	"sort"
	"sync"

	"learnx/backend/models"
)

// fakeStore — журнал в памяти для тестов. Ведёт счётчик попыток записи,
// чтобы проверять отсутствие повторов и запретов на запись.
type fakeStore struct {
	mu          sync.Mutex
	events      []models.ClickstreamEvent
	users       int64
	courses     int64
	appendErr   error
	appendCalls int
	nextID      uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (s *fakeStore) Append(ctx context.Context, entry *models.ClickstreamEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendCalls++
	if s.appendErr != nil {
		return s.appendErr
	}

	s.nextID++
	entry.ID = s.nextID
	s.events = append(s.events, *entry)
	return nil
}

func (s *fakeStore) Events(ctx context.Context) ([]models.ClickstreamEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.ClickstreamEvent, len(s.events))
	copy(result, s.events)
	sortDesc(result)
	return result, nil
}

func (s *fakeStore) EventsByUser(ctx context.Context, userID uint) ([]models.ClickstreamEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.ClickstreamEvent
	for _, ev := range s.events {
		if ev.UserID == userID {
			result = append(result, ev)
		}
	}
	sortDesc(result)
	return result, nil
}

func (s *fakeStore) CountUsers(ctx context.Context) (int64, error) {
	return s.users, nil
}

func (s *fakeStore) CountCourses(ctx context.Context) (int64, error) {
	return s.courses, nil
}

func (s *fakeStore) appended() []models.ClickstreamEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.ClickstreamEvent, len(s.events))
	copy(result, s.events)
	return result
}

func (s *fakeStore) appendAttempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendCalls
}

func sortDesc(events []models.ClickstreamEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Time.Equal(events[j].Time) {
			return events[i].Time.After(events[j].Time)
		}
		return events[i].ID > events[j].ID
	})
}

// fakeIPResolver возвращает фиксированный адрес либо ошибку.
type fakeIPResolver struct {
	ip  string
	err error
}

func (r *fakeIPResolver) Lookup(ctx context.Context) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return r.ip, nil
}

var errStoreDown = errors.New("store is down")
