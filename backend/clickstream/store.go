package clickstream

import (
	"context"

	"learnx/backend/models"

	"gorm.io/gorm"
)

// Store — хранилище журнала кликстрима. Журнал append-only: интерфейс
// сознательно не даёт способа обновить или удалить запись.
type Store interface {
	Append(ctx context.Context, entry *models.ClickstreamEvent) error
	// Events возвращает весь журнал, упорядоченный по серверному времени
	// по убыванию.
	Events(ctx context.Context) ([]models.ClickstreamEvent, error)
	// EventsByUser — журнал одного пользователя, в том же порядке.
	EventsByUser(ctx context.Context, userID uint) ([]models.ClickstreamEvent, error)
	CountUsers(ctx context.Context) (int64, error)
	CountCourses(ctx context.Context) (int64, error)
}

type gormStore struct {
	db *gorm.DB
}

// NewStore wraps a GORM connection as the production event log store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Append(ctx context.Context, entry *models.ClickstreamEvent) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *gormStore) Events(ctx context.Context) ([]models.ClickstreamEvent, error) {
	var events []models.ClickstreamEvent
	err := s.db.WithContext(ctx).Order("time DESC, id DESC").Find(&events).Error
	return events, err
}

func (s *gormStore) EventsByUser(ctx context.Context, userID uint) ([]models.ClickstreamEvent, error) {
	var events []models.ClickstreamEvent
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("time DESC, id DESC").
		Find(&events).Error
	return events, err
}

func (s *gormStore) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}

func (s *gormStore) CountCourses(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Course{}).Count(&count).Error
	return count, err
}
