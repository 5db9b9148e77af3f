package clickstream

import (
	"context"
	"sort"

	"learnx/backend/models"
)

// Aggregator считает производную статистику по журналу кликстрима.
// Каждый вызов читает актуальное состояние журнала заново — кэша нет,
// результат является снимком на момент вызова.
type Aggregator struct {
	store Store
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// UserStats — персональная статистика: суммарное время просмотра видео,
// средний балл по квизам и счётчики событий.
func (a *Aggregator) UserStats(ctx context.Context, userID uint) (*models.UserStats, error) {
	events, err := a.store.EventsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &models.UserStats{UserID: userID}
	var scoreSum, questionSum int

	for _, ev := range events {
		stats.TotalEvents++

		switch Kind(ev.EventName) {
		case KindVideoPause, KindVideoEnded:
			if ev.TimeSpentSeconds != nil {
				stats.TotalTimeSpentSeconds += *ev.TimeSpentSeconds
			}
		case KindQuizSubmitButton:
			// Каноничный знаменатель — количество вопросов из самого
			// события отправки, а не пересчёт по содержимому квиза.
			if ev.Score != nil && ev.TotalQuestions != nil {
				scoreSum += *ev.Score
				questionSum += *ev.TotalQuestions
				stats.QuizAttempts++
			}
		}
	}

	// Защита от деления на ноль: без попыток средний балл равен 0%.
	if questionSum > 0 {
		stats.AverageQuizScore = float64(scoreSum) / float64(questionSum) * 100
	}

	stats.EventCounts = countByKind(events)
	return stats, nil
}

// SystemStats — статистика по всей платформе для админ-консоли.
func (a *Aggregator) SystemStats(ctx context.Context) (*models.SystemStats, error) {
	events, err := a.store.Events(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers, err := a.store.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	totalCourses, err := a.store.CountCourses(ctx)
	if err != nil {
		return nil, err
	}

	return &models.SystemStats{
		TotalUsers:   totalUsers,
		TotalCourses: totalCourses,
		TotalEvents:  len(events),
		EventCounts:  countByKind(events),
	}, nil
}

// RecentActivity возвращает последние записи журнала (порядок по времени
// по убыванию обеспечивает Store). limit <= 0 — без ограничения.
func (a *Aggregator) RecentActivity(ctx context.Context, userID uint, limit int) ([]models.ClickstreamEvent, error) {
	var events []models.ClickstreamEvent
	var err error

	if userID != 0 {
		events, err = a.store.EventsByUser(ctx, userID)
	} else {
		events, err = a.store.Events(ctx)
	}
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// countByKind группирует записи по типу события. Порядок детерминирован:
// по убыванию количества, при равенстве — по имени.
func countByKind(events []models.ClickstreamEvent) []models.EventKindCount {
	counts := make(map[string]int)
	for _, ev := range events {
		counts[ev.EventName]++
	}

	result := make([]models.EventKindCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, models.EventKindCount{EventName: name, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].EventName < result[j].EventName
	})

	return result
}
