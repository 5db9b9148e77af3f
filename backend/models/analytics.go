package models

// EventKindCount — количество записей журнала по типу события.
type EventKindCount struct {
	EventName string `json:"event_name"`
	Count     int    `json:"count"`
}

type UserStats struct {
	UserID                uint             `json:"user_id"`
	TotalTimeSpentSeconds int              `json:"total_time_spent_seconds"`
	AverageQuizScore      float64          `json:"average_quiz_score"` // percentage, 0 when no attempts
	QuizAttempts          int              `json:"quiz_attempts"`
	TotalEvents           int              `json:"total_events"`
	EventCounts           []EventKindCount `json:"event_counts"`
}

type SystemStats struct {
	TotalUsers   int64            `json:"total_users"`
	TotalCourses int64            `json:"total_courses"`
	TotalEvents  int              `json:"total_events"`
	EventCounts  []EventKindCount `json:"event_counts"`
}
