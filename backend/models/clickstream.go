package models

import "time"

// ClickstreamEvent — одна запись в журнале кликстрима. Журнал append-only:
// записи никогда не обновляются и не удаляются, поэтому здесь нет gorm.Model
// с UpdatedAt/DeletedAt.
type ClickstreamEvent struct {
	ID   uint      `gorm:"primarykey" json:"id"`
	Time time.Time `gorm:"autoCreateTime;index" json:"time"`

	EventContext string `json:"event_context"` // navigation path at time of event
	Component    string `json:"component"`
	EventName    string `json:"event_name"`
	Description  string `json:"description"` // rendered once at write time
	Origin       string `json:"origin"`
	IPAddress    string `json:"ip_address"` // best-effort, empty when lookup failed
	Username     string `json:"username"`
	UserEmail    string `json:"user_email"`
	UserRole     string `json:"user_role"` // Learner, Admin
	UserID       uint   `gorm:"index" json:"user_id"`
	CourseTitle  string `json:"course_title"`
	ContentType  string `json:"content_type"`
	Action       string `json:"action"`

	Score            *int     `json:"score"`
	TotalQuestions   *int     `json:"total_questions"`
	ProgressPercent  *float64 `json:"progress_percent"`
	TimeSpentSeconds *int     `json:"time_spent_seconds"`

	// RawData хранит исходный набор data-атрибутов (JSON) для отладки.
	// В CSV-экспорт не попадает.
	RawData string `json:"-"`
}

func (ClickstreamEvent) TableName() string {
	return "clickstream"
}
