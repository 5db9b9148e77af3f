package clickstream

import (
	"strconv"
	"strings"
)

// Kind идентифицирует тип отслеживаемого взаимодействия. Значения совпадают
// с data-analytics-id атрибутами, которые проставляет веб-клиент.
type Kind string

const (
	KindLoginSuccess        Kind = "login_success"
	KindQuizOptionSelect    Kind = "quiz-option-select"
	KindNavDashboard        Kind = "nav-dashboard"
	KindNavAllCourses       Kind = "nav-all-courses"
	KindNavAdmin            Kind = "nav-admin"
	KindLogoutButton        Kind = "logout-button"
	KindDashboardCourseCard Kind = "dashboard-course-card"
	KindCompletionButton    Kind = "completion-button"
	KindQuizSubmitButton    Kind = "quiz-submit-button"
	KindVideoPlayer         Kind = "video-player"
	KindVideoPause          Kind = "video-pause"
	KindVideoEnded          Kind = "video-ended"
)

// Attribute keys recognized in the tagging attribute set.
const (
	attrAnalyticsID     = "analytics-id"
	attrComponent       = "component"
	attrCourseID        = "course-id"
	attrCourseTitle     = "course-title"
	attrContentID       = "content-id"
	attrContentType     = "content-type"
	attrOptionText      = "option-text"
	attrQuestionIndex   = "question-index"
	attrCompletedStatus = "completed-status"
	attrScore           = "score"
	attrTotalQuestions  = "total-questions"
	attrProgressPercent = "progress-percent"
	attrTimeSpent       = "time-spent"
)

const maxElementTextLen = 100

// Event — структурированная запись взаимодействия до обогащения и записи
// в журнал. Собирается из атрибутов элемента плюс данных сессии.
type Event struct {
	Kind   Kind
	Action string // generic action type, e.g. ui_click
	Path   string // navigation path where the interaction happened

	UserID    uint
	UserEmail string
	IsAdmin   bool

	Component   string
	CourseID    string
	CourseTitle string
	ContentID   string
	ContentType string

	OptionText      string
	QuestionIndex   string
	CompletedStatus string

	Score            *int
	TotalQuestions   *int
	ProgressPercent  *float64
	TimeSpentSeconds *int

	// Fallback descriptive data for unrecognized kinds.
	ElementTag  string
	ElementText string

	// Attrs хранит полный набор атрибутов как есть.
	Attrs map[string]string
}

// Role возвращает роль актора в том виде, в каком она пишется в журнал.
func (e Event) Role() string {
	if e.IsAdmin {
		return "Admin"
	}
	return "Learner"
}

// ParseAttrs builds an Event from a tagging attribute set. Numeric
// attributes that fail to parse are left unset rather than failing the
// whole event.
func ParseAttrs(attrs map[string]string) Event {
	ev := Event{
		Kind:            Kind(attrs[attrAnalyticsID]),
		Component:       attrs[attrComponent],
		CourseID:        attrs[attrCourseID],
		CourseTitle:     attrs[attrCourseTitle],
		ContentID:       attrs[attrContentID],
		ContentType:     attrs[attrContentType],
		OptionText:      attrs[attrOptionText],
		QuestionIndex:   attrs[attrQuestionIndex],
		CompletedStatus: attrs[attrCompletedStatus],
		Attrs:           attrs,
	}

	if v, ok := attrs[attrScore]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			ev.Score = &n
		}
	}
	if v, ok := attrs[attrTotalQuestions]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			ev.TotalQuestions = &n
		}
	}
	if v, ok := attrs[attrProgressPercent]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			ev.ProgressPercent = &f
		}
	}
	if v, ok := attrs[attrTimeSpent]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			ev.TimeSpentSeconds = &n
		}
	}

	return ev
}

// TrimElementText обрезает текст элемента до предельной длины, как это
// делал клиентский обработчик. Предел считается в символах, а не в байтах,
// чтобы не разрезать многобайтовую руну посередине.
func TrimElementText(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) > maxElementTextLen {
		return string(runes[:maxElementTextLen])
	}
	return text
}
