package clickstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeKnownKinds(t *testing.T) {
	kinds := []Kind{
		KindQuizOptionSelect,
		KindNavDashboard,
		KindNavAllCourses,
		KindNavAdmin,
		KindLogoutButton,
		KindDashboardCourseCard,
		KindCompletionButton,
		KindQuizSubmitButton,
		KindVideoPlayer,
		KindVideoPause,
		KindVideoEnded,
	}

	for _, kind := range kinds {
		ev := Event{
			Kind:        kind,
			UserID:      42,
			UserEmail:   "learner@example.com",
			CourseTitle: "Go 101",
		}

		desc := Describe(ev)
		assert.NotEmpty(t, desc, "kind %s", kind)
		assert.Contains(t, desc, "42", "kind %s should reference the actor", kind)
	}
}

func TestDescribeLoginSuccess(t *testing.T) {
	desc := Describe(Event{
		Kind:      KindLoginSuccess,
		UserEmail: "learner@example.com",
	})

	assert.Equal(t, "The user with email 'learner@example.com' successfully logged in.", desc)
}

func TestDescribeQuizOptionSelect(t *testing.T) {
	desc := Describe(Event{
		Kind:          KindQuizOptionSelect,
		UserID:        7,
		OptionText:    "Goroutines",
		QuestionIndex: "0",
		CourseTitle:   "Go 101",
	})

	// Индекс вопроса нулевой, в описании — номер с единицы
	assert.Equal(t, "The user '7' selected option 'Goroutines' for question 1 in course 'Go 101'.", desc)
}

func TestDescribeCompletionButtonInvertsStatus(t *testing.T) {
	marked := Describe(Event{Kind: KindCompletionButton, UserID: 7, CourseTitle: "Go 101", CompletedStatus: "false"})
	assert.Contains(t, marked, "as complete")

	unmarked := Describe(Event{Kind: KindCompletionButton, UserID: 7, CourseTitle: "Go 101", CompletedStatus: "true"})
	assert.Contains(t, unmarked, "as incomplete")
}

func TestDescribeUnknownKindFallsBack(t *testing.T) {
	desc := Describe(Event{
		Kind:        Kind("mystery-button"),
		UserID:      7,
		ElementText: "Click me",
	})

	assert.Equal(t, "The user '7' clicked on a UI element with text 'Click me'.", desc)
}

func TestDescribeMissingFieldsRenderAsNA(t *testing.T) {
	// Полностью пустое событие не должно ни падать, ни давать пустую строку
	desc := Describe(Event{Kind: KindQuizOptionSelect})
	assert.NotEmpty(t, desc)
	assert.Contains(t, desc, "N/A")

	desc = Describe(Event{})
	assert.NotEmpty(t, desc)
	assert.Contains(t, desc, "N/A")
}

func TestDescribeIsIdempotent(t *testing.T) {
	ev := Event{
		Kind:        KindDashboardCourseCard,
		UserID:      7,
		CourseTitle: "Go 101",
	}

	assert.Equal(t, Describe(ev), Describe(ev))
}

func TestDescribeCourseTitlePresent(t *testing.T) {
	withCourse := []Kind{
		KindQuizOptionSelect,
		KindDashboardCourseCard,
		KindCompletionButton,
		KindQuizSubmitButton,
		KindVideoPlayer,
		KindVideoPause,
		KindVideoEnded,
	}

	for _, kind := range withCourse {
		desc := Describe(Event{Kind: kind, UserID: 7, CourseTitle: "Distributed Systems"})
		assert.Contains(t, desc, "Distributed Systems", "kind %s", kind)
	}
}
