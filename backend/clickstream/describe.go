package clickstream

import (
	"fmt"
	"strconv"
)

// Describe генерирует человекочитаемое описание события. Чистая функция:
// никогда не падает, отсутствующие атрибуты заменяются на "N/A".
func Describe(ev Event) string {
	actor := actorLabel(ev)

	switch ev.Kind {
	case KindLoginSuccess:
		return fmt.Sprintf("The user with email '%s' successfully logged in.", orNA(ev.UserEmail))
	case KindQuizOptionSelect:
		return fmt.Sprintf("The user '%s' selected option '%s' for question %s in course '%s'.",
			actor, orNA(ev.OptionText), questionNumber(ev.QuestionIndex), orNA(ev.CourseTitle))
	case KindNavDashboard:
		return fmt.Sprintf("The user '%s' navigated to the Dashboard.", actor)
	case KindNavAllCourses:
		return fmt.Sprintf("The user '%s' navigated to the All Courses page.", actor)
	case KindNavAdmin:
		return fmt.Sprintf("The admin user '%s' navigated to the Admin Dashboard.", actor)
	case KindLogoutButton:
		return fmt.Sprintf("The user '%s' clicked the logout button.", actor)
	case KindDashboardCourseCard:
		return fmt.Sprintf("The user '%s' viewed the course '%s' from their dashboard.", actor, orNA(ev.CourseTitle))
	case KindCompletionButton:
		// completed-status несёт состояние ДО клика, поэтому формулировка
		// инвертирована.
		status := "complete"
		if ev.CompletedStatus == "true" {
			status = "incomplete"
		}
		return fmt.Sprintf("The user '%s' marked content in course '%s' as %s.", actor, orNA(ev.CourseTitle), status)
	case KindQuizSubmitButton:
		return fmt.Sprintf("The user '%s' submitted the quiz in course '%s'.", actor, orNA(ev.CourseTitle))
	case KindVideoPlayer:
		return fmt.Sprintf("The user '%s' interacted with a video player in course '%s'.", actor, orNA(ev.CourseTitle))
	case KindVideoPause:
		return fmt.Sprintf("The user '%s' paused a video in course '%s'.", actor, orNA(ev.CourseTitle))
	case KindVideoEnded:
		return fmt.Sprintf("The user '%s' watched a video to the end in course '%s'.", actor, orNA(ev.CourseTitle))
	default:
		return fmt.Sprintf("The user '%s' clicked on a UI element with text '%s'.", actor, orNA(ev.ElementText))
	}
}

// actorLabel: ID пользователя, либо email как запасной вариант.
func actorLabel(ev Event) string {
	if ev.UserID != 0 {
		return strconv.FormatUint(uint64(ev.UserID), 10)
	}
	return orNA(ev.UserEmail)
}

func questionNumber(index string) string {
	n, err := strconv.Atoi(index)
	if err != nil {
		return "N/A"
	}
	return strconv.Itoa(n + 1)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
