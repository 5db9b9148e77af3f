package controllers

import (
	"errors"
	"learnx/backend/clickstream"
	"learnx/backend/config"
	"learnx/backend/models"
	"learnx/backend/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type QuizController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *clickstream.Logger
}

func NewQuizController(db *gorm.DB, cfg *config.Config, logger *clickstream.Logger) *QuizController {
	return &QuizController{DB: db, Cfg: cfg, Logger: logger}
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Scores submitted answer indexes against the stored questions and records the attempt in the clickstream
// @Tags quiz
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/quiz/{contentId}/submit [post]
func (qc *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	session, err := currentSession(c, qc.DB, qc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	contentID, err := strconv.Atoi(c.Params("contentId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}

	var input struct {
		Answers []int `json:"answers"` // selected option index per question
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var course models.Course
	if err := qc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var content models.CourseContent
	if err := qc.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order ASC")
	}).Where("id = ? AND course_id = ?", contentID, courseID).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Content not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if content.ContentType != "quiz" {
		return utils.BadRequest(c, "Content is not a quiz")
	}

	if len(input.Answers) != len(content.Questions) {
		return utils.BadRequest(c, "Answer count does not match question count")
	}

	score := 0
	for i, question := range content.Questions {
		if input.Answers[i] == question.CorrectIndex {
			score++
		}
	}
	total := len(content.Questions)

	// Попытки квиза не хранятся отдельной таблицей: журнал кликстрима —
	// система записи для квиз-аналитики. Знаменатель берётся из самой
	// попытки.
	qc.Logger.RecordAsync(session.UserID, clickstream.Event{
		Kind:           clickstream.KindQuizSubmitButton,
		Action:         "quiz_submit",
		Path:           "/courses/" + strconv.Itoa(courseID),
		UserEmail:      session.Email,
		IsAdmin:        session.IsAdmin,
		CourseID:       strconv.Itoa(courseID),
		CourseTitle:    course.Title,
		ContentID:      strconv.Itoa(contentID),
		ContentType:    "quiz",
		Score:          &score,
		TotalQuestions: &total,
	})

	return c.JSON(fiber.Map{
		"score":           score,
		"total_questions": total,
	})
}
