package controllers

import (
	"errors"
	"learnx/backend/config"
	"learnx/backend/models"
	"learnx/backend/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

// GetCourses возвращает каталог курсов.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	category := c.Query("category")

	query := cc.DB.Model(&models.Course{})
	if category != "" {
		query = query.Where("category LIKE ?", "%"+category+"%")
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var result []fiber.Map
	for _, course := range courses {
		result = append(result, fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.ShortDesc,
			"category":    course.Category,
			"author":      course.AuthorID,
			"logo_url":    course.LogoURL,
		})
	}

	return c.JSON(result)
}

func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.Preload("Contents", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order ASC")
	}).Preload("Contents.Questions").First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	// Отмечаем завершённые элементы контента для текущего пользователя
	var progresses []models.UserContentProgress
	cc.DB.Where("user_id = ? AND course_id = ? AND completed = true", userID, courseID).Find(&progresses)

	completed := make(map[uint]bool, len(progresses))
	for _, p := range progresses {
		completed[p.ContentID] = true
	}

	var contents []fiber.Map
	for _, content := range course.Contents {
		contents = append(contents, fiber.Map{
			"id":             content.ID,
			"title":          content.Title,
			"content_type":   content.ContentType,
			"sequence_order": content.SequenceOrder,
			"youtube_id":     content.YoutubeID,
			"body":           content.Body,
			"questions":      quizQuestionsView(content.Questions),
			"completed":      completed[content.ID],
		})
	}

	return c.JSON(fiber.Map{
		"course": fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"short_desc":  course.ShortDesc,
			"description": course.Description,
			"category":    course.Category,
			"logo_url":    course.LogoURL,
			"author":      course.AuthorID,
			"contents":    contents,
		},
	})
}

// quizQuestionsView отдаёт вопросы без правильных ответов — проверка
// идёт на сервере при отправке квиза.
func quizQuestionsView(questions []models.QuizQuestion) []fiber.Map {
	var result []fiber.Map
	for _, q := range questions {
		result = append(result, fiber.Map{
			"id":             q.ID,
			"question":       q.Question,
			"options":        q.Options,
			"sequence_order": q.SequenceOrder,
		})
	}
	return result
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course.AuthorID = userID

	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}

	return c.JSON(fiber.Map{
		"message": "Course created",
		"course":  course,
	})
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		Title       string `json:"title"`
		ShortDesc   string `json:"short_desc"`
		Description string `json:"description"`
		Category    string `json:"category"`
		LogoURL     string `json:"logo_url"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	// Update fields
	if input.Title != "" {
		course.Title = input.Title
	}
	if input.ShortDesc != "" {
		course.ShortDesc = input.ShortDesc
	}
	if input.Description != "" {
		course.Description = input.Description
	}
	if input.Category != "" {
		course.Category = input.Category
	}
	if input.LogoURL != "" {
		course.LogoURL = input.LogoURL
	}

	if err := cc.DB.Save(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not update course")
	}

	return c.JSON(fiber.Map{
		"message": "Course updated",
		"course":  course,
	})
}

func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	if err := cc.DB.Delete(&models.Course{}, courseID).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete course")
	}

	return c.JSON(fiber.Map{
		"message": "Course deleted",
	})
}

func (cc *CoursesController) AddContent(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		Title       string `json:"title"`
		ContentType string `json:"content_type"`
		YoutubeID   string `json:"youtube_id"`
		Body        string `json:"body"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	// Get current content count to set sequence order
	var contentCount int64
	cc.DB.Model(&models.CourseContent{}).Where("course_id = ?", courseID).Count(&contentCount)

	content := models.CourseContent{
		CourseID:      uint(courseID),
		Title:         input.Title,
		ContentType:   input.ContentType,
		YoutubeID:     input.YoutubeID,
		Body:          input.Body,
		SequenceOrder: int(contentCount) + 1,
	}

	if err := cc.DB.Create(&content).Error; err != nil {
		return utils.InternalServerError(c, "Could not create content")
	}

	return c.JSON(fiber.Map{
		"message": "Content added",
		"content": content,
	})
}

func (cc *CoursesController) UpdateContent(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	contentID, err := strconv.Atoi(c.Params("contentId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}

	var input struct {
		Title         string `json:"title"`
		ContentType   string `json:"content_type"`
		YoutubeID     string `json:"youtube_id"`
		Body          string `json:"body"`
		SequenceOrder int    `json:"sequence_order"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var content models.CourseContent
	if err := cc.DB.Where("id = ? AND course_id = ?", contentID, courseID).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Content not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	// Update fields
	if input.Title != "" {
		content.Title = input.Title
	}
	if input.ContentType != "" {
		content.ContentType = input.ContentType
	}
	if input.YoutubeID != "" {
		content.YoutubeID = input.YoutubeID
	}
	if input.Body != "" {
		content.Body = input.Body
	}
	if input.SequenceOrder != 0 {
		content.SequenceOrder = input.SequenceOrder
	}

	if err := cc.DB.Save(&content).Error; err != nil {
		return utils.InternalServerError(c, "Could not update content")
	}

	return c.JSON(fiber.Map{
		"message": "Content updated",
		"content": content,
	})
}

func (cc *CoursesController) DeleteContent(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	contentID, err := strconv.Atoi(c.Params("contentId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}

	if err := cc.DB.Where("id = ? AND course_id = ?", contentID, courseID).Delete(&models.CourseContent{}).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete content")
	}

	return c.JSON(fiber.Map{
		"message": "Content deleted",
	})
}

func (cc *CoursesController) AddQuestion(c *fiber.Ctx) error {
	contentID, err := strconv.Atoi(c.Params("contentId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}

	var input struct {
		Question     string `json:"question"`
		Options      string `json:"options"` // JSON array
		CorrectIndex int    `json:"correct_index"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var content models.CourseContent
	if err := cc.DB.First(&content, contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Content not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if content.ContentType != "quiz" {
		return utils.BadRequest(c, "Content is not a quiz")
	}

	var questionCount int64
	cc.DB.Model(&models.QuizQuestion{}).Where("content_id = ?", contentID).Count(&questionCount)

	question := models.QuizQuestion{
		ContentID:     uint(contentID),
		Question:      input.Question,
		Options:       input.Options,
		CorrectIndex:  input.CorrectIndex,
		SequenceOrder: int(questionCount) + 1,
	}

	if err := cc.DB.Create(&question).Error; err != nil {
		return utils.InternalServerError(c, "Could not create question")
	}

	return c.JSON(fiber.Map{
		"message":  "Question added",
		"question": question,
	})
}

func (cc *CoursesController) UpdateQuestion(c *fiber.Ctx) error {
	contentID, err := strconv.Atoi(c.Params("contentId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}

	questionID, err := strconv.Atoi(c.Params("questionId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid question ID")
	}

	var input struct {
		Question     string `json:"question"`
		Options      string `json:"options"`
		CorrectIndex *int   `json:"correct_index"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var question models.QuizQuestion
	if err := cc.DB.Where("id = ? AND content_id = ?", questionID, contentID).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Question not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if input.Question != "" {
		question.Question = input.Question
	}
	if input.Options != "" {
		question.Options = input.Options
	}
	if input.CorrectIndex != nil {
		question.CorrectIndex = *input.CorrectIndex
	}

	if err := cc.DB.Save(&question).Error; err != nil {
		return utils.InternalServerError(c, "Could not update question")
	}

	return c.JSON(fiber.Map{
		"message":  "Question updated",
		"question": question,
	})
}

func (cc *CoursesController) DeleteQuestion(c *fiber.Ctx) error {
	contentID, err := strconv.Atoi(c.Params("contentId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}

	questionID, err := strconv.Atoi(c.Params("questionId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid question ID")
	}

	result := cc.DB.Where("id = ? AND content_id = ?", questionID, contentID).Delete(&models.QuizQuestion{})
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not delete question")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Question not found")
	}

	return c.JSON(fiber.Map{
		"message": "Question deleted",
	})
}
