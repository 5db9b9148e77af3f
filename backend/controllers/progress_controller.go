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

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

// ToggleCompletion переключает отметку о завершении элемента контента —
// эквивалент completedContent arrayUnion/arrayRemove из веб-клиента.
func (pc *ProgressController) ToggleCompletion(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
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

	var content models.CourseContent
	if err := pc.DB.Where("id = ? AND course_id = ?", contentID, courseID).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Content not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var progress models.UserContentProgress
	if err := pc.DB.Where("user_id = ? AND content_id = ?", userID, contentID).First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = models.UserContentProgress{
				UserID:    userID,
				CourseID:  uint(courseID),
				ContentID: uint(contentID),
				Completed: true,
			}
			if err := pc.DB.Create(&progress).Error; err != nil {
				return utils.InternalServerError(c, "Could not save progress")
			}
		} else {
			return utils.InternalServerError(c, "Could not query database")
		}
	} else {
		progress.Completed = !progress.Completed
		if err := pc.DB.Save(&progress).Error; err != nil {
			return utils.InternalServerError(c, "Could not save progress")
		}
	}

	return c.JSON(fiber.Map{
		"message":   "Progress updated",
		"completed": progress.Completed,
	})
}

// GetMyProgress возвращает процент завершения по каждому курсу для
// дашборда.
func (pc *ProgressController) GetMyProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var courses []models.Course
	if err := pc.DB.Preload("Contents").Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var overview []models.CourseProgressOverview
	for _, course := range courses {
		var completed int64
		pc.DB.Model(&models.UserContentProgress{}).
			Where("user_id = ? AND course_id = ? AND completed = true", userID, course.ID).
			Count(&completed)

		rate := 0.0
		if len(course.Contents) > 0 {
			rate = float64(completed) / float64(len(course.Contents)) * 100
		}

		overview = append(overview, models.CourseProgressOverview{
			CourseID:         course.ID,
			CourseTitle:      course.Title,
			ContentsTotal:    len(course.Contents),
			ContentsComplete: int(completed),
			CompletionRate:   rate,
		})
	}

	return c.JSON(fiber.Map{
		"progress": overview,
	})
}
