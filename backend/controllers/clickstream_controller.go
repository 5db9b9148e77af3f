package controllers

import (
	"learnx/backend/clickstream"
	"learnx/backend/config"
	"learnx/backend/models"
	"learnx/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ClickstreamController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Capture *clickstream.Capture
}

func NewClickstreamController(db *gorm.DB, cfg *config.Config, capture *clickstream.Capture) *ClickstreamController {
	return &ClickstreamController{DB: db, Cfg: cfg, Capture: capture}
}

// currentSession резолвит актора текущего запроса для кликстрима.
func currentSession(c *fiber.Ctx, db *gorm.DB, cfg *config.Config) (clickstream.Session, error) {
	userID, err := utils.ExtractUserIDFromToken(c, cfg)
	if err != nil {
		return clickstream.Session{}, err
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return clickstream.Session{}, err
	}

	return clickstream.Session{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.Role == "admin",
	}, nil
}

// IngestInteraction godoc
// @Summary Ingest a UI interaction
// @Description Accepts a pointer-down interaction with the element chain and records a clickstream event for the nearest tagged element
// @Tags clickstream
// @Accept json
// @Produce json
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /events [post]
func (cc *ClickstreamController) IngestInteraction(c *fiber.Ctx) error {
	session, err := currentSession(c, cc.DB, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Pathname string               `json:"pathname"`
		Target   *clickstream.Element `json:"target"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// Непомеченные взаимодействия отбрасываются молча — это не ошибка,
	// просто не каждое нажатие отслеживается.
	accepted := cc.Capture.HandleInteraction(session, input.Target, input.Pathname)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"accepted": accepted,
	})
}
