package controllers

import (
	"learnx/backend/clickstream"
	"learnx/backend/config"
	"learnx/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Agg *clickstream.Aggregator
}

func NewAnalyticsController(db *gorm.DB, cfg *config.Config, agg *clickstream.Aggregator) *AnalyticsController {
	return &AnalyticsController{DB: db, Cfg: cfg, Agg: agg}
}

// GetMyAnalytics возвращает персональную статистику обучения: время
// просмотра, средний балл по квизам и последнюю активность. Считается
// заново на каждый запрос по текущему состоянию журнала.
func (ac *AnalyticsController) GetMyAnalytics(c *fiber.Ctx) error {
	session, err := currentSession(c, ac.DB, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	stats, err := ac.Agg.UserStats(c.Context(), session.UserID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to compute analytics")
	}

	recent, err := ac.Agg.RecentActivity(c.Context(), session.UserID, 20)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch recent activity")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"stats":           stats,
		"recent_activity": recent,
	})
}

// GetSystemAnalytics godoc
// @Summary Platform-wide analytics
// @Description Returns system metrics and the event-type histogram (admin only)
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/analytics [get]
func (ac *AnalyticsController) GetSystemAnalytics(c *fiber.Ctx) error {
	stats, err := ac.Agg.SystemStats(c.Context())
	if err != nil {
		return utils.InternalServerError(c, "Failed to compute analytics")
	}

	recent, err := ac.Agg.RecentActivity(c.Context(), 0, 50)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch recent activity")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"stats":           stats,
		"recent_activity": recent,
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}

// ExportClickstream выгружает весь журнал в CSV-файл с детерминированным
// именем. Экспорт плоский: одна строка на запись, без вложенных данных.
func (ac *AnalyticsController) ExportClickstream(c *fiber.Ctx) error {
	events, err := ac.Agg.RecentActivity(c.Context(), 0, 0)
	if err != nil {
		return utils.InternalServerError(c, "Failed to read event log")
	}

	filename := clickstream.ExportFilename(time.Now())
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	if err := clickstream.WriteCSV(c.Response().BodyWriter(), events); err != nil {
		return utils.InternalServerError(c, "Failed to write export")
	}

	return nil
}
