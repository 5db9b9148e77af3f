package routes

import (
	"learnx/backend/clickstream"
	"learnx/backend/config"
	"learnx/backend/controllers"
	"learnx/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *clickstream.Logger, capture *clickstream.Capture, agg *clickstream.Aggregator) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg, logger)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Clickstream ingestion
	clickstreamController := controllers.NewClickstreamController(db, cfg, capture)
	app.Post("/api/events", authMiddleware, clickstreamController.IngestInteraction)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	app.Get("/api/progress", authMiddleware, progressController.GetMyProgress)

	// Courses routes
	coursesController := controllers.NewCoursesController(db, cfg)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)
	courses.Post("/:id/contents/:contentId/complete", progressController.ToggleCompletion)

	// Quiz submission
	quizController := controllers.NewQuizController(db, cfg, logger)
	courses.Post("/:id/quiz/:contentId/submit", quizController.SubmitQuiz)

	// Analytics routes
	analyticsController := controllers.NewAnalyticsController(db, cfg, agg)
	app.Get("/api/analytics/me", authMiddleware, analyticsController.GetMyAnalytics)

	// Admin routes for courses and content
	adminCourses := app.Group("/api/admin/courses", authMiddleware, adminMiddleware)
	adminCourses.Post("/", coursesController.CreateCourse)
	adminCourses.Put("/:id", coursesController.UpdateCourse)
	adminCourses.Delete("/:id", coursesController.DeleteCourse)
	adminCourses.Post("/:id/contents", coursesController.AddContent)
	adminCourses.Put("/:id/contents/:contentId", coursesController.UpdateContent)
	adminCourses.Delete("/:id/contents/:contentId", coursesController.DeleteContent)
	adminCourses.Post("/:id/contents/:contentId/questions", coursesController.AddQuestion)
	adminCourses.Put("/:id/contents/:contentId/questions/:questionId", coursesController.UpdateQuestion)
	adminCourses.Delete("/:id/contents/:contentId/questions/:questionId", coursesController.DeleteQuestion)

	// Admin routes for users and analytics
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Get("/users", userController.ListUsers)
	admin.Put("/users/:id/role", userController.SetUserRole)
	admin.Get("/analytics", analyticsController.GetSystemAnalytics)
	admin.Get("/analytics/export", analyticsController.ExportClickstream)
}
