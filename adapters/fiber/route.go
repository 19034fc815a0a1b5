// Package fiber binds the services to the HTTP surface.
package fiber

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"github.com/fewfast/HomieRanking-BackEnd/services"
)

type Adapter struct {
	app     *fiber.App
	auth    *services.AuthService
	users   *services.UserService
	quizzes *services.QuizService
	logger  zerolog.Logger
}

func New(app *fiber.App, auth *services.AuthService, users *services.UserService, quizzes *services.QuizService, logger zerolog.Logger) *Adapter {
	return &Adapter{
		app:     app,
		auth:    auth,
		users:   users,
		quizzes: quizzes,
		logger:  logger.With().Str("adapter", "http").Logger(),
	}
}

func (a *Adapter) RegisterRoutes(basePath string) {
	api := a.app.Group(basePath)
	api.Use(a.requestLogger)

	auth := api.Group("/auth")
	auth.Post("/signup", a.signup)
	auth.Post("/login", a.login)
	auth.Post("/logout", a.requireAuth, a.logout)
	auth.Get("/profile", a.requireAuth, a.profile)

	users := api.Group("/users")
	users.Get("/", a.listUsers)
	users.Get("/:username", a.getUser)
	users.Put("/:username", a.requireAuth, a.updateProfile)
	users.Put("/:username/follow", a.requireAuth, a.follow)
	users.Delete("/:username/follow", a.requireAuth, a.unfollow)

	quizzes := api.Group("/quizzes")
	quizzes.Post("/", a.requireAuth, a.createQuiz)
	quizzes.Get("/", a.listQuizzes)
	quizzes.Get("/:id", a.getQuiz)
	quizzes.Put("/:id", a.requireAuth, a.updateQuiz)
	quizzes.Delete("/:id", a.requireAuth, a.deleteQuiz)
}
