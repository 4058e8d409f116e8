package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"quizmaster/internal/auth"
	"quizmaster/internal/config"
	"quizmaster/internal/leaderboard"
	"quizmaster/internal/middlewares"
	"quizmaster/internal/question"
	"quizmaster/internal/result"
	"quizmaster/internal/user"
)

type RouterConfig struct {
	UserHandler        *user.Handler
	QuestionHandler    *question.Handler
	ResultHandler      *result.Handler
	LeaderboardHandler *leaderboard.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)

		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Mount("/questions", question.Routes(cfg.QuestionHandler))
			r.Mount("/results", result.Routes(cfg.ResultHandler))
			r.Mount("/profile", user.Routes(cfg.UserHandler))

			r.Get("/leaderboard", cfg.LeaderboardHandler.Get)
			r.Get("/categories", cfg.QuestionHandler.Categories)
		})
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
