package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jarad-ux/eccocontrol-center/internal/application/callcenter"
	"github.com/jarad-ux/eccocontrol-center/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	RepUC        *usecase.RepUseCase
	SubmissionUC *usecase.SubmissionUseCase
	SettingsUC   *usecase.SettingsUseCase
	StatsUC      *usecase.StatsUseCase
	CallCenterUC *callcenter.UseCase

	SessionSecret string
	Issuer        string
}

// Router registers the API routes. Everything under /api requires a valid
// Bearer token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.SessionSecret, deps.Issuer))

	reps := api.Group("/sales-reps")
	repHandler := NewRepHandler(deps.RepUC)
	reps.Get("/", repHandler.List)
	reps.Get("/me", repHandler.Me)
	reps.Post("/", repHandler.Create)
	reps.Patch("/:id", repHandler.Update)

	sales := api.Group("/sales")
	submissionHandler := NewSubmissionHandler(deps.SubmissionUC)
	sales.Get("/", submissionHandler.List)
	sales.Post("/", submissionHandler.Create)
	sales.Get("/:id", submissionHandler.GetByID)
	sales.Patch("/:id", submissionHandler.Update)
	sales.Get("/:id/pdf", submissionHandler.WorkOrder)

	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Patch("/", settingsHandler.Update)

	statsHandler := NewStatsHandler(deps.StatsUC)
	api.Get("/stats", statsHandler.Get)

	callCenter := api.Group("/call-center")
	callCenterHandler := NewCallCenterHandler(deps.CallCenterUC)
	callCenter.Get("/calls", callCenterHandler.Calls)
	callCenter.Get("/stats", callCenterHandler.Stats)
}
