package api

import (
	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
)

// NewApp builds the fiber application with every scheduling route under /api/v1.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler := NewSchedulerHandlerImpl(cfg)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/simulate/:policy", handler.Simulate)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/recommend", handler.Recommend)
	}
	return app
}
