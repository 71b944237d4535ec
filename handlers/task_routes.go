// handlers/task_routes.go
package handlers

import (
	"time"

	"task-quest-system/models"
	"task-quest-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTaskRoutes(app *fiber.App, taskService *services.TaskService) {
	app.Get("/tasks", func(c *fiber.Ctx) error {
		tasks, err := taskService.ListTasks()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list tasks",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"tasks": tasks,
			"today": time.Now().Format("2006-01-02"),
		})
	})

	app.Post("/tasks", func(c *fiber.Ctx) error {
		var req struct {
			Name           string `json:"name"`
			DueDate        string `json:"due_date"`
			Priority       int    `json:"priority"`
			Difficulty     int    `json:"difficulty"`
			RepeatInterval int    `json:"repeat_interval"`
			Cadence        string `json:"cadence"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		dueDate, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			dueDate = time.Now()
			dueDate = time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, dueDate.Location())
		}

		task, err := taskService.AddTask(
			req.Name,
			dueDate,
			atLeastOne(req.Priority),
			atLeastOne(req.Difficulty),
			atLeastOne(req.RepeatInterval),
			models.ParseCadence(req.Cadence),
		)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create task",
				"cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(task)
	})

	app.Post("/tasks/:id/complete", func(c *fiber.Ctx) error {
		result, err := taskService.CompleteTask(c.Params("id"), time.Now())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to complete task",
				"cause": err.Error(),
			})
		}
		if result == nil {
			// Unknown task or missing player — treated as an idempotent no-op
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.JSON(result)
	})

	app.Delete("/tasks/:id", func(c *fiber.Ctx) error {
		if err := taskService.DeleteTask(c.Params("id")); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to delete task",
				"cause": err.Error(),
			})
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
