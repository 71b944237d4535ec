// handlers/progress_routes.go
package handlers

import (
	"task-quest-system/services"
	"task-quest-system/utils"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoutes(app *fiber.App, taskService *services.TaskService) {
	app.Get("/user/progress", func(c *fiber.Ctx) error {
		user, err := taskService.GetUser()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch progress",
				"cause": err.Error(),
			})
		}

		xpShort, err := utils.ShortNumeric(user.XP)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to format XP",
				"cause": err.Error(),
			})
		}
		xpRequiredShort, err := utils.ShortNumeric(user.XPRequired)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to format XP",
				"cause": err.Error(),
			})
		}
		totalXPShort, err := utils.ShortNumeric(user.TotalXP)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to format XP",
				"cause": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"id":                    user.ID,
			"username":              user.Username,
			"level":                 user.Level,
			"level_title":           levelTitle(user.Level),
			"xp":                    user.XP,
			"xp_short":              xpShort,
			"xp_required":           user.XPRequired,
			"xp_required_short":     xpRequiredShort,
			"total_xp":              user.TotalXP,
			"total_xp_short":        totalXPShort,
			"tasks_completed":       user.TasksCompleted,
			"daily_streak":          user.DailyStreak,
			"daily_tasks_completed": user.DailyTasksCompleted,
			"days_completed":        user.DaysCompleted,
			"combo_multiplier":      user.ComboMultiplier,
			"last_completion_date":  user.LastCompletionDate,
		})
	})
}

func levelTitle(level int) string {
	switch {
	case level >= 100:
		return "Legend"
	case level >= 50:
		return "Master"
	case level >= 25:
		return "Veteran"
	case level >= 10:
		return "Adept"
	case level >= 5:
		return "Apprentice"
	default:
		return "Novice"
	}
}
