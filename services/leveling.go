package services

import (
	"math"

	"task-quest-system/models"
)

// LevelUpResult reports what AddXP did to the user, for notifications.
type LevelUpResult struct {
	Amount       float64 `json:"amount"`
	LevelBefore  int     `json:"level_before"`
	LevelAfter   int     `json:"level_after"`
	LevelsGained int     `json:"levels_gained"`
}

// AddXP adds amount to the user's current and lifetime XP, then resolves
// level-ups. Resolution is a loop so a single large award can cascade
// through several levels and always leaves 0 <= XP < XPRequired.
//
// Each level-up raises the threshold by XPRequired/sqrt(Level), floored at
// 1 XP so requirements keep growing even at very high levels.
func AddXP(user *models.User, amount float64) LevelUpResult {
	res := LevelUpResult{Amount: amount, LevelBefore: user.Level}

	user.XP += amount
	user.TotalXP += amount

	for user.XP >= user.XPRequired {
		user.XP -= user.XPRequired
		growth := math.Max(1, user.XPRequired/math.Sqrt(float64(user.Level)))
		user.XPRequired = math.Max(1, math.Round(user.XPRequired+growth))
		user.Level++
	}

	res.LevelAfter = user.Level
	res.LevelsGained = user.Level - res.LevelBefore
	return res
}
