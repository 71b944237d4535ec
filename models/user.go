package models

import (
	"time"

	"gorm.io/gorm"
)

// User tracks gamified progression for the player (denormalized for performance)
type User struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`

	// Core progression
	XP         float64 `json:"xp" gorm:"default:0"`
	XPRequired float64 `json:"xp_required" gorm:"default:1"`
	TotalXP    float64 `json:"total_xp" gorm:"default:0"`
	Level      int     `json:"level" gorm:"default:1"`

	// Activity counters
	TasksCompleted      int       `json:"tasks_completed" gorm:"default:0"`
	LastCompletionDate  time.Time `json:"last_completion_date"`
	DailyStreak         int       `json:"daily_streak" gorm:"default:0"`
	DailyTasksCompleted int       `json:"daily_tasks_completed" gorm:"default:0"`
	DaysCompleted       int       `json:"days_completed" gorm:"default:0"`

	// Combo tracking
	ComboMultiplier   int    `json:"combo_multiplier" gorm:"default:0"`
	LastTaskCompleted string `json:"last_task_completed"` // task ID, empty means none yet

	// Rapid-completion tracking
	LastClickedAt   time.Time `json:"last_clicked_at"`
	ClickMultiplier int       `json:"click_multiplier" gorm:"default:1"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
