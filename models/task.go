package models

import (
	"time"
)

// Cadence indicates how often a task repeats
type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
	CadenceYearly  Cadence = "yearly"
	CadenceOnce    Cadence = "once"
)

// Weight returns the ordinal XP weight of the cadence: daily(1) → weekly(2)
// → monthly(3) → yearly(4) → once(5). Unknown cadences weigh like one-time
// tasks.
func (c Cadence) Weight() int {
	switch c {
	case CadenceDaily:
		return 1
	case CadenceWeekly:
		return 2
	case CadenceMonthly:
		return 3
	case CadenceYearly:
		return 4
	case CadenceOnce:
		return 5
	default:
		return 5
	}
}

func (c Cadence) IsValid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly, CadenceYearly, CadenceOnce:
		return true
	default:
		return false
	}
}

// ParseCadence normalizes user input; anything unrecognized is treated as a
// one-time task.
func ParseCadence(s string) Cadence {
	c := Cadence(s)
	if c.IsValid() {
		return c
	}
	return CadenceOnce
}

// Task represents one actionable item owned by the player
type Task struct {
	ID   string `gorm:"primaryKey;type:uuid" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"index" json:"slug"`

	// OriginalDueDate is the immutable anchor for recurrence math; DueDate
	// advances on every recurring completion.
	OriginalDueDate time.Time `json:"original_due_date"`
	DueDate         time.Time `json:"due_date"`

	Priority   int `json:"priority" gorm:"default:1"`
	Difficulty int `json:"difficulty" gorm:"default:1"`

	RepeatInterval int     `json:"repeat_interval" gorm:"default:1"`
	Cadence        Cadence `json:"cadence" gorm:"default:'once'"`

	TimesCompleted int  `json:"times_completed" gorm:"default:0"`
	Streak         int  `json:"streak" gorm:"default:0"`
	Completed      bool `json:"completed" gorm:"default:false;index"`

	UserID string `gorm:"index" json:"user_id"`

	Timestamps
}
