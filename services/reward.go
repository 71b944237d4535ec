package services

import (
	"math"
	"time"

	"task-quest-system/models"
)

// rapidClickWindow is how close two completions must be for the click
// multiplier to keep climbing.
const rapidClickWindow = 5 * time.Second

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysUntil returns the whole-day calendar distance from now's date to
// due's date; negative when due is in the past. Each operand's date is
// read in its own location so mixed-location inputs (UTC-parsed due
// dates against local clocks) still compare as pure calendar dates.
func daysUntil(due, now time.Time) int {
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(n).Hours() / 24)
}

// DueMultiplier scores the timing of a recurring completion against the
// task's (already advanced) due date.
//
// Due in the future: 1 + 1/(daysToDue+1), approaching 1 as the due date
// recedes and 1.5 when due tomorrow. Overdue: -2/(daysToDue-1), shrinking
// toward 0 the longer the task sits late; both denominators are clamped
// away from zero. Due today: 4/(1+fractionOfDayRemaining), from 2 just
// after midnight up to 4 right before the day rolls over, so last-minute
// completions pay best.
func DueMultiplier(due, now time.Time) float64 {
	daysToDue := daysUntil(due, now)
	switch {
	case daysToDue > 0:
		denom := daysToDue + 1
		if denom < 1 {
			denom = 1
		}
		return 1 + 1/float64(denom)
	case daysToDue < 0:
		denom := daysToDue - 1
		if denom > -1 {
			denom = -1
		}
		return -2 / float64(denom)
	default:
		nextMidnight := midnight(now).AddDate(0, 0, 1)
		remaining := float64(nextMidnight.Sub(now)) / float64(24*time.Hour)
		return 4 / (1 + remaining)
	}
}

// RepeatMultiplier maps a task's cadence and interval onto a 1x–5x effort
// scale: anchored at 1x for daily, 2x weekly, 3x monthly, 4x yearly and 5x
// one-time, with linear interpolation between anchors as the interval
// spans more base periods.
func RepeatMultiplier(cadence models.Cadence, interval int) float64 {
	n := float64(interval)
	switch cadence {
	case models.CadenceDaily:
		switch {
		case interval < 7: // 7 days is 1 week
			return 1 + (n-1)/(7-1)
		case interval < 30: // approximately 30 days is 1 month
			return 2 + (n-7)/(30-7)
		case interval < 365: // approximately 365 days is 1 year
			return 3 + (n-30)/(365-30)
		default:
			return 5 - 365/n
		}
	case models.CadenceWeekly:
		switch {
		case interval < 4: // approximately 4 weeks is 1 month
			return 2 + (n-1)/(4-1)
		case interval < 52: // approximately 52 weeks is 1 year
			return 3 + (n-4)/(52-4)
		default:
			return 5 - 52/n
		}
	case models.CadenceMonthly:
		if interval < 12 { // 12 months is 1 year
			return 3 + (n-1)/(12-1)
		}
		return 5 - 12/n
	case models.CadenceYearly:
		return 5 - 1/n
	default:
		return 5
	}
}

// XPAward evaluates the reward formula for one completion. All counters on
// task and user must already reflect this completion (streaks, combo and
// daily activity updated first). Logarithm arguments are floored at 1 so
// zero counts never go negative.
func XPAward(task *models.Task, user *models.User, activeTasks int, dueMult, repeatMult float64) float64 {
	xp := float64(task.Priority) *
		float64(task.Difficulty) *
		float64(task.Cadence.Weight()) *
		repeatMult *
		(1 + math.Log(math.Max(float64(task.TimesCompleted), 1))) *
		(1 + math.Log(math.Max(float64(user.TasksCompleted), 1))) *
		(1 + math.Log(math.Max(float64(activeTasks), 1))) *
		(1 + float64(user.DailyStreak)/10) *
		(1 + float64(user.DailyTasksCompleted)/10) *
		(1 + math.Log(math.Max(float64(user.DaysCompleted), 1))) *
		(1 + float64(task.Streak)/10) *
		dueMult *
		(1 + float64(user.ComboMultiplier)/10)
	return math.Round(xp) + float64(user.ComboMultiplier)
}

// applyDailyActivity rolls the user's per-day counters forward for a
// completion happening at now. Exactly one day since the last completion
// extends the daily streak; a longer gap restarts it; a same-day
// completion just bumps the daily count.
func applyDailyActivity(user *models.User, now time.Time) {
	user.TasksCompleted++

	// The previous completion's midnight is rebuilt in now's location so
	// a stored UTC timestamp compares as a calendar date on local hosts.
	last := user.LastCompletionDate
	lastMidnight := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, now.Location())
	elapsedDays := int(now.Sub(lastMidnight).Hours() / 24)
	switch {
	case elapsedDays == 1:
		user.DailyStreak++
		user.DailyTasksCompleted = 1
		user.DaysCompleted++
	case elapsedDays > 1:
		user.DailyStreak = 1
		user.DailyTasksCompleted = 1
		user.DaysCompleted++
	default:
		user.DailyTasksCompleted++
	}
	user.LastCompletionDate = now
}

// applyCombo bumps the combo when the same task is completed twice in a
// row and resets it on any other task.
func applyCombo(user *models.User, taskID string) {
	if taskID == user.LastTaskCompleted {
		user.ComboMultiplier++
	} else {
		user.ComboMultiplier = 0
	}
	user.LastTaskCompleted = taskID
}

// applyRapidClick tracks back-to-back completions within the rapid-click
// window. Tracked state only; it does not feed the XP formula.
func applyRapidClick(user *models.User, now time.Time) {
	since := now.Sub(user.LastClickedAt)
	if since < 0 {
		since = -since
	}
	if since < rapidClickWindow {
		user.ClickMultiplier++
	} else {
		user.ClickMultiplier = 1
	}
	user.LastClickedAt = now
}
