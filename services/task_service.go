package services

import (
	"errors"
	"fmt"
	"time"

	"task-quest-system/models"
	"task-quest-system/utils"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// DefaultUsername is the name of the single player row created at startup.
const DefaultUsername = "Player"

type TaskService struct {
	DB *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{DB: db}
}

// CompleteResult reports the outcome of a completion for notifications.
type CompleteResult struct {
	Task      models.Task   `json:"task"`
	User      models.User   `json:"user"`
	XPAwarded float64       `json:"xp_awarded"`
	Message   string        `json:"message"`
	LevelUp   LevelUpResult `json:"level_up"`
}

// EnsureUser ensures the single player row exists (idempotent).
func (s *TaskService) EnsureUser() (*models.User, error) {
	var user models.User
	err := s.DB.Order("created_at").First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	user = models.User{
		ID:                 uuid.NewString(),
		Username:           DefaultUsername,
		XPRequired:         1,
		Level:              1,
		LastCompletionDate: now,
		LastClickedAt:      now,
		ClickMultiplier:    1,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser returns the single player row.
func (s *TaskService) GetUser() (*models.User, error) {
	var user models.User
	if err := s.DB.Order("created_at").First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListTasks returns all tasks sorted by due date.
func (s *TaskService) ListTasks() ([]models.Task, error) {
	var tasks []models.Task
	err := s.DB.Order("due_date").Find(&tasks).Error
	return tasks, err
}

// AddTask creates a task owned by the player. The due date doubles as the
// immutable recurrence anchor; all counters start at zero.
func (s *TaskService) AddTask(name string, dueDate time.Time, priority, difficulty, interval int, cadence models.Cadence) (*models.Task, error) {
	user, err := s.EnsureUser()
	if err != nil {
		return nil, err
	}

	task := models.Task{
		ID:              uuid.NewString(),
		Name:            name,
		Slug:            slug.Make(name),
		OriginalDueDate: dueDate,
		DueDate:         dueDate,
		Priority:        priority,
		Difficulty:      difficulty,
		RepeatInterval:  interval,
		Cadence:         cadence,
		UserID:          user.ID,
	}
	if err := s.DB.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// CompleteTask runs the full completion pipeline for the task with the
// given ID: advance the recurrence, score the timing, roll the player's
// streak/combo counters forward and award XP. One-time tasks are simply
// marked completed with a neutral due multiplier. Missing task or player
// is a silent no-op (nil result, nil error).
//
// Everything happens inside one transaction so a failure leaves both rows
// untouched, and the active-task count is consistent with the commit. The
// count is read after the task row is saved: a one-time task no longer
// counts itself, a recurring one still does.
func (s *TaskService) CompleteTask(taskID string, now time.Time) (*CompleteResult, error) {
	var result *CompleteResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, "id = ?", taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		var user models.User
		if err := tx.Order("created_at").First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		dueMult := 1.0
		if task.Cadence == models.CadenceOnce {
			task.Completed = true
		} else {
			task.TimesCompleted++
			task.DueDate = NextDueDate(task.OriginalDueDate, task.TimesCompleted, task.RepeatInterval, task.Cadence)
			dueMult = DueMultiplier(task.DueDate, now)
			if daysUntil(task.DueDate, now) < 0 {
				task.Streak = 0
			} else {
				task.Streak++
			}
		}
		repeatMult := RepeatMultiplier(task.Cadence, task.RepeatInterval)

		if err := tx.Save(&task).Error; err != nil {
			return err
		}

		var activeTasks int64
		if err := tx.Model(&models.Task{}).Where("completed = ?", false).Count(&activeTasks).Error; err != nil {
			return err
		}

		applyDailyActivity(&user, now)
		applyCombo(&user, task.ID)
		applyRapidClick(&user, now)

		award := XPAward(&task, &user, int(activeTasks), dueMult, repeatMult)
		levelUp := AddXP(&user, award)

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		formatted, err := utils.ShortNumeric(award)
		if err != nil {
			return err
		}

		result = &CompleteResult{
			Task:      task,
			User:      user,
			XPAwarded: award,
			Message:   fmt.Sprintf("Task completed! You gained %s XP!", formatted),
			LevelUp:   levelUp,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteTask removes the task unconditionally; missing task is a no-op.
func (s *TaskService) DeleteTask(taskID string) error {
	return s.DB.Where("id = ?", taskID).Delete(&models.Task{}).Error
}
