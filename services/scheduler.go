// services/scheduler.go
package services

import (
	"log"
	"time"

	"task-quest-system/models"

	"github.com/go-co-op/gocron/v2"
)

// StartDueScanner periodically logs tasks that are due today or overdue so
// pending work is visible without opening the app.
func (s *TaskService) StartDueScanner() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Every hour: report tasks due by end of day
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			now := time.Now()
			endOfDay := midnight(now).AddDate(0, 0, 1)
			var tasks []models.Task
			err := s.DB.Where("completed = ? AND due_date < ?", false, endOfDay).
				Order("due_date").
				Find(&tasks).Error
			if err != nil {
				log.Printf("[DueScanner] DB error: %v", err)
				return
			}

			for _, t := range tasks {
				if daysUntil(t.DueDate, now) < 0 {
					log.Printf("⚠️ Overdue task: %s (due %s)", t.Name, t.DueDate.Format("2006-01-02"))
				} else {
					log.Printf("⏰ Due today: %s", t.Name)
				}
			}
		}),
	)
}
