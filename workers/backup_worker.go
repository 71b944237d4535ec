package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"task-quest-system/models"
	"task-quest-system/utils"

	"gorm.io/gorm"
)

// BackupClient snapshots the player and task tables to object storage.
type BackupClient struct {
	DB *gorm.DB
}

func NewBackupClient(db *gorm.DB) *BackupClient {
	return &BackupClient{DB: db}
}

type snapshot struct {
	TakenAt time.Time     `json:"taken_at"`
	User    *models.User  `json:"user,omitempty"`
	Tasks   []models.Task `json:"tasks"`
}

// Snapshot serializes the current progress state to JSON.
func (c *BackupClient) Snapshot() ([]byte, error) {
	var snap snapshot
	snap.TakenAt = time.Now().UTC()

	var user models.User
	if err := c.DB.Order("created_at").First(&user).Error; err == nil {
		snap.User = &user
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if err := c.DB.Order("due_date").Find(&snap.Tasks).Error; err != nil {
		return nil, err
	}

	return json.Marshal(snap)
}

// PollBackups uploads a progress snapshot to R2 on every tick until the
// context is cancelled. Failures are logged and retried next tick.
func PollBackups(ctx context.Context, client *BackupClient, pollInterval time.Duration) {
	log.Println("Starting progress backup polling...")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Progress backup polling stopped.")
			return
		case <-ticker.C:
			data, err := client.Snapshot()
			if err != nil {
				log.Printf("❌ Failed to build progress snapshot: %v", err)
				continue
			}

			key := fmt.Sprintf("backups/progress-%s.json", time.Now().UTC().Format("20060102-150405"))
			if err := utils.UploadBytesToR2(key, "application/json", data); err != nil {
				log.Printf("❌ Failed to upload snapshot %s: %v", key, err)
				continue
			}

			log.Printf("✅ Uploaded progress snapshot %s (%d bytes)", key, len(data))
		}
	}
}
