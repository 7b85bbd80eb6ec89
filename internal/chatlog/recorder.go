package chatlog

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/suphakit/gpu-advisor/internal/common"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Insert(ctx context.Context, rec *Interaction) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// ListByUser returns the most recent interactions for a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID string, limit int) ([]Interaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var recs []Interaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Recorder appends interaction records without ever blocking a turn. Writes
// happen on a goroutine with a detached timeout; failures are only logged.
type Recorder struct {
	repo    *Repo
	timeout time.Duration
}

func NewRecorder(repo *Repo) *Recorder {
	return &Recorder{repo: repo, timeout: 5 * time.Second}
}

func (rec *Recorder) Record(userID, question, answer string) {
	id, err := common.NewULID()
	if err != nil {
		log.Printf("chatlog: ulid failed user=%s err=%v", userID, err)
		return
	}

	row := &Interaction{
		ID:       id,
		UserID:   userID,
		Question: question,
		Answer:   answer,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), rec.timeout)
		defer cancel()
		if err := rec.repo.Insert(ctx, row); err != nil {
			log.Printf("chatlog: insert failed user=%s err=%v", userID, err)
		}
	}()
}
