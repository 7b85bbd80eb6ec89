package chatlog

import "time"

// Interaction is one logged conversation turn. Append-only; nothing in the
// conversational path ever reads it back.
type Interaction struct {
	ID        string    `gorm:"primaryKey;size:26" json:"id"` // ULID
	UserID    string    `gorm:"type:varchar(64);index;not null" json:"user_id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

func (Interaction) TableName() string { return "interactions" }
