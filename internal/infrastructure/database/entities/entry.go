package entities

import "time"

// Entry models the persisted representation of a guestbook entry. The store
// assigns the id and creation time; author and text are immutable afterwards.
type Entry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Author    string    `gorm:"type:text;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Entry) TableName() string {
	return "entries"
}
