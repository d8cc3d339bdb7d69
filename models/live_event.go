package models

import (
	"time"

	"github.com/EasyDarwin/EasyLive/log"
	"github.com/MeloQi/EasyGoLib/db"
	"github.com/teris-io/shortid"
)

// LiveEvent is one recorded live/offline transition, kept for the history
// API. Audit data only; the monitor never reads it back.
type LiveEvent struct {
	ID         string    `gorm:"type:varchar(16);primary_key" json:"id"`
	RoomID     string    `gorm:"type:varchar(32);index" json:"roomId"`
	AnchorName string    `gorm:"type:varchar(64)" json:"anchorName"`
	BecameLive bool      `json:"becameLive"`
	Message    string    `gorm:"type:varchar(256)" json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SaveLiveEvent records one transition. No-op while the DB is not up.
func SaveLiveEvent(roomID, anchorName string, becameLive bool, message string) {
	if db.SQL == nil {
		return
	}
	event := &LiveEvent{
		ID:         shortid.MustGenerate(),
		RoomID:     roomID,
		AnchorName: anchorName,
		BecameLive: becameLive,
		Message:    message,
	}
	if result := db.SQL.Create(event); result.Error != nil {
		log.Warn(result.Error)
	}
}
