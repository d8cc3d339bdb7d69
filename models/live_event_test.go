package models

import (
	"path/filepath"
	"testing"

	"github.com/MeloQi/EasyGoLib/db"
)

func TestLiveEvent(t *testing.T) {
	err := db.Init(&db.DBConfig{
		Type:     db.SQLite,
		File:     filepath.Join(t.TempDir(), "easylive_test.db"),
		URI:      "",
		LogLevel: "silent",
	})
	if err != nil {
		return
	}
	defer db.Close()
	db.SQL.AutoMigrate(LiveEvent{})

	SaveLiveEvent("7857879", "某主播", true, "某主播 开播了！")
	SaveLiveEvent("7857879", "某主播", false, "某主播 的直播已结束。")

	var events []LiveEvent
	if result := db.SQL.Where("room_id = ?", "7857879").Order("created_at asc").Find(&events); result.Error != nil {
		t.Fatal(result.Error)
	}
	if len(events) != 2 {
		t.Fatal("expected 2 events, got ", len(events))
	}
	if !events[0].BecameLive || events[1].BecameLive {
		t.Error("event order or direction wrong")
	}
	if events[0].ID == "" || events[0].ID == events[1].ID {
		t.Error("event ids not unique")
	}
}
