package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/EasyDarwin/EasyLive/bilibili"
	"github.com/EasyDarwin/EasyLive/log"
)

const timeLayout = "2006-01-02 15:04:05"

// GetLiveInfo builds an on-demand status report for one room from a fresh
// status fetch plus the stored state. An unreachable room yields a
// one-line unavailable report instead of an error.
func (server *Server) GetLiveInfo(roomID string) string {
	sample, err := server.client.GetLiveStatus(roomID)
	if err != nil {
		log.Error("检查直播间 ", roomID, " 状态失败: ", err)
		return fmt.Sprintf("直播间 %s：无法获取直播信息", roomID)
	}

	anchor := server.names.Peek(roomID)
	statusText := "未开播"
	if sample.IsLive() {
		statusText = "直播中"
	}

	var info strings.Builder
	fmt.Fprintf(&info, "主播: %s\n直播间ID: %s\n状态: %s\n", anchor, roomID, statusText)

	state := server.states.GetState(roomID)
	if sample.IsLive() {
		if state != nil && state.LiveStartTime != nil {
			duration := time.Since(*state.LiveStartTime)
			hours := int(duration.Hours())
			minutes := int(duration.Minutes()) % 60
			seconds := int(duration.Seconds()) % 60
			fmt.Fprintf(&info, "开播时间: %s\n", state.LiveStartTime.Format(timeLayout))
			fmt.Fprintf(&info, "直播时长: %d小时%d分钟%d秒\n", hours, minutes, seconds)
		} else {
			info.WriteString("开播时间: 未知\n")
		}
	}

	if state != nil && state.LastCheckTime != nil {
		fmt.Fprintf(&info, "最后检查时间: %s\n", state.LastCheckTime.Format(timeLayout))
	}

	fmt.Fprintf(&info, "直播间链接: %s", bilibili.RoomURL(roomID))
	return info.String()
}
