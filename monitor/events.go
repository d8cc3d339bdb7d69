package monitor

import "strings"

// LiveInfoCommand triggers the per-group status report.
const LiveInfoCommand = "liveinfo"

// OnGroupMessage handles one inbound group message and returns the texts
// to send back. Pending notifications for the group are always drained
// first; the liveinfo command additionally appends a status report for
// every room configured for that group.
func (server *Server) OnGroupMessage(groupID, text string) []string {
	replies := server.queue.Drain(groupID)

	if strings.ToLower(strings.TrimSpace(text)) != LiveInfoCommand {
		return replies
	}

	reports := make([]string, 0)
	for _, room := range server.rooms {
		if room.GroupID == groupID {
			reports = append(reports, server.GetLiveInfo(room.RoomID))
		}
	}
	if len(reports) > 0 {
		replies = append(replies, "直播间状态\n\n"+strings.Repeat("=", 20)+strings.Join(reports, "\n"))
	} else {
		replies = append(replies, "该群没有配置监控的直播间")
	}
	return replies
}
