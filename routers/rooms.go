package routers

import (
	"net/http"

	"github.com/EasyDarwin/EasyLive/log"
	"github.com/EasyDarwin/EasyLive/monitor"
	"github.com/gin-gonic/gin"
)

/**
 * @apiDefine room 直播间
 */

/**
 * @api {get} /api/v1/rooms 获取监控的直播间列表
 * @apiGroup room
 * @apiName Rooms
 * @apiSuccess (200) {Array} rows 直播间列表
 * @apiSuccess (200) {String} rows.roomId 房间号
 * @apiSuccess (200) {String} rows.groupId 通知群号
 * @apiSuccess (200) {String} rows.status 当前状态
 * @apiSuccess (200) {String} rows.liveStartAt 开播时间
 * @apiSuccess (200) {String} rows.lastCheckAt 最后检查时间
 */
func (h *APIHandler) Rooms(c *gin.Context) {
	server := monitor.GetServer()
	rooms := server.Rooms()
	rows := make([]interface{}, 0, len(rooms))
	for _, room := range rooms {
		row := map[string]interface{}{
			"roomId":      room.RoomID,
			"groupId":     room.GroupID,
			"status":      monitor.StateUnknown.String(),
			"liveStartAt": "",
			"lastCheckAt": "",
		}
		if state := server.GetState(room.RoomID); state != nil {
			row["status"] = state.LastStatus.String()
			if state.LiveStartTime != nil {
				row["liveStartAt"] = state.LiveStartTime.Format("2006-01-02 15:04:05")
			}
			if state.LastCheckTime != nil {
				row["lastCheckAt"] = state.LastCheckTime.Format("2006-01-02 15:04:05")
			}
		}
		rows = append(rows, row)
	}
	c.IndentedJSON(http.StatusOK, map[string]interface{}{
		"total": len(rows),
		"rows":  rows,
	})
}

/**
 * @api {get} /api/v1/liveinfo 查询直播间实时状态
 * @apiGroup room
 * @apiName LiveInfo
 * @apiParam {String} room_id 房间号
 * @apiSuccess (200) {String} report 格式化好的状态报告
 */
func (h *APIHandler) LiveInfo(c *gin.Context) {
	type Form struct {
		RoomID string `form:"room_id" binding:"required"`
	}
	var form Form
	err := c.Bind(&form)
	if err != nil {
		log.Error("liveinfo bind err: ", err)
		return
	}
	c.IndentedJSON(http.StatusOK, map[string]interface{}{
		"report": monitor.GetServer().GetLiveInfo(form.RoomID),
	})
}

/**
 * @api {post} /api/v1/message 群消息入口
 * @apiDescription 宿主收到群消息后转发到此接口。积压的开播/下播通知只会
 * 在这里作为应答返回，不会主动推送。消息内容为 liveinfo 时额外返回该群
 * 配置的全部直播间状态报告。
 * @apiGroup room
 * @apiName Message
 * @apiParam {String} group_id 群号
 * @apiParam {String} [text] 消息内容
 * @apiSuccess (200) {Array} replies 应答消息列表，可能为空
 */
func (h *APIHandler) Message(c *gin.Context) {
	type Form struct {
		GroupID string `json:"group_id" binding:"required"`
		Text    string `json:"text"`
	}
	var form Form
	err := c.BindJSON(&form)
	if err != nil {
		log.Error("message bind err: ", err)
		return
	}
	replies := monitor.GetServer().OnGroupMessage(form.GroupID, form.Text)
	if replies == nil {
		replies = make([]string, 0)
	}
	c.IndentedJSON(http.StatusOK, map[string]interface{}{
		"replies": replies,
	})
}
