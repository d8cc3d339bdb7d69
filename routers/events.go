package routers

import (
	"net/http"
	"strings"

	"github.com/EasyDarwin/EasyLive/log"
	"github.com/EasyDarwin/EasyLive/models"
	"github.com/MeloQi/EasyGoLib/db"
	"github.com/MeloQi/EasyGoLib/utils"
	"github.com/gin-gonic/gin"
)

/**
 * @api {get} /api/v1/events 获取开播/下播历史
 * @apiGroup room
 * @apiName Events
 * @apiParam {Number} [start] 分页开始,从零开始
 * @apiParam {Number} [limit] 分页大小
 * @apiParam {String=ascending,descending} [order] 按时间排序顺序
 * @apiParam {String} [q] 房间号过滤
 * @apiSuccess (200) {Number} total 总数
 * @apiSuccess (200) {Array} rows 事件列表
 */
func (h *APIHandler) Events(c *gin.Context) {
	form := utils.NewPageForm()
	if err := c.Bind(form); err != nil {
		log.Error("events bind err: ", err)
		return
	}
	if db.SQL == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, "database not ready")
		return
	}
	query := db.SQL.Model(&models.LiveEvent{})
	if form.Q != "" {
		query = query.Where("room_id = ?", form.Q)
	}
	var total int64
	query.Count(&total)

	order := "created_at desc"
	if strings.EqualFold(form.Order, "ascending") {
		order = "created_at asc"
	}
	limit := form.Limit
	if limit <= 0 {
		limit = 100
	}
	var rows []models.LiveEvent
	if result := query.Order(order).Offset(form.Start).Limit(limit).Find(&rows); result.Error != nil {
		log.Error("query events err: ", result.Error)
		c.AbortWithStatusJSON(http.StatusInternalServerError, result.Error.Error())
		return
	}
	c.IndentedJSON(http.StatusOK, map[string]interface{}{
		"total": total,
		"rows":  rows,
	})
}
