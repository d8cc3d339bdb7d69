package routers

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

var startTime = time.Now()

/**
 * @apiDefine stats 统计
 */

/**
 * @api {get} /api/v1/serverinfo 获取服务信息
 * @apiGroup stats
 * @apiName ServerInfo
 * @apiSuccess (200) {String} Hardware 硬件信息
 * @apiSuccess (200) {String} RunningTime 运行时间
 * @apiSuccess (200) {String} StartUpTime 启动时间
 * @apiSuccess (200) {String} Server 服务版本
 */
func (h *APIHandler) ServerInfo(c *gin.Context) {
	memData, _ := mem.VirtualMemory()
	cpuUsedPercent, _ := cpu.Percent(0, false)
	c.IndentedJSON(http.StatusOK, map[string]interface{}{
		"Hardware":         strings.ToUpper(runtime.GOARCH),
		"InterfaceVersion": "V1",
		"RunningTime":      time.Since(startTime).Round(time.Second).String(),
		"StartUpTime":      startTime.Format("2006-01-02 15:04:05"),
		"Server":           fmt.Sprintf("EasyLive/%s,%s (Platform/%s;)", BuildVersion, BuildDateTime, strings.Title(runtime.GOOS)),
		"memData":          memData,
		"cpuData":          cpuUsedPercent,
	})
}
