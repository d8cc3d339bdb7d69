package routers

import (
	"time"

	"github.com/MeloQi/EasyGoLib/utils"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/penggy/cors"
)

var (
	Router *gin.Engine
	API    *APIHandler

	BuildVersion  = "v1.0"
	BuildDateTime = ""
)

type APIHandler struct {
}

func init() {
	API = &APIHandler{}
}

func Init() (err error) {
	if !utils.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	Router = gin.New()
	Router.Use(gin.Recovery())
	if utils.Debug {
		pprof.Register(Router)
	}
	Router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           50 * time.Second,
	}))

	api := Router.Group("/api/v1")
	{
		api.GET("/rooms", API.Rooms)
		api.GET("/liveinfo", API.LiveInfo)
		api.POST("/message", API.Message)
		api.GET("/events", API.Events)
		api.GET("/serverinfo", API.ServerInfo)
	}
	return
}
