package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/EasyDarwin/EasyLive/log"
	"github.com/EasyDarwin/EasyLive/models"
	"github.com/EasyDarwin/EasyLive/monitor"
	"github.com/EasyDarwin/EasyLive/routers"
	"github.com/EasyDarwin/EasyLive/utils"
	u "github.com/MeloQi/EasyGoLib/utils"
	"github.com/MeloQi/service"
	"github.com/common-nighthawk/go-figure"
)

var (
	gitCommitCode string
	buildDateTime string
)

type program struct {
	httpPort   int
	httpServer *http.Server
	monitor    *monitor.Server
}

func (p *program) StopHTTP() (err error) {
	if p.httpServer == nil {
		err = fmt.Errorf("HTTP Server Not Found")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = p.httpServer.Shutdown(ctx); err != nil {
		return
	}
	return
}

func (p *program) StartHTTP() (err error) {
	p.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", p.httpPort),
		Handler:           routers.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info("http server start -->", utils.GetHostName())
	go func() {
		if err := p.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("start http server error: ", err)
		}
		log.Info("http server end")
	}()
	return
}

func (p *program) StartMonitor() (err error) {
	if p.monitor == nil {
		err = fmt.Errorf("Monitor Server Not Found")
		return
	}
	return p.monitor.Start()
}

func (p *program) StopMonitor() (err error) {
	if p.monitor == nil {
		err = fmt.Errorf("Monitor Server Not Found")
		return
	}
	p.monitor.Stop()
	return
}

func (p *program) Start(s service.Service) (err error) {
	log.Info("********** START **********")
	if u.IsPortInUse(p.httpPort) {
		err = fmt.Errorf("HTTP port[%d] In Use", p.httpPort)
		return
	}
	err = models.Init()
	if err != nil {
		return
	}
	err = routers.Init()
	if err != nil {
		return
	}
	p.StartMonitor()
	p.StartHTTP()

	if !u.Debug {
		log.Debug("log files -->", u.LogDir())
		log.SetOutput(log.FileOutput())
	}
	return
}

func (p *program) Stop(s service.Service) (err error) {
	defer log.Info("********** STOP **********")
	defer log.CloseFileOutput()
	p.StopHTTP()
	p.StopMonitor()
	models.Close()
	return
}

func main() {
	flag.StringVar(&u.FlagVarConfFile, "config", "", "configure file path")
	flag.Parse()
	tail := flag.Args()

	log.Info("git commit code: ", gitCommitCode)
	log.Info("build date: ", buildDateTime)
	routers.BuildVersion = fmt.Sprintf("%s.%s", routers.BuildVersion, gitCommitCode)
	routers.BuildDateTime = buildDateTime

	sec := u.Conf().Section("service")
	svcConfig := &service.Config{
		Name:        sec.Key("name").MustString("EasyLive_Service"),
		DisplayName: sec.Key("display_name").MustString("EasyLive_Service"),
		Description: sec.Key("description").MustString("EasyLive_Service"),
	}

	httpPort := u.Conf().Section("http").Key("port").MustInt(10008)
	p := &program{
		httpPort: httpPort,
		monitor:  monitor.GetServer(),
	}
	s, err := service.New(p, svcConfig)
	if err != nil {
		log.Error(err)
		u.PauseExit()
	}
	if len(tail) > 0 {
		cmd := strings.ToLower(tail[0])
		if cmd == "install" || cmd == "stop" || cmd == "start" || cmd == "uninstall" {
			figure.NewFigure("EasyLive", "", false).Print()
			log.Info(svcConfig.Name, " ", cmd, "...")
			if err = service.Control(s, cmd); err != nil {
				log.Error(err)
				u.PauseExit()
			}
			log.Info(svcConfig.Name, " ", cmd, " ok")
			return
		}
	}
	figure.NewFigure("EasyLive", "", false).Print()
	if err = s.Run(); err != nil {
		log.Error(err)
		u.PauseExit()
	}
}
