package monitor

import (
	"sync"
	"time"

	"github.com/EasyDarwin/EasyLive/bilibili"
	"github.com/EasyDarwin/EasyLive/log"
	"github.com/EasyDarwin/EasyLive/models"
)

// Server owns the polling loop and the shared room state, name cache and
// notification queue.
type Server struct {
	Stopped bool

	rooms    []RoomConfig
	interval time.Duration
	client   *bilibili.Client
	states   *StateMachine
	names    *NameCache
	queue    *NotificationQueue

	started  bool
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

var instance *Server = nil

func GetServer() *Server {
	if instance == nil {
		instance = NewServer(LoadConfig())
	}
	return instance
}

func NewServer(cfg Config) *Server {
	client := bilibili.NewClient(cfg.APIBase)
	names := NewNameCache(client)
	return &Server{
		Stopped:  true,
		rooms:    ParseRoomConfigs(cfg.RoomConfigs),
		interval: time.Duration(cfg.CheckInterval) * time.Second,
		client:   client,
		states:   NewStateMachine(names),
		names:    names,
		queue:    NewNotificationQueue(),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Rooms returns the configured room/group bindings in config order.
func (server *Server) Rooms() []RoomConfig {
	rooms := make([]RoomConfig, len(server.rooms))
	copy(rooms, server.rooms)
	return rooms
}

// GetState returns a copy of a room's stored state, or nil before the
// first successful sample.
func (server *Server) GetState(roomID string) *RoomState {
	return server.states.GetState(roomID)
}

func (server *Server) Start() (err error) {
	server.Stopped = false
	server.started = true
	log.Info("monitor start, rooms: ", len(server.rooms), ", interval: ", server.interval)
	go server.loop()
	return
}

// Stop signals the loop and releases the HTTP client once the current
// cycle has finished.
func (server *Server) Stop() {
	server.stopOnce.Do(func() {
		server.Stopped = true
		close(server.stopCh)
	})
	if server.started {
		<-server.done
	}
	server.client.Close()
}

func (server *Server) loop() {
	defer close(server.done)
	for {
		select {
		case <-server.stopCh:
			log.Info("monitor end")
			return
		default:
		}
		server.runCycle()
		// interval measured from cycle end, drift under load accepted
		select {
		case <-server.stopCh:
			log.Info("monitor end")
			return
		case <-time.After(server.interval):
		}
	}
}

// runCycle polls every configured entry concurrently and feeds the
// results through the state machine. A failed fetch leaves that room's
// state untouched; a panic is logged and the loop keeps running.
func (server *Server) runCycle() {
	defer func() {
		if r := recover(); r != nil {
			log.Error("监控任务出错: ", r)
		}
	}()

	samples := make([]*bilibili.LiveStatus, len(server.rooms))
	var wg sync.WaitGroup
	for i := range server.rooms {
		wg.Add(1)
		go func(i int, roomID string) {
			defer wg.Done()
			sample, err := server.client.GetLiveStatus(roomID)
			if err != nil {
				log.NewLogger(roomID, log.RoomId).Error("状态检查失败: ", err)
				return
			}
			samples[i] = sample
		}(i, server.rooms[i].RoomID)
	}
	wg.Wait()

	for _, sample := range samples {
		if sample == nil {
			continue
		}
		event := server.states.Apply(sample)
		if event == nil {
			continue
		}
		for _, room := range server.rooms {
			if room.RoomID == event.RoomID {
				server.queue.Enqueue(room.GroupID, event.Message)
			}
		}
		models.SaveLiveEvent(event.RoomID, event.AnchorName, event.BecameLive, event.Message)
		log.NewLogger(event.RoomID, log.RoomId).Info("状态变化: ", event.Message)
	}
}
