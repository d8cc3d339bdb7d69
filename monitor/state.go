// Package monitor drives the periodic live-status polling, keeps per-room
// state, and buffers transition notifications per group.
package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/EasyDarwin/EasyLive/bilibili"
	"github.com/EasyDarwin/EasyLive/log"
)

// LiveState is the last stored status of a room.
type LiveState int

const (
	StateUnknown LiveState = iota
	StateOffline
	StateLive
)

func (s LiveState) String() string {
	switch s {
	case StateOffline:
		return "下播"
	case StateLive:
		return "开播"
	}
	return "未知"
}

// RoomState tracks one room across polls. LiveStartTime is set exactly
// while LastStatus is StateLive.
type RoomState struct {
	LastStatus    LiveState
	LiveStartTime *time.Time
	LastCheckTime *time.Time
}

// TransitionEvent is emitted when a room's status flips between two polls.
type TransitionEvent struct {
	RoomID     string
	BecameLive bool
	AnchorName string
	Message    string
}

// StateMachine converts raw status samples into transition events. The
// first sample for a room only records a baseline and emits nothing.
type StateMachine struct {
	lock   sync.RWMutex
	states map[string]*RoomState
	names  *NameCache
}

func NewStateMachine(names *NameCache) *StateMachine {
	return &StateMachine{
		states: make(map[string]*RoomState),
		names:  names,
	}
}

// GetState returns a copy of the stored state of a room, or nil if the
// room has never been sampled.
func (m *StateMachine) GetState(roomID string) *RoomState {
	m.lock.RLock()
	defer m.lock.RUnlock()
	state, ok := m.states[roomID]
	if !ok {
		return nil
	}
	copied := *state
	return &copied
}

func mapStatus(sample *bilibili.LiveStatus) LiveState {
	if sample.IsLive() {
		return StateLive
	}
	return StateOffline
}

// Apply feeds one sample into the machine and returns the resulting
// transition event, or nil when the status did not change.
func (m *StateMachine) Apply(sample *bilibili.LiveStatus) *TransitionEvent {
	m.lock.Lock()
	defer m.lock.Unlock()

	status := mapStatus(sample)
	checked := sample.CheckedAt

	state, ok := m.states[sample.RoomID]
	if !ok {
		// 首次检查，只记录状态
		state = &RoomState{LastStatus: status, LastCheckTime: &checked}
		if status == StateLive {
			start := time.Unix(sample.LiveTime, 0)
			state.LiveStartTime = &start
		}
		m.states[sample.RoomID] = state
		log.Info("直播间 ", sample.RoomID, " 初始状态: ", status)
		return nil
	}

	if status == state.LastStatus {
		state.LastCheckTime = &checked
		return nil
	}

	anchor := m.names.Resolve(sample.RoomID)
	event := &TransitionEvent{
		RoomID:     sample.RoomID,
		BecameLive: status == StateLive,
		AnchorName: anchor,
	}
	if status == StateLive {
		start := time.Unix(sample.LiveTime, 0)
		state.LiveStartTime = &start
		event.Message = fmt.Sprintf("%s 开播了！\n传送门：%s", anchor, bilibili.RoomURL(sample.RoomID))
	} else {
		state.LiveStartTime = nil
		event.Message = fmt.Sprintf("%s 的直播已结束。", anchor)
	}
	state.LastStatus = status
	state.LastCheckTime = &checked
	return event
}
