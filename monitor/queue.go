package monitor

import "sync"

// NotificationQueue buffers outbound messages per group until that group
// produces an inbound event. Delivery is FIFO per group and at-most-once:
// a drained message is never returned again. Buffers grow without bound
// if a group never sends another message; accepted tradeoff of the
// pull-only delivery model.
type NotificationQueue struct {
	lock    sync.Mutex
	pending map[string][]string
}

func NewNotificationQueue() *NotificationQueue {
	return &NotificationQueue{
		pending: make(map[string][]string),
	}
}

// Enqueue appends a message to the group's buffer.
func (q *NotificationQueue) Enqueue(groupID, message string) {
	q.lock.Lock()
	defer q.lock.Unlock()
	q.pending[groupID] = append(q.pending[groupID], message)
}

// Drain removes and returns all buffered messages for the group in FIFO
// order. Returns an empty slice when nothing is pending.
func (q *NotificationQueue) Drain(groupID string) []string {
	q.lock.Lock()
	defer q.lock.Unlock()
	messages := q.pending[groupID]
	delete(q.pending, groupID)
	return messages
}

// PendingCount reports how many messages are buffered for the group.
func (q *NotificationQueue) PendingCount(groupID string) int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.pending[groupID])
}
