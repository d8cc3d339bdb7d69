package monitor

import (
	"sync"

	"github.com/EasyDarwin/EasyLive/bilibili"
	"github.com/EasyDarwin/EasyLive/log"
)

// NameCache memoizes anchor display names per room. A name is fetched at
// most once per process lifetime; fetch failures are cached as the
// synthesized fallback "主播<房间号>".
type NameCache struct {
	lock   sync.Mutex
	names  map[string]string
	client *bilibili.Client
}

func NewNameCache(client *bilibili.Client) *NameCache {
	return &NameCache{
		names:  make(map[string]string),
		client: client,
	}
}

func fallbackName(roomID string) string {
	return "主播" + roomID
}

// Resolve returns the cached name of a room's anchor, fetching it on the
// first call.
func (c *NameCache) Resolve(roomID string) string {
	c.lock.Lock()
	if name, ok := c.names[roomID]; ok {
		c.lock.Unlock()
		return name
	}
	c.lock.Unlock()

	name, err := c.client.GetAnchorName(roomID)
	if err != nil || name == "" {
		if err != nil {
			log.Error("获取房间 ", roomID, " 主播信息失败: ", err)
		}
		name = fallbackName(roomID)
	}

	c.lock.Lock()
	c.names[roomID] = name
	c.lock.Unlock()
	return name
}

// Peek returns the cached name without fetching, falling back to the
// synthesized name when the cache has no entry yet.
func (c *NameCache) Peek(roomID string) string {
	c.lock.Lock()
	defer c.lock.Unlock()
	if name, ok := c.names[roomID]; ok {
		return name
	}
	return fallbackName(roomID)
}
