package bilibili

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultBaseURL = "https://api.live.bilibili.com"
	LiveRoomBase   = "https://live.bilibili.com"

	userAgent = "Mozilla/5.0"
	referer   = "https://live.bilibili.com"
)

// Raw live_status codes returned by the status endpoint.
const (
	RawOffline = 0
	RawLive    = 1
)

// LiveStatus is the normalized result of one status query.
type LiveStatus struct {
	RoomID     string
	LiveStatus int
	LiveTime   int64 // 开播时间，epoch秒，未开播时为0
	CheckedAt  time.Time
}

func (s *LiveStatus) IsLive() bool {
	return s.LiveStatus == RawLive
}

// Client queries the Bilibili live API. It holds no state besides the
// HTTP clients, so one instance can serve concurrent callers.
type Client struct {
	BaseURL      string
	statusClient *http.Client
	infoClient   *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:      baseURL,
		statusClient: &http.Client{Timeout: 10 * time.Second},
		infoClient:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Close releases idle connections held by the underlying transports.
func (c *Client) Close() {
	c.statusClient.CloseIdleConnections()
	c.infoClient.CloseIdleConnections()
}

// RoomURL returns the canonical watch link of a room.
func RoomURL(roomID string) string {
	return fmt.Sprintf("%s/%s", LiveRoomBase, roomID)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) get(hc *http.Client, path string, out interface{}) (err error) {
	req, err := http.NewRequest("GET", c.BaseURL+path, nil)
	if err != nil {
		return
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", referer)
	resp, err := hc.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()
	var env envelope
	if err = json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return
	}
	if env.Code != 0 {
		err = fmt.Errorf("api code %d: %s", env.Code, env.Message)
		return
	}
	return json.Unmarshal(env.Data, out)
}

// GetLiveStatus queries the live status of one room.
func (c *Client) GetLiveStatus(roomID string) (*LiveStatus, error) {
	var data struct {
		LiveStatus int   `json:"live_status"`
		LiveTime   int64 `json:"live_time"`
	}
	path := fmt.Sprintf("/room/v1/Room/room_init?id=%s", url.QueryEscape(roomID))
	if err := c.get(c.statusClient, path, &data); err != nil {
		return nil, err
	}
	return &LiveStatus{
		RoomID:     roomID,
		LiveStatus: data.LiveStatus,
		LiveTime:   data.LiveTime,
		CheckedAt:  time.Now(),
	}, nil
}

// GetAnchorName queries the display name of a room's anchor.
func (c *Client) GetAnchorName(roomID string) (string, error) {
	var data struct {
		Anchor struct {
			Uname string `json:"uname"`
		} `json:"anchor"`
	}
	path := fmt.Sprintf("/room/v1/Room/get_info?room_id=%s", url.QueryEscape(roomID))
	if err := c.get(c.infoClient, path, &data); err != nil {
		return "", err
	}
	return data.Anchor.Uname, nil
}
