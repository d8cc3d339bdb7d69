package routers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func initRouter(t *testing.T) {
	t.Helper()
	if Router == nil {
		if err := Init(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestMessageEndpoint(t *testing.T) {
	initRouter(t)

	body := bytes.NewBufferString(`{"group_id":"1044727986","text":"你好"}`)
	req := httptest.NewRequest("POST", "/api/v1/message", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatal("unexpected status: ", w.Code)
	}
	var resp struct {
		Replies []string `json:"replies"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Replies == nil {
		t.Error("replies must be an empty array, not null")
	}
	if len(resp.Replies) != 0 {
		t.Error("nothing pending, got replies: ", resp.Replies)
	}
}

func TestMessageEndpointMissingGroup(t *testing.T) {
	initRouter(t)

	req := httptest.NewRequest("POST", "/api/v1/message", bytes.NewBufferString(`{"text":"你好"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	Router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Error("missing group_id should be rejected, got ", w.Code)
	}
}

func TestRoomsEndpoint(t *testing.T) {
	initRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/rooms", nil)
	w := httptest.NewRecorder()
	Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatal("unexpected status: ", w.Code)
	}
	var resp struct {
		Total int                      `json:"total"`
		Rows  []map[string]interface{} `json:"rows"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != len(resp.Rows) {
		t.Error("total does not match rows")
	}
}

func TestCrossOriginHeaders(t *testing.T) {
	initRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/rooms", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatal("unexpected status: ", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("missing Access-Control-Allow-Origin header")
	}
}

func TestServerInfoEndpoint(t *testing.T) {
	initRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/serverinfo", nil)
	w := httptest.NewRecorder()
	Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatal("unexpected status: ", w.Code)
	}
}
