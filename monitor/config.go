package monitor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/EasyDarwin/EasyLive/log"
	"github.com/MeloQi/EasyGoLib/utils"
	"github.com/kr/pretty"
	"github.com/spf13/viper"
)

// RoomConfig binds one live room to the group its notifications go to.
type RoomConfig struct {
	RoomID  string `json:"room_id"`
	GroupID string `json:"group_id"`
}

// ParseRoomConfigs parses a "房间号:群号,房间号:群号" string. Tokens without
// a separator are skipped with a warning. Duplicate rooms are kept: each
// entry routes notifications independently.
func ParseRoomConfigs(s string) []RoomConfig {
	rooms := make([]RoomConfig, 0)
	for _, token := range strings.Split(s, ",") {
		if !strings.Contains(token, ":") {
			log.Warn("无效的房间配置格式: ", token)
			continue
		}
		parts := strings.SplitN(token, ":", 2)
		rooms = append(rooms, RoomConfig{
			RoomID:  strings.TrimSpace(parts[0]),
			GroupID: strings.TrimSpace(parts[1]),
		})
	}
	return rooms
}

type Config struct {
	RoomConfigs   string `json:"room_configs"`
	CheckInterval int    `json:"check_interval"`
	APIBase       string `json:"api_base"`
}

// default config
var defaultConf = Config{
	RoomConfigs:   "7857879:1044727986",
	CheckInterval: 60,
	APIBase:       "",
}

// LoadConfig layers the monitor settings: built-in defaults, then
// EASYLIVE_* environment variables, then the [monitor] section of the
// ini file.
func LoadConfig() Config {
	b, _ := json.Marshal(defaultConf)
	v := viper.New()
	v.SetConfigType("json")
	v.ReadConfig(bytes.NewReader(b))

	v.SetEnvPrefix("easylive")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	sec := utils.Conf().Section("monitor")
	if s := sec.Key("room_configs").String(); s != "" {
		v.Set("room_configs", s)
	}
	if i := sec.Key("check_interval").MustInt(0); i > 0 {
		v.Set("check_interval", i)
	}
	if s := sec.Key("api_base").String(); s != "" {
		v.Set("api_base", s)
	}

	c := Config{
		RoomConfigs:   v.GetString("room_configs"),
		CheckInterval: v.GetInt("check_interval"),
		APIBase:       v.GetString("api_base"),
	}
	if c.CheckInterval <= 0 {
		c.CheckInterval = defaultConf.CheckInterval
	}
	log.Debug(fmt.Sprintf("monitor configurations: \n%# v", pretty.Formatter(c)))
	return c
}
