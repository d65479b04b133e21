package config

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"
	"github.com/xiaonanln/go-sweepaoi/aoilog"
)

const (
	_DEFAULT_CONFIG_FILE = "sweepaoi.ini"
	_DEFAULT_LOG_LEVEL   = "debug"
	_DEFAULT_HTTP_IP     = "127.0.0.1"
)

var (
	configFilePath = _DEFAULT_CONFIG_FILE
	sweepAOIConfig *SweepAOIConfig
	configLock     sync.Mutex
)

// DemoConfig defines fields of the aoi_demo config
type DemoConfig struct {
	NumEntities   int
	Width         int32
	Height        int32
	SpeedMin      int32
	SpeedMax      int32
	EnterRadius   int32
	LeaveRadius   int32
	TickInterval  time.Duration
	StatsInterval time.Duration
	LogFile       string
	LogStderr     bool
	LogLevel      string
	HTTPIp        string
	HTTPPort      int
}

// SweepAOIConfig defines the total config file structure
type SweepAOIConfig struct {
	Demo DemoConfig
}

// SetConfigFile sets the config file path (sweepaoi.ini by default)
func SetConfigFile(f string) {
	configFilePath = f
}

// GetConfigFilePath returns the config file path
func GetConfigFilePath() string {
	return configFilePath
}

// Get returns the total config, reading the config file on first use
func Get() *SweepAOIConfig {
	configLock.Lock()
	defer configLock.Unlock()
	if sweepAOIConfig == nil {
		sweepAOIConfig = readSweepAOIConfig()
	}
	return sweepAOIConfig
}

// Reload forces the config to be read again
func Reload() *SweepAOIConfig {
	configLock.Lock()
	sweepAOIConfig = nil
	configLock.Unlock()

	return Get()
}

// GetDemo returns the demo config
func GetDemo() *DemoConfig {
	return &Get().Demo
}

// DumpPretty format config to string in pretty format
func DumpPretty(cfg interface{}) string {
	s, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err.Error()
	}
	return string(s)
}

func readSweepAOIConfig() *SweepAOIConfig {
	config := SweepAOIConfig{}
	aoilog.Infof("Using config file: %s", configFilePath)
	iniFile, err := ini.Load(configFilePath)
	checkConfigError(err, "")
	readDemoConfig(iniFile.Section("demo"), &config.Demo)

	for _, sec := range iniFile.Sections() {
		secName := strings.ToLower(sec.Name())
		if secName == "default" || secName == "demo" {
			continue
		}
		aoilog.Errorf("unknown section: %s", secName)
	}

	validateConfig(&config)
	return &config
}

func readDemoConfig(sec *ini.Section, dc *DemoConfig) {
	dc.NumEntities = 3
	dc.Width = 1000
	dc.Height = 600
	dc.SpeedMin = 4
	dc.SpeedMax = 14
	dc.EnterRadius = 100
	dc.LeaveRadius = 130
	dc.TickInterval = time.Second
	dc.StatsInterval = time.Second * 10
	dc.LogFile = "aoi_demo.log"
	dc.LogStderr = true
	dc.LogLevel = _DEFAULT_LOG_LEVEL
	dc.HTTPIp = _DEFAULT_HTTP_IP
	dc.HTTPPort = 0 // pprof not enabled by default

	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		if name == "entities" {
			dc.NumEntities = key.MustInt(dc.NumEntities)
		} else if name == "width" {
			dc.Width = int32(key.MustInt(int(dc.Width)))
		} else if name == "height" {
			dc.Height = int32(key.MustInt(int(dc.Height)))
		} else if name == "speed_min" {
			dc.SpeedMin = int32(key.MustInt(int(dc.SpeedMin)))
		} else if name == "speed_max" {
			dc.SpeedMax = int32(key.MustInt(int(dc.SpeedMax)))
		} else if name == "enter_radius" {
			dc.EnterRadius = int32(key.MustInt(int(dc.EnterRadius)))
		} else if name == "leave_radius" {
			dc.LeaveRadius = int32(key.MustInt(int(dc.LeaveRadius)))
		} else if name == "tick_ms" {
			dc.TickInterval = time.Millisecond * time.Duration(key.MustInt(int(dc.TickInterval/time.Millisecond)))
		} else if name == "stats_interval" {
			dc.StatsInterval = time.Second * time.Duration(key.MustInt(int(dc.StatsInterval/time.Second)))
		} else if name == "log_file" {
			dc.LogFile = key.MustString(dc.LogFile)
		} else if name == "log_stderr" {
			dc.LogStderr = key.MustBool(dc.LogStderr)
		} else if name == "log_level" {
			dc.LogLevel = key.MustString(dc.LogLevel)
		} else if name == "http_ip" {
			dc.HTTPIp = key.MustString(dc.HTTPIp)
		} else if name == "http_port" {
			dc.HTTPPort = key.MustInt(dc.HTTPPort)
		} else {
			aoilog.Panicf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
	}
}

func validateConfig(config *SweepAOIConfig) {
	dc := &config.Demo
	if dc.NumEntities <= 0 {
		aoilog.Panicf("demo config: entities must be positive, not %d", dc.NumEntities)
	}
	if dc.LeaveRadius <= dc.EnterRadius {
		// the engine does not validate this contract, so the demo must
		aoilog.Panicf("demo config: leave_radius (%d) must be greater than enter_radius (%d)", dc.LeaveRadius, dc.EnterRadius)
	}
	if dc.SpeedMin <= 0 || dc.SpeedMax < dc.SpeedMin {
		aoilog.Panicf("demo config: invalid speed range [%d, %d]", dc.SpeedMin, dc.SpeedMax)
	}
}

func checkConfigError(err error, msg string) {
	if err != nil {
		if msg == "" {
			msg = err.Error()
		}
		aoilog.Panic(errors.Wrap(err, "read config error: "+msg))
	}
}
