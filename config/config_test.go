package config

import (
	"testing"
	"time"

	"github.com/bmizerany/assert"
	"github.com/xiaonanln/go-sweepaoi/aoilog"
)

func init() {
	SetConfigFile("../sweepaoi.ini.sample")
}

func TestLoad(t *testing.T) {
	config := Get()
	aoilog.Debugf("sweepaoi config: \n%s", DumpPretty(config))
	if config == nil {
		t.FailNow()
	}

	dc := &config.Demo
	assert.Equal(t, 3, dc.NumEntities)
	assert.Equal(t, int32(1000), dc.Width)
	assert.Equal(t, int32(600), dc.Height)
	assert.Equal(t, int32(100), dc.EnterRadius)
	assert.Equal(t, int32(130), dc.LeaveRadius)
	assert.Equal(t, time.Second, dc.TickInterval)
	if dc.LeaveRadius <= dc.EnterRadius {
		t.Errorf("leave radius must be greater than enter radius")
	}
	if dc.LogLevel == "" {
		t.Errorf("log level not set")
	}
}

func TestReload(t *testing.T) {
	c1 := Get()
	c2 := Reload()
	if c1 == c2 {
		t.Errorf("reload should re-read the config")
	}
}

func TestGetDemo(t *testing.T) {
	dc := GetDemo()
	if dc == nil {
		t.FailNow()
	}
	assert.Equal(t, &Get().Demo, dc)
}
