//go:build !windows
// +build !windows

package binutil

import (
	"os"

	"github.com/sevlyar/go-daemon"
	"github.com/xiaonanln/go-sweepaoi/aoilog"
)

// Daemonize puts the current process into background
func Daemonize() *daemon.Context {
	context := new(daemon.Context)
	child, err := context.Reborn()

	if err != nil {
		// daemonize failed
		aoilog.Panicf("daemonize failed: %v", err)
	}

	if child != nil {
		aoilog.Infof("run in daemon mode")
		os.Exit(0)
		return nil
	} else {
		return context
	}
}
