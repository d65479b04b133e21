//go:build windows
// +build windows

package binutil

import "github.com/xiaonanln/go-sweepaoi/aoilog"

type nopRelease int

func (_ nopRelease) Release() {

}

func Daemonize() nopRelease {
	// Windows can not daemonize
	aoilog.Warnf("can not run in daemon mode in windows, -d ignored")
	return nopRelease(0)
}
