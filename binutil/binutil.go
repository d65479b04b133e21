package binutil

import (
	"net/http"
	_ "net/http/pprof"

	"fmt"

	"github.com/xiaonanln/go-sweepaoi/aoilog"
)

// SetupPprofServer starts the pprof HTTP server if port is not zero
func SetupPprofServer(ip string, port int) {
	if port == 0 {
		// pprof not enabled
		aoilog.Infof("pprof server not enabled")
		return
	}

	pprofHost := fmt.Sprintf("%s:%d", ip, port)
	aoilog.Infof("pprof server listening on http://%s/debug/pprof/ ... available commands: ", pprofHost)
	aoilog.Infof("    go tool pprof http://%s/debug/pprof/heap", pprofHost)
	aoilog.Infof("    go tool pprof http://%s/debug/pprof/profile", pprofHost)

	go func() {
		http.ListenAndServe(pprofHost, nil)
	}()
}

// SetupAOILog configures log level and output files of the aoilog module
func SetupAOILog(logLevel string, logFile string, logStderr bool) {
	aoilog.Infof("Set log level to %s", logLevel)
	aoilog.SetLevel(aoilog.ParseLevel(logLevel))

	outputs := make([]string, 0, 2)
	if logFile != "" {
		outputs = append(outputs, logFile)
	}
	if logStderr {
		outputs = append(outputs, "stderr")
	}
	aoilog.SetOutput(outputs)
}
