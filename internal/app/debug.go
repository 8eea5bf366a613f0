package app

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	envLookup = os.Getenv

	debugEnabled = envLookup("RLS_DEBUG") == "1"
	debugOutput  io.Writer = os.Stderr
	debugMu      sync.Mutex
)

func debugf(format string, args ...interface{}) {
	if !debugEnabled {
		return
	}
	debugMu.Lock()
	defer debugMu.Unlock()

	timestamp := time.Now().Format(time.RFC3339Nano)
	_, _ = fmt.Fprintf(debugOutput, "%s rls: "+format+"\n", append([]interface{}{timestamp}, args...)...)
}
