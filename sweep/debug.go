//go:build debug

package sweep

import (
	"log"
	"os"
)

// internal logger, compiled in only for debug builds; independent of the
// caller-supplied options.WithDebugSink channel, which is always available.
var logger = log.New(os.Stderr, "[sweep DEBUG] ", log.LstdFlags)

func traceDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
