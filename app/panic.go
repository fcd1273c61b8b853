package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"go.uber.org/zap"
)

// recoverFrame turns a panic during a frame into an error so the runner can
// restore the terminal before the process exits. The stack goes to the log
// line by line.
func (a *App) recoverFrame(err *error) {
	r := recover()
	if r == nil {
		return
	}
	stack := make([]string, 0, 32)
	for _, line := range strings.Split(string(debug.Stack()), "\n") {
		if line == "" {
			continue
		}
		stack = append(stack, strings.TrimSpace(line))
	}
	a.log.Error("frame panicked",
		zap.Uint64("frame", a.frame),
		zap.Any("panic", r),
		zap.Strings("stack", stack),
	)
	*err = fmt.Errorf("panic in frame %d: %v", a.frame, r)
}
