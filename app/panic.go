package app

import (
	"fmt"
	"log/slog"
	"runtime/debug"
)

// PanicInfo contains details about a panic recovered from a step function.
type PanicInfo struct {
	Task  string
	Value any
	Stack []byte
}

func (p *PanicInfo) Error() string {
	return fmt.Sprintf("%s panic: %v", p.Task, p.Value)
}

// GuardStep turns a panic inside step into a *PanicInfo error so the runner
// shuts the front-end down instead of crashing the process mid-frame.
func GuardStep(task string, step func() error) func() error {
	if step == nil {
		return nil
	}
	return func() (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			info := &PanicInfo{Task: task, Value: r, Stack: debug.Stack()}
			slog.Error("step panic", "task", task, "panic", r, "stack", string(info.Stack))
			err = info
		}()
		return step()
	}
}
