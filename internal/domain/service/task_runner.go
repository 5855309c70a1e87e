package service

import (
	"context"
)

// TaskRunner executes fire-and-forget side effects (push sends, downstream
// publishes) off the request path. Implementations bound the number of tasks
// in flight; a task submitted while the runner is saturated is dropped and
// logged, never queued against the caller.
type TaskRunner interface {
	Run(name string, task func(ctx context.Context))
}
