package lifecycle

import (
	"context"
	"time"

	"github.com/aalemi-dev/telemetry-lab/tracer"
)

// ExitRegistrar runs a hook when the process is about to stop.
type ExitRegistrar interface {
	RegisterExitHook(hook func(ctx context.Context) error)
}

// ExitRegistrarFunc adapts a function to ExitRegistrar.
type ExitRegistrarFunc func(hook func(ctx context.Context) error)

// RegisterExitHook calls f.
func (f ExitRegistrarFunc) RegisterExitHook(hook func(ctx context.Context) error) {
	f(hook)
}

// Lifecycle maps application phases onto a trace. It is implemented by
// *LifecycleClient.
//
// Calls never fail because of their order: a call that skips ahead closes
// the stages in between, and a call that cannot be reached from the current
// stage drops the trace and returns to Idle.
type Lifecycle interface {
	Start(opts ...StageOption) tracer.SamplingState
	Register(opts ...StageOption)
	Registered(opts ...StageOption)
	Boot(opts ...StageOption)
	Booted(opts ...StageOption)
	Terminating(opts ...StageOption)
	Terminated(ctx context.Context, opts ...StageOption) error

	StartSubtask(opts ...StageOption) tracer.SamplingState
	EndSubtask(ctx context.Context, opts ...StageOption) error

	RecordRegistration(start, end time.Time)
	RecordBoot(start, end time.Time)

	Shutdown(ctx context.Context) error
	Recover(ctx context.Context)

	Stage() Stage
}
