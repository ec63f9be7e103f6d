package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/aalemi-dev/telemetry-lab/observability"
	"github.com/aalemi-dev/telemetry-lab/tracer"
)

// Start begins the application trace and opens the root span.
//
// Called from any stage but Idle or Terminated, the stale trace is dropped
// first.
func (l *LifecycleClient) Start(opts ...StageOption) tracer.SamplingState {
	if l.stage != Idle && l.stage != Terminated {
		l.violation("start")
	}
	o := newStageOptions(opts)

	state := l.tracer.StartTrace(o.trace...)
	l.root = l.tracer.StartSpan(l.cfg.AppName, o.spanOptions(Started)...)
	l.open = nil
	l.stage = Started
	return state
}

// Register opens the registration span. Only legal right after Start.
func (l *LifecycleClient) Register(opts ...StageOption) {
	if l.stage != Started {
		l.violation("register")
		return
	}
	l.openStage(Registering, "Registering", newStageOptions(opts))
}

// Registered closes the registration span. Only legal while Registering.
func (l *LifecycleClient) Registered(opts ...StageOption) {
	if l.stage != Registering {
		l.violation("registered")
		return
	}
	l.closeStage(Registered, newStageOptions(opts).endOptions())
}

// Boot opens the boot span. From Registering the registration span is
// closed first.
func (l *LifecycleClient) Boot(opts ...StageOption) {
	o := newStageOptions(opts)
	switch l.stage {
	case Registering:
		l.closeStage(Registered, o.closeOptions())
	case Started, Registered:
	default:
		l.violation("boot")
		return
	}
	l.openStage(Booting, "Booting", o)
}

// Booted closes the boot span. Only legal while Booting.
func (l *LifecycleClient) Booted(opts ...StageOption) {
	if l.stage != Booting {
		l.violation("booted")
		return
	}
	l.closeStage(Booted, newStageOptions(opts).endOptions())
}

// Terminating opens the termination span. An open registration or boot
// span is closed first.
func (l *LifecycleClient) Terminating(opts ...StageOption) {
	o := newStageOptions(opts)
	switch l.stage {
	case Registering:
		l.closeStage(Registered, o.closeOptions())
	case Booting:
		l.closeStage(Booted, o.closeOptions())
	case Started, Registered, Booted:
	default:
		l.violation("terminating")
		return
	}
	l.openStage(Terminating, "Terminating", o)
}

// Terminated closes whatever stage span is open, then the root span, and
// ends the trace. The exporter's error is returned.
func (l *LifecycleClient) Terminated(ctx context.Context, opts ...StageOption) error {
	switch l.stage {
	case Started, Registering, Registered, Booting, Booted, Terminating:
	default:
		l.violation("terminated")
		return nil
	}
	o := newStageOptions(opts)

	if l.open != nil {
		l.tracer.EndSpan(l.open, o.closeOptions()...)
	}
	l.tracer.EndSpan(l.root, o.endOptions()...)
	err := l.tracer.EndTrace(ctx)

	l.root, l.open = nil, nil
	l.stage = Terminated
	return err
}

// StartSubtask begins a trace for a queue job or command, opening its root
// span. Called from any stage but Idle or Terminated, the stale trace is
// dropped first.
func (l *LifecycleClient) StartSubtask(opts ...StageOption) tracer.SamplingState {
	if l.stage != Idle && l.stage != Terminated {
		l.violation("start_subtask")
	}
	o := newStageOptions(opts)

	name := o.name
	if name == "" {
		name = l.cfg.SubtaskName
	}

	state := l.tracer.StartTrace(o.trace...)
	l.root = l.tracer.StartSpan(name, o.spanOptions(Subtask)...)
	l.open = nil
	l.stage = Subtask
	return state
}

// EndSubtask closes the subtask root span and ends the trace. Only legal
// while in Subtask.
func (l *LifecycleClient) EndSubtask(ctx context.Context, opts ...StageOption) error {
	if l.stage != Subtask {
		l.violation("end_subtask")
		return nil
	}
	l.tracer.EndSpan(l.root, newStageOptions(opts).endOptions()...)
	err := l.tracer.EndTrace(ctx)

	l.root = nil
	l.stage = Idle
	return err
}

// RecordRegistration backfills a registration that ran from start to end.
func (l *LifecycleClient) RecordRegistration(start, end time.Time) {
	l.Register(At(start))
	l.Registered(At(end))
}

// RecordBoot backfills a boot that ran from start to end.
func (l *LifecycleClient) RecordBoot(start, end time.Time) {
	l.Boot(At(start))
	l.Booted(At(end))
}

// Shutdown is the exit hook. It ends every span still on the tracer's
// stack and ends the trace if that left nothing open; otherwise the trace
// is dropped rather than exported half closed. The stage returns to Idle.
func (l *LifecycleClient) Shutdown(ctx context.Context) error {
	return l.exit(ctx, nil)
}

// Recover is meant to be deferred by the code running the unit of work. On
// a panic it marks the current span as failed, runs the exit hook and
// panics again.
//
//	defer lc.Recover(ctx)
func (l *LifecycleClient) Recover(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	_ = l.exit(ctx, r)
	panic(r)
}

func (l *LifecycleClient) exit(ctx context.Context, panicked any) error {
	if panicked != nil {
		l.tracer.CurrentSpan().SetStatus(tracer.StatusError, fmt.Sprint(panicked))
	}

	open := l.tracer.OpenSpans()
	for i := len(open) - 1; i >= 0; i-- {
		l.tracer.EndSpan(open[i])
	}

	traceID := l.tracer.CurrentTraceID()
	var err error
	exported := false
	switch {
	case l.tracer.SamplingState() != tracer.Sampling:
		l.tracer.TrashTrace()
	case l.tracer.HasOpenSpans():
		l.logger.Debug("dropping trace with spans left open at exit", nil, map[string]interface{}{
			"trace_id": l.tracer.CurrentTraceID(),
			"stage":    l.stage.String(),
		})
		l.tracer.TrashTrace()
	default:
		err = l.tracer.EndTrace(ctx)
		exported = true
	}

	l.observeOperation("exit", traceID, err, map[string]interface{}{
		"stage":    l.stage.String(),
		"exported": exported,
	})

	l.root, l.open = nil, nil
	l.stage = Idle
	return err
}

func (l *LifecycleClient) openStage(stage Stage, suffix string, o stageOptions) {
	l.open = l.tracer.StartSpan(l.cfg.AppName+" - "+suffix, o.spanOptions(stage)...)
	l.stage = stage
}

func (l *LifecycleClient) closeStage(stage Stage, opts []tracer.SpanOption) {
	l.tracer.EndSpan(l.open, opts...)
	l.open = nil
	l.stage = stage
}

// violation drops the trace after a call the current stage cannot reach.
func (l *LifecycleClient) violation(call string) {
	l.logger.Debug("lifecycle call out of order, trace dropped", nil, map[string]interface{}{
		"call":     call,
		"stage":    l.stage.String(),
		"trace_id": l.tracer.CurrentTraceID(),
	})
	l.observeOperation("protocol.violation", l.tracer.CurrentTraceID(), nil, map[string]interface{}{
		"call":  call,
		"stage": l.stage.String(),
	})

	l.tracer.TrashTrace()
	l.root, l.open = nil, nil
	l.stage = Idle
}

func (l *LifecycleClient) observeOperation(operation, traceID string, err error, metadata map[string]interface{}) {
	if l.observer == nil {
		return
	}
	l.observer.ObserveOperation(observability.OperationContext{
		Component: "lifecycle",
		Operation: operation,
		Resource:  traceID,
		Error:     err,
		Metadata:  metadata,
	})
}
