// Package lifecycle maps the phases of an application onto a trace.
//
// An application run goes through
//
//	Idle -> Started -> Registering -> Registered -> Booting -> Booted
//	     -> Terminating -> Terminated
//
// and each phase between Started and Terminated becomes a span under the
// root span opened by Start. Queue jobs and commands use the shorter
// StartSubtask / EndSubtask pair instead.
//
// The state machine never fails a call. A call that skips ahead closes the
// stages it skips: Boot while Registering closes the registration span
// first, and Terminated closes whatever is open before closing the root.
// A call that cannot be reached from the current stage, such as Registered
// before Register or Booted outside Booting, drops the trace and returns to
// Idle, so a misbehaving integration loses one trace instead of exporting a
// malformed one.
//
// The exit hook (Shutdown, also run by Recover and, under fx, on OnStop)
// ends every span still on the tracer's stack and exports the trace only
// if no span of it is left open.
//
// Every call accepts At to backfill work that already happened:
//
//	lc.RecordBoot(bootStart, bootEnd)
package lifecycle
