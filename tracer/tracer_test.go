package tracer_test

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
	"go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/telemetry-lab/observability"
	"github.com/aalemi-dev/telemetry-lab/sampler"
	"github.com/aalemi-dev/telemetry-lab/tracer"
)

var epoch = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// sequentialIDs hands out 1, 2, 3, ... so tests can predict ids.
type sequentialIDs struct {
	next uint64
}

func (g *sequentialIDs) NewTraceID() trace.TraceID {
	g.next++
	var id trace.TraceID
	binary.BigEndian.PutUint64(id[8:], g.next)
	return id
}

func (g *sequentialIDs) NewSpanID() trace.SpanID {
	g.next++
	var id trace.SpanID
	binary.BigEndian.PutUint64(id[:], g.next)
	return id
}

// recordingExporter keeps every exported trace.
type recordingExporter struct {
	mu     sync.Mutex
	traces []tracer.Trace
	err    error
}

func (e *recordingExporter) ExportTrace(_ context.Context, tr tracer.Trace) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.traces = append(e.traces, tr)
	return e.err
}

// testObserver records observed operations.
type testObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (o *testObserver) ObserveOperation(ctx observability.OperationContext) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.operations = append(o.operations, ctx)
}

func (o *testObserver) count(operation string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, op := range o.operations {
		if op.Operation == operation {
			n++
		}
	}
	return n
}

// advancingClock is the part of the clockz fake clock the tests drive.
type advancingClock interface {
	clockz.Clock
	Advance(d time.Duration)
}

type fixture struct {
	tr       *tracer.TracerClient
	clock    advancingClock
	exporter *recordingExporter
	observer *testObserver
}

func newFixture(t *testing.T, cfg tracer.Config, s sampler.Sampler, opts ...tracer.Option) fixture {
	t.Helper()
	f := fixture{
		clock:    clockz.NewFakeClockAt(epoch),
		exporter: &recordingExporter{},
		observer: &testObserver{},
	}
	opts = append([]tracer.Option{
		tracer.WithClock(f.clock),
		tracer.WithIDGenerator(&sequentialIDs{}),
		tracer.WithObserver(f.observer),
	}, opts...)

	tr, err := tracer.NewClient(cfg, s, f.exporter, opts...)
	require.NoError(t, err)
	f.tr = tr
	return f
}

func sampling(t *testing.T, opts ...tracer.Option) fixture {
	t.Helper()
	f := newFixture(t, tracer.Config{}, sampler.Always(), opts...)
	require.Equal(t, tracer.Sampling, f.tr.StartTrace())
	return f
}

// assertParentInvariant checks that every parent exists in the same trace
// and started no later than its child.
func assertParentInvariant(t *testing.T, spans []*tracer.Span, remoteParent string) {
	t.Helper()
	byID := map[string]*tracer.Span{}
	for _, s := range spans {
		byID[s.SpanID] = s
	}
	for _, s := range spans {
		if s.ParentSpanID == "" || s.ParentSpanID == remoteParent {
			continue
		}
		parent, ok := byID[s.ParentSpanID]
		require.True(t, ok, "parent of %q missing", s.Name)
		assert.Equal(t, s.TraceID, parent.TraceID)
		assert.False(t, s.Start.Before(parent.Start), "%q starts before its parent", s.Name)
	}
}

func TestNewClient_InvalidLimit(t *testing.T) {
	t.Parallel()
	_, err := tracer.NewClient(tracer.Config{MaxSpans: -1}, nil, nil)
	require.ErrorIs(t, err, tracer.ErrInvalidLimit)
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()
	tr, err := tracer.NewClient(tracer.Config{}, nil, nil)
	require.NoError(t, err)

	cfg := tr.Config()
	assert.Equal(t, tracer.DefaultMaxSpans, cfg.MaxSpans)
	assert.Equal(t, tracer.DefaultMaxAttributesPerSpan, cfg.MaxAttributesPerSpan)
	assert.Equal(t, tracer.DefaultMaxSpanEventsPerSpan, cfg.MaxSpanEventsPerSpan)
	assert.Equal(t, tracer.DefaultMaxAttributesPerSpanEvent, cfg.MaxAttributesPerSpanEvent)
	assert.Equal(t, tracer.SamplingWaiting, tr.SamplingState())

	// nil sampler keeps everything, nil exporter discards.
	assert.Equal(t, tracer.Sampling, tr.StartTrace())
	require.NotNil(t, tr.StartSpan("root"))
	assert.NoError(t, tr.EndTrace(context.Background()))
}

func TestStartTrace_IdempotentWhileSampling(t *testing.T) {
	t.Parallel()
	f := sampling(t)

	id := f.tr.CurrentTraceID()
	require.Len(t, id, 32)

	assert.Equal(t, tracer.Sampling, f.tr.StartTrace())
	assert.Equal(t, id, f.tr.CurrentTraceID())
}

func TestStartTrace_SamplerDecision(t *testing.T) {
	t.Parallel()

	var seen sampler.Context
	s := sampler.Func(func(ctx sampler.Context) bool {
		seen = ctx
		return false
	})
	f := newFixture(t, tracer.Config{}, s)

	state := f.tr.StartTrace(tracer.WithSamplerContext(map[string]any{"route": "/health"}))
	assert.Equal(t, tracer.SamplingOff, state)
	assert.Equal(t, f.tr.CurrentTraceID(), seen.TraceID)
	assert.Equal(t, "/health", seen.Attributes["route"])

	assert.Nil(t, f.tr.StartSpan("ignored"))
	assert.Nil(t, f.tr.SpanEvent("ignored"))
	assert.Empty(t, f.tr.Spans())
}

func TestStartTrace_ForceSampling(t *testing.T) {
	t.Parallel()
	f := newFixture(t, tracer.Config{}, sampler.Never())
	assert.Equal(t, tracer.Sampling, f.tr.StartTrace(tracer.ForceSampling(true)))

	f = newFixture(t, tracer.Config{}, sampler.Always())
	assert.Equal(t, tracer.SamplingOff, f.tr.StartTrace(tracer.ForceSampling(false)))
}

func TestStartTrace_OffRedecides(t *testing.T) {
	t.Parallel()
	decisions := []bool{false, true}
	s := sampler.Func(func(sampler.Context) bool {
		d := decisions[0]
		decisions = decisions[1:]
		return d
	})
	f := newFixture(t, tracer.Config{}, s)

	assert.Equal(t, tracer.SamplingOff, f.tr.StartTrace())
	first := f.tr.CurrentTraceID()
	assert.Equal(t, tracer.Sampling, f.tr.StartTrace())
	assert.NotEqual(t, first, f.tr.CurrentTraceID())
}

func TestStartTrace_AdoptsTraceParent(t *testing.T) {
	t.Parallel()
	const (
		traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
		spanID  = "00f067aa0ba902b7"
	)
	f := newFixture(t, tracer.Config{}, sampler.Never())

	state := f.tr.StartTrace(tracer.WithTraceParent("00-" + traceID + "-" + spanID + "-01"))
	require.Equal(t, tracer.Sampling, state, "propagated flag wins over the sampler")
	assert.Equal(t, traceID, f.tr.CurrentTraceID())
	assert.Equal(t, spanID, f.tr.CurrentSpanID())
	assert.Nil(t, f.tr.CurrentSpan(), "remote parent is not a local span")

	root := f.tr.StartSpan("root")
	require.NotNil(t, root)
	assert.Equal(t, traceID, root.TraceID)
	assert.Equal(t, spanID, root.ParentSpanID)

	child := f.tr.StartSpan("child")
	f.tr.EndSpan(child)
	f.tr.EndSpan(root)
	assert.Equal(t, spanID, f.tr.CurrentSpanID())
	assertParentInvariant(t, f.tr.Spans(), spanID)
}

func TestStartTrace_TraceParentNotSampled(t *testing.T) {
	t.Parallel()
	f := newFixture(t, tracer.Config{}, sampler.Always())

	state := f.tr.StartTrace(tracer.WithTraceParent("00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-00"))
	assert.Equal(t, tracer.SamplingOff, state)
	assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-00", f.tr.TraceParent())
}

func TestStartTrace_MalformedTraceParentStartsFresh(t *testing.T) {
	t.Parallel()
	f := newFixture(t, tracer.Config{}, sampler.Always())

	state := f.tr.StartTrace(tracer.WithTraceParent("01-garbage"))
	assert.Equal(t, tracer.Sampling, state)
	assert.Len(t, f.tr.CurrentTraceID(), 32)
	assert.Empty(t, f.tr.CurrentSpanID())
}

func TestDisabled(t *testing.T) {
	t.Parallel()
	calls := 0
	s := sampler.Func(func(sampler.Context) bool { calls++; return true })
	f := newFixture(t, tracer.Config{Disabled: true}, s)

	assert.Equal(t, tracer.SamplingDisabled, f.tr.SamplingState())
	assert.Equal(t, tracer.SamplingDisabled, f.tr.StartTrace(tracer.ForceSampling(true)))
	assert.Nil(t, f.tr.StartSpan("x", tracer.CanStartTrace()))
	require.NoError(t, f.tr.EndTrace(context.Background()))
	assert.Equal(t, tracer.SamplingDisabled, f.tr.SamplingState())
	assert.Zero(t, calls)

	f.tr.Enable()
	assert.Equal(t, tracer.Sampling, f.tr.StartTrace())
	f.tr.Disable()
	assert.Equal(t, tracer.SamplingDisabled, f.tr.SamplingState())
	assert.Empty(t, f.tr.CurrentTraceID())
}

func TestStartSpan_RequiresSampling(t *testing.T) {
	t.Parallel()
	f := newFixture(t, tracer.Config{}, sampler.Always())

	assert.Nil(t, f.tr.StartSpan("no trace"))
	assert.Equal(t, tracer.SamplingWaiting, f.tr.SamplingState())

	span := f.tr.StartSpan("entry", tracer.CanStartTrace())
	require.NotNil(t, span)
	assert.Equal(t, tracer.Sampling, f.tr.SamplingState())
	assert.Empty(t, span.ParentSpanID)
}

func TestStartSpan_NestingAndStack(t *testing.T) {
	t.Parallel()
	f := sampling(t)

	root := f.tr.StartSpan("root")
	f.clock.Advance(time.Millisecond)
	a := f.tr.StartSpan("a")
	f.clock.Advance(time.Millisecond)
	a1 := f.tr.StartSpan("a1")

	assert.Equal(t, root.SpanID, a.ParentSpanID)
	assert.Equal(t, a.SpanID, a1.ParentSpanID)
	assert.Equal(t, a1, f.tr.CurrentSpan())
	assert.Equal(t, []*tracer.Span{root, a, a1}, f.tr.OpenSpans())

	f.tr.EndSpan(a1)
	assert.Equal(t, a, f.tr.CurrentSpan())
	f.tr.EndSpan(a)

	b := f.tr.StartSpan("b")
	assert.Equal(t, root.SpanID, b.ParentSpanID, "sibling hangs off root after a is ended")

	assert.Equal(t, []*tracer.Span{root, a, a1, b}, f.tr.Spans(), "spans are kept in creation order")
	assertParentInvariant(t, f.tr.Spans(), "")
}

func TestStartSpan_StartNotBeforeParent(t *testing.T) {
	t.Parallel()
	f := sampling(t)

	root := f.tr.StartSpan("root", tracer.At(epoch.Add(time.Second)))
	child := f.tr.StartSpan("child", tracer.At(epoch))
	assert.Equal(t, root.Start, child.Start)
}

func TestStartSpan_MaxSpans(t *testing.T) {
	t.Parallel()
	f := newFixture(t, tracer.Config{MaxSpans: 2}, sampler.Always())
	f.tr.StartTrace()

	root := f.tr.StartSpan("root")
	child := f.tr.StartSpan("child")
	require.False(t, root.Dropped())
	require.False(t, child.Dropped())

	third := f.tr.StartSpan("third")
	require.NotNil(t, third)
	assert.True(t, third.Dropped())
	assert.Equal(t, child.SpanID, third.ParentSpanID)
	assert.Same(t, third, f.tr.CurrentSpan())
	assert.Equal(t, 1, f.tr.DroppedSpans())

	// Events on a dropped span go nowhere, not to its parent.
	assert.Nil(t, f.tr.SpanEvent("lost"))
	assert.Empty(t, child.Events)

	assert.Same(t, third, f.tr.EndCurrentSpan())
	assert.False(t, child.Ended())
	assert.Same(t, child, f.tr.CurrentSpan())

	fourth := f.tr.StartSpan("fourth")
	assert.True(t, fourth.Dropped())
	f.tr.EndSpan(fourth)
	assert.Same(t, child, f.tr.CurrentSpan())
	assert.Equal(t, 2, f.tr.DroppedSpans())
	assert.Equal(t, []*tracer.Span{root, child}, f.tr.OpenSpans())

	require.NoError(t, f.tr.EndTrace(context.Background()))
	require.Len(t, f.exporter.traces, 1)
	assert.Len(t, f.exporter.traces[0].Spans, 2)
	assert.Equal(t, 2, f.exporter.traces[0].DroppedSpans)
	assert.Equal(t, 2, f.observer.count("span.drop"))
}

func TestRun_DroppedSpanKeepsStackBalanced(t *testing.T) {
	t.Parallel()
	f := newFixture(t, tracer.Config{MaxSpans: 1}, sampler.Always())
	f.tr.StartTrace()

	root := f.tr.StartSpan("root")
	err := f.tr.Run("over the cap", func() error {
		assert.True(t, f.tr.CurrentSpan().Dropped())
		return nil
	})
	require.NoError(t, err)
	assert.Same(t, root, f.tr.CurrentSpan())
	assert.False(t, root.Ended())
}

func TestEndSpan_Idempotent(t *testing.T) {
	t.Parallel()
	f := sampling(t)

	span := f.tr.StartSpan("once")
	f.clock.Advance(5 * time.Millisecond)
	first := f.tr.EndSpan(span).End

	f.clock.Advance(5 * time.Millisecond)
	again := f.tr.EndSpan(span, tracer.WithAttributes(map[string]any{"late": true}))
	assert.Equal(t, first, again.End)
	_, ok := span.Attributes.Get("late")
	assert.False(t, ok)
	assert.Equal(t, 5*time.Millisecond, span.Duration())
}

func TestEndSpan_ClampsEnd(t *testing.T) {
	t.Parallel()
	f := sampling(t)

	span := f.tr.StartSpan("backwards", tracer.At(epoch.Add(time.Second)))
	f.tr.EndSpan(span, tracer.At(epoch))
	assert.Equal(t, span.Start, span.End)
}

func TestEndSpan_MergesAttributes(t *testing.T) {
	t.Parallel()
	f := sampling(t)

	span := f.tr.StartSpan("query", tracer.WithAttributes(map[string]any{"db.system": "postgresql"}))
	f.tr.EndSpan(span, tracer.WithAttributes(map[string]any{"db.rows": 3}))

	assert.Equal(t, map[string]any{"db.system": "postgresql", "db.rows": 3}, span.Attributes.Map())
}

func TestEndSpan_OuterPopsInner(t *testing.T) {
	t.Parallel()
	f := sampling(t)

	root := f.tr.StartSpan("root")
	outer := f.tr.StartSpan("outer")
	inner := f.tr.StartSpan("inner")

	f.tr.EndSpan(outer)
	assert.Equal(t, root, f.tr.CurrentSpan())
	assert.False(t, inner.Ended())
	assert.True(t, f.tr.HasOpenSpans())
}

func TestEndCurrentSpan(t *testing.T) {
	t.Parallel()
	f := sampling(t)

	assert.Nil(t, f.tr.EndCurrentSpan())

	root := f.tr.StartSpan("root")
	child := f.tr.StartSpan("child")
	assert.Equal(t, child, f.tr.EndCurrentSpan())
	assert.Equal(t, root, f.tr.EndCurrentSpan())
	assert.Nil(t, f.tr.CurrentSpan())
}

func TestAttributeCaps(t *testing.T) {
	t.Parallel()
	f := newFixture(t, tracer.Config{MaxAttributesPerSpan: 2}, sampler.Always())
	f.tr.StartTrace()

	span := f.tr.StartSpan("capped", tracer.WithAttributes(map[string]any{"a": 1, "b": 2, "c": 3}))
	assert.Equal(t, 2, span.Attributes.Len())
	assert.Equal(t, 1, span.DroppedAttributesCount)

	span.SetAttribute("a", 10)
	assert.Equal(t, 1, span.DroppedAttributesCount, "overwriting is always allowed")
	v, _ := span.Attributes.Get("a")
	assert.Equal(t, 10, v)

	span.SetAttribute("d", 4)
	assert.Equal(t, 2, span.DroppedAttributesCount)
}

func TestSpanEvent(t *testing.T) {
	t.Parallel()
	f := newFixture(t, tracer.Config{MaxSpanEventsPerSpan: 2, MaxAttributesPerSpanEvent: 1}, sampler.Always())
	f.tr.StartTrace()

	assert.Nil(t, f.tr.SpanEvent("floating"), "events need a current span")

	span := f.tr.StartSpan("root")
	ev := f.tr.SpanEvent("cache.hit", tracer.WithAttributes(map[string]any{"key": "user:1", "ttl": 30}))
	require.NotNil(t, ev)
	assert.Equal(t, epoch, ev.Time)
	assert.Equal(t, 1, ev.Attributes.Len())
	assert.Equal(t, 1, ev.DroppedAttributesCount)

	require.NotNil(t, f.tr.SpanEvent("second"))
	assert.Nil(t, f.tr.SpanEvent("third"))
	assert.Len(t, span.Events, 2)
	assert.Equal(t, 1, span.DroppedEventsCount)
	assert.Equal(t, 1, f.observer.count("event.drop"))
}

func TestSpanEvent_Filter(t *testing.T) {
	t.Parallel()
	filter := func(span *tracer.Span, ev *tracer.SpanEvent) *tracer.SpanEvent {
		if ev.Name == "noise" {
			return nil
		}
		ev.SetAttribute("span", span.Name)
		return ev
	}
	f := sampling(t, tracer.WithEventFilter(filter))

	span := f.tr.StartSpan("root")
	assert.Nil(t, f.tr.SpanEvent("noise"))
	ev := f.tr.SpanEvent("signal")
	require.NotNil(t, ev)

	v, _ := ev.Attributes.Get("span")
	assert.Equal(t, "root", v)
	assert.Len(t, span.Events, 1)
	assert.Zero(t, span.DroppedEventsCount)
}

func TestEndTrace_ExportsAndClosesDanglingSpans(t *testing.T) {
	t.Parallel()
	f := sampling(t)
	traceID := f.tr.CurrentTraceID()

	root := f.tr.StartSpan("root")
	f.clock.Advance(time.Millisecond)
	f.tr.StartSpan("left open")
	f.clock.Advance(time.Millisecond)

	require.NoError(t, f.tr.EndTrace(context.Background()))

	require.Len(t, f.exporter.traces, 1)
	exported := f.exporter.traces[0]
	assert.Equal(t, traceID, exported.ID)
	require.Len(t, exported.Spans, 2)
	for _, span := range exported.Spans {
		assert.True(t, span.Ended(), "%q still open", span.Name)
	}
	assert.Equal(t, epoch.Add(2*time.Millisecond), root.End)

	assert.Equal(t, tracer.SamplingWaiting, f.tr.SamplingState())
	assert.Empty(t, f.tr.CurrentTraceID())
	assert.Empty(t, f.tr.Spans())
	assert.Equal(t, 1, f.observer.count("trace.end"))
}

func TestEndTrace_ExporterError(t *testing.T) {
	t.Parallel()
	f := sampling(t)
	f.exporter.err = errors.New("collector unavailable")
	f.tr.StartSpan("root")

	err := f.tr.EndTrace(context.Background())
	require.ErrorIs(t, err, f.exporter.err)
	assert.Equal(t, tracer.SamplingWaiting, f.tr.SamplingState())
}

func TestEndTrace_NotSampling(t *testing.T) {
	t.Parallel()
	f := newFixture(t, tracer.Config{}, sampler.Never())
	f.tr.StartTrace()

	require.NoError(t, f.tr.EndTrace(context.Background()))
	assert.Empty(t, f.exporter.traces)
	assert.Equal(t, tracer.SamplingWaiting, f.tr.SamplingState())
}

func TestTrashTrace(t *testing.T) {
	t.Parallel()
	f := sampling(t)
	f.tr.StartSpan("root")
	f.tr.StartSpan("child")

	f.tr.TrashTrace()
	assert.Equal(t, tracer.SamplingWaiting, f.tr.SamplingState())
	assert.Empty(t, f.tr.Spans())
	assert.Empty(t, f.tr.CurrentSpanID())
	assert.Empty(t, f.exporter.traces)
	assert.Equal(t, 1, f.observer.count("trace.trash"))

	// A new trace starts from scratch.
	assert.Equal(t, tracer.Sampling, f.tr.StartTrace())
	assert.Empty(t, f.tr.StartSpan("fresh").ParentSpanID)
}

func TestSamplingExclusivity(t *testing.T) {
	t.Parallel()
	f := newFixture(t, tracer.Config{}, sampler.Always())

	valid := map[tracer.SamplingState]bool{
		tracer.SamplingWaiting:  true,
		tracer.Sampling:         true,
		tracer.SamplingOff:      true,
		tracer.SamplingDisabled: true,
	}
	steps := []func(){
		func() { f.tr.StartTrace() },
		func() { f.tr.StartSpan("x") },
		func() { f.tr.TrashTrace() },
		func() { f.tr.StartTrace(tracer.ForceSampling(false)) },
		func() { _ = f.tr.EndTrace(context.Background()) },
		func() { f.tr.Disable() },
		func() { f.tr.Enable() },
	}
	for _, step := range steps {
		step()
		assert.True(t, valid[f.tr.SamplingState()], "state %v", f.tr.SamplingState())
	}
	assert.Equal(t, "waiting", f.tr.SamplingState().String())
}

func TestRun_Error(t *testing.T) {
	t.Parallel()
	f := sampling(t)
	boom := errors.New("boom")

	err := f.tr.Run("work", func() error {
		f.clock.Advance(3 * time.Millisecond)
		return boom
	})
	require.ErrorIs(t, err, boom)

	spans := f.tr.Spans()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, tracer.StatusError, span.Status.Code)
	assert.Equal(t, "boom", span.Status.Message)
	assert.Greater(t, span.Duration(), time.Duration(0))
	assert.Nil(t, f.tr.CurrentSpan())
}

func TestRun_Panic(t *testing.T) {
	t.Parallel()
	f := sampling(t)
	parent := f.tr.StartSpan("parent")

	assert.PanicsWithValue(t, "boom", func() {
		_ = f.tr.Run("work", func() error {
			f.clock.Advance(time.Millisecond)
			panic("boom")
		})
	})

	spans := f.tr.Spans()
	require.Len(t, spans, 2)
	work := spans[1]
	assert.True(t, work.Ended())
	assert.Equal(t, tracer.StatusError, work.Status.Code)
	assert.Equal(t, "boom", work.Status.Message)
	assert.Equal(t, parent, f.tr.CurrentSpan())
}

func TestRunValue(t *testing.T) {
	t.Parallel()
	f := sampling(t)

	n, err := tracer.RunValue(f.tr, "count", func() (int, error) { return 42, nil },
		tracer.WithAttributes(map[string]any{"table": "orders"}))
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	span := f.tr.Spans()[0]
	assert.Equal(t, tracer.StatusUnset, span.Status.Code)
	assert.True(t, span.Ended())
}

func TestRun_NotSampling(t *testing.T) {
	t.Parallel()
	f := newFixture(t, tracer.Config{}, sampler.Never())
	boom := errors.New("boom")

	assert.ErrorIs(t, f.tr.Run("work", func() error { return boom }), boom)
	assert.Panics(t, func() {
		_ = f.tr.Run("work", func() error { panic("boom") })
	})
}

func TestStatus_MessageOnlyForErrors(t *testing.T) {
	t.Parallel()
	f := sampling(t)
	span := f.tr.StartSpan("x")

	span.SetStatus(tracer.StatusOK, "ignored")
	assert.Equal(t, tracer.Status{Code: tracer.StatusOK}, span.Status)

	var nilSpan *tracer.Span
	assert.NotPanics(t, func() {
		nilSpan.SetStatus(tracer.StatusError, "x")
		nilSpan.SetAttribute("k", "v")
		nilSpan.RecordError(errors.New("x"))
		nilSpan.SetName("y")
	})
}

func TestTraceParentAndContext(t *testing.T) {
	t.Parallel()
	f := newFixture(t, tracer.Config{}, sampler.Always())

	assert.Empty(t, f.tr.TraceParent())
	ctx := context.Background()
	assert.Equal(t, ctx, f.tr.ContextWithSpan(ctx))

	f.tr.StartTrace()
	assert.Empty(t, f.tr.TraceParent(), "no span to propagate yet")

	span := f.tr.StartSpan("root")
	assert.Equal(t, "00-"+span.TraceID+"-"+span.SpanID+"-01", f.tr.TraceParent())

	sc := trace.SpanContextFromContext(f.tr.ContextWithSpan(ctx))
	assert.True(t, sc.IsValid())
	assert.True(t, sc.IsSampled())
	assert.Equal(t, span.SpanID, sc.SpanID().String())
	assert.Equal(t, span.TraceID, sc.TraceID().String())
}
