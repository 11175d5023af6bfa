package metrics

import "context"

// Nil-receiver methods must never panic: cmd/reltrack calls them
// unconditionally regardless of whether --metrics was passed, relying on
// a nil *Recorder to behave as a no-op.
func ExampleRecorder_nilSafe() {
	var r *Recorder
	ctx := context.Background()
	r.RecordCommand(ctx, "addent")
	r.RecordNoop(ctx)
	r.RecordRecompute(ctx, "follows")
	_ = r.Shutdown(ctx)
	// Output:
}
