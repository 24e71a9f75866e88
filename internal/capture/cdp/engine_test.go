package cdp

import (
	"context"
	"testing"
	"time"
)

func TestTabCancelsWithCaller(t *testing.T) {
	e := &Engine{ctx: context.Background()}

	callerCtx, cancelCaller := context.WithCancel(context.Background())
	merged, release := e.tab(callerCtx)
	defer release()

	cancelCaller()
	select {
	case <-merged.Done():
	case <-time.After(time.Second):
		t.Fatalf("expected merged context to cancel with the caller")
	}
}

func TestTabCancelsWithBrowser(t *testing.T) {
	browserCtx, cancelBrowser := context.WithCancel(context.Background())
	e := &Engine{ctx: browserCtx}

	merged, release := e.tab(context.Background())
	defer release()

	cancelBrowser()
	select {
	case <-merged.Done():
	case <-time.After(time.Second):
		t.Fatalf("expected merged context to cancel with the browser")
	}
}

func TestTabReleaseCancelsMerged(t *testing.T) {
	e := &Engine{ctx: context.Background()}

	merged, release := e.tab(context.Background())
	release()

	select {
	case <-merged.Done():
	case <-time.After(time.Second):
		t.Fatalf("expected release to cancel the merged context")
	}
}
