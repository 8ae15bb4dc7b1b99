package pool

import (
	"sync"
	"testing"
)

func TestSearchContext_Basic(t *testing.T) {
	ctx := Get(10)
	defer Put(ctx)

	if ctx.IsTested(0) {
		t.Error("New context should have no tested candidates")
	}

	if ctx.MarkTested(0) {
		t.Error("First mark should return false")
	}

	if !ctx.IsTested(0) {
		t.Error("Candidate 0 should be marked as tested")
	}

	if !ctx.MarkTested(0) {
		t.Error("Second mark should return true")
	}

	if ctx.Size() != 10 {
		t.Errorf("Size should be 10, got %d", ctx.Size())
	}
}

func TestSearchContext_Capacity(t *testing.T) {
	ctx := Get(200000)
	defer Put(ctx)

	ctx.MarkTested(0)
	ctx.MarkTested(100000)
	ctx.MarkTested(199999)

	if !ctx.IsTested(0) || !ctx.IsTested(100000) || !ctx.IsTested(199999) {
		t.Error("All marked candidates should be tested")
	}
	if ctx.TestedCount() != 3 {
		t.Errorf("Expected 3 tested, got %d", ctx.TestedCount())
	}
}

func TestSearchContext_Reset(t *testing.T) {
	ctx := Get(2000)
	defer Put(ctx)

	ctx.MarkTested(0)
	ctx.MarkTested(100)
	ctx.MarkTested(1000)

	ctx.Reset(2000)

	if ctx.IsTested(0) || ctx.IsTested(100) || ctx.IsTested(1000) {
		t.Error("Reset should clear all tested candidates")
	}
	if ctx.TestedCount() != 0 {
		t.Errorf("Tested count should be 0 after reset, got %d", ctx.TestedCount())
	}
}

func TestSearchContext_Pool(t *testing.T) {
	ctx1 := Get(64)
	ctx1.MarkTested(42)
	Put(ctx1)

	ctx2 := Get(64)
	defer Put(ctx2)

	// Possibly the same object, but always reset.
	if ctx2.IsTested(42) {
		t.Error("Pooled context should be reset")
	}
}

func TestSearchContext_Concurrent(t *testing.T) {
	const numGoroutines = 50
	const opsPerGoroutine = 200

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for range numGoroutines {
		go func() {
			defer wg.Done()

			for range opsPerGoroutine {
				ctx := Get(100)

				for k := range 100 {
					ctx.MarkTested(k)
				}

				if n := ctx.TestedCount(); n != 100 {
					t.Errorf("Expected 100 tested, got %d", n)
				}

				Put(ctx)
			}
		}()
	}

	wg.Wait()
}

func BenchmarkSearchContext_Get(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		ctx := Get(1000)
		Put(ctx)
	}
}
