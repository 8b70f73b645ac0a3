package worker

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	chesserrors "github.com/lgbarn/chessnotation-go/internal/errors"
	"github.com/lgbarn/chessnotation-go/internal/testutil"
)

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index, Source: item.Source}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Text: testutil.ScholarsMate, Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPoolParsesDocuments(t *testing.T) {
	items := []WorkItem{
		{Text: testutil.ScholarsMate, Source: "a.pgn", Index: 0},
		{Text: "[Event \"x\"]\n\n1. e4 e5 2. Qh9", Source: "a.pgn", Index: 1},
		{Text: testutil.AnnotatedGame, Source: "b.pgn", Index: 2},
	}

	results := Run(items, nil, WithWorkers(3))
	testutil.AssertEqual(t, len(results), 3)

	testutil.AssertNoError(t, results[0].Err)
	testutil.AssertEqual(t, results[0].Document.Len(), 7)

	if !errors.Is(results[1].Err, chesserrors.ErrInvalidPGN) {
		t.Errorf("results[1].Err = %v; want ErrInvalidPGN", results[1].Err)
	}
	testutil.AssertNil(t, results[1].Document)
	testutil.AssertEqual(t, results[1].Source, "a.pgn")

	testutil.AssertNoError(t, results[2].Err)
	testutil.AssertEqual(t, results[2].Document.Len(), 12)
}

func TestPoolEarlyStop(t *testing.T) {
	var processed int32
	slow := func(item WorkItem) ProcessResult {
		atomic.AddInt32(&processed, 1)
		time.Sleep(5 * time.Millisecond)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slow, WithWorkers(1), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if got := atomic.LoadInt32(&processed); got >= numItems {
		t.Errorf("processed = %d; want fewer than %d after Stop", got, numItems)
	}
}

func TestPoolTrySubmit(t *testing.T) {
	block := make(chan struct{})
	pool := NewPool(func(item WorkItem) ProcessResult {
		<-block
		return ProcessResult{Index: item.Index}
	}, WithBufferSize(1))

	if !pool.TrySubmit(WorkItem{Index: 0}) {
		t.Fatal("TrySubmit() into empty buffer = false; want true")
	}
	if pool.TrySubmit(WorkItem{Index: 1}) {
		t.Error("TrySubmit() into full buffer = true; want false")
	}

	pool.Stop()
	if pool.TrySubmit(WorkItem{Index: 2}) {
		t.Error("TrySubmit() after Stop = true; want false")
	}
	if !pool.IsStopped() {
		t.Error("IsStopped() = false after Stop")
	}

	close(block)
	pool.Start()
	go pool.Close()
	collectResults(pool)
}

func TestRunPreservesOrder(t *testing.T) {
	variableDelay := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index}
	}

	const numItems = 20
	items := make([]WorkItem, numItems)
	for i := range items {
		items[i] = WorkItem{Index: i}
	}

	results := Run(items, variableDelay, WithWorkers(4), WithBufferSize(4))
	testutil.AssertEqual(t, len(results), numItems)
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results[%d].Index = %d; want %d", i, r.Index, i)
		}
	}
}

func TestRunEmpty(t *testing.T) {
	testutil.AssertEqual(t, len(Run(nil, nil)), 0)
}

func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name       string
		opts       []PoolOption
		workers    int
		bufferSize int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"invalid values ignored", []PoolOption{WithWorkers(0), WithBufferSize(-3)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(nil, tt.opts...)
			if pool.NumWorkers() != tt.workers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.workers)
			}
			if pool.bufferSize != tt.bufferSize {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.bufferSize)
			}
		})
	}
}
