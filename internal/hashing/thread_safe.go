package hashing

import (
	"sync"

	"github.com/lgbarn/chessnotation-go/internal/pgn"
)

// ThreadSafeDuplicateDetector is a DuplicateDetector shared by parse
// workers. Signatures are computed by the calling goroutine, so only the
// table lookup is serialized.
type ThreadSafeDuplicateDetector struct {
	mu       sync.RWMutex
	detector *DuplicateDetector
}

// NewThreadSafeDuplicateDetector creates a detector for concurrent use.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{detector: NewDuplicateDetector(maxCapacity)}
}

// CheckAndAdd reports whether doc was seen before and records it. Of two
// equal documents checked concurrently, exactly one is reported unique.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(doc *pgn.Document) bool {
	if doc == nil {
		return false
	}
	sig := Signature(doc)

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.checkSignature(sig)
}

// Counts returns the unique and duplicate totals under one lock.
func (d *ThreadSafeDuplicateDetector) Counts() (unique, duplicates int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount(), d.detector.DuplicateCount()
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	_, duplicates := d.Counts()
	return duplicates
}

// UniqueCount returns the number of unique games stored.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	unique, _ := d.Counts()
	return unique
}
