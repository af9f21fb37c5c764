package diag

import (
	"sync"

	"finlint/internal/source"
)

// Reporter is the minimal contract for receiving diagnostics from rules.
// Implementations: BagReporter (collects into a Bag), NopReporter,
// MultiReporter (fan-out), DedupReporter, SyncReporter.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter forwards diagnostics into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// MultiReporter fans a diagnostic out to several sinks.
type MultiReporter []Reporter

func (rs MultiReporter) Report(d Diagnostic) {
	for _, r := range rs {
		if r != nil {
			r.Report(d)
		}
	}
}

type dedupKey struct {
	code  Code
	sev   Severity
	file  source.FileID
	start uint32
	end   uint32
	msg   string
}

// DedupReporter wraps another Reporter and suppresses duplicate
// diagnostics with the same code, severity, primary span and message.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter returns a Reporter that filters out duplicates while
// forwarding unique diagnostics to the provided reporter.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(d Diagnostic) {
	if r == nil || r.next == nil {
		return
	}
	key := dedupKey{
		code:  d.Code,
		sev:   d.Severity,
		file:  d.Primary.File,
		start: d.Primary.Start,
		end:   d.Primary.End,
		msg:   d.Message,
	}
	if _, dup := r.seen[key]; dup {
		return
	}
	r.seen[key] = struct{}{}
	r.next.Report(d)
}

// SyncReporter makes any Reporter safe for concurrent use. Runners that
// lint files in parallel share one SyncReporter-wrapped sink.
type SyncReporter struct {
	mu   sync.Mutex
	next Reporter
}

// NewSyncReporter wraps next with a mutex.
func NewSyncReporter(next Reporter) *SyncReporter {
	return &SyncReporter{next: next}
}

func (r *SyncReporter) Report(d Diagnostic) {
	if r == nil || r.next == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next.Report(d)
}
