package diag

import (
	"testing"

	"finlint/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)

	if !b.Add(Diagnostic{Code: UnnecessaryFinalWithType}) {
		t.Error("first Add rejected")
	}
	if !b.Add(Diagnostic{Code: UnnecessaryFinalWithoutType}) {
		t.Error("second Add rejected")
	}
	if b.Add(Diagnostic{Code: MissingTypeAnnotation}) {
		t.Error("Add beyond the limit accepted")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(8)
	b.Add(Diagnostic{Severity: SevInfo})
	if b.HasWarnings() || b.HasErrors() {
		t.Error("info-only bag reports warnings or errors")
	}

	b.Add(Diagnostic{Severity: SevWarning})
	if !b.HasWarnings() || b.HasErrors() {
		t.Error("warning bag misreported")
	}

	b.Add(Diagnostic{Severity: SevError})
	if !b.HasErrors() {
		t.Error("error bag misreported")
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Code: UnnecessaryFinalWithType})

	other := NewBag(2)
	other.Add(Diagnostic{Code: MissingTypeAnnotation})
	other.Add(Diagnostic{Code: RedundantTypeAnnotation})

	a.Merge(other)
	if a.Len() != 3 {
		t.Errorf("Len after merge = %d, want 3", a.Len())
	}
	if a.Cap() < 3 {
		t.Errorf("Cap after merge = %d, want >= 3", a.Cap())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})

	d := Diagnostic{
		Code:     UnnecessaryFinalWithType,
		Severity: SevWarning,
		Message:  "x",
		Primary:  source.Span{File: 1, Start: 0, End: 5},
	}
	r.Report(d)
	r.Report(d)

	other := d
	other.Primary.Start = 10
	other.Primary.End = 15
	r.Report(other)

	if bag.Len() != 2 {
		t.Errorf("dedup kept %d diagnostics, want 2", bag.Len())
	}
}

func TestSyncReporterConcurrent(t *testing.T) {
	bag := NewBag(1024)
	r := NewSyncReporter(BagReporter{Bag: bag})

	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 32; i++ {
				r.Report(Diagnostic{Code: UnnecessaryFinalWithType, Primary: source.Span{Start: uint32(i)}})
			}
		}()
	}
	for g := 0; g < 8; g++ {
		<-done
	}

	if bag.Len() != 8*32 {
		t.Errorf("collected %d diagnostics, want %d", bag.Len(), 8*32)
	}
}

func TestMultiReporter(t *testing.T) {
	a, b := NewBag(4), NewBag(4)
	multi := MultiReporter{BagReporter{Bag: a}, nil, BagReporter{Bag: b}}
	multi.Report(Diagnostic{Code: UnnecessaryFinalWithType})

	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("fan-out reached (%d, %d) sinks, want (1, 1)", a.Len(), b.Len())
	}
}
