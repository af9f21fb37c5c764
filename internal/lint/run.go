package lint

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"finlint/internal/ast"
	"finlint/internal/diag"
	"finlint/internal/source"
)

// Run lints one compilation unit with the given rules, emitting findings
// into reporter. Each rule subscribes through its own Context, so every
// diagnostic carries the producing rule's name.
func Run(file *source.File, unit *ast.CompilationUnit, rules []Rule, reporter diag.Reporter) {
	if unit == nil {
		return
	}

	reg := NewRegistry()
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		rule.Register(reg, NewContext(file, reporter, rule.Info().Name))
	}
	reg.walk(unit)
}

// Target pairs a file with its parsed compilation unit.
type Target struct {
	File *source.File
	Unit *ast.CompilationUnit
}

// Runner lints several targets, optionally in parallel. The zero value
// runs every registered rule sequentially.
type Runner struct {
	// Rules is the enabled rule set. Verified for mutual compatibility
	// before the first target is linted.
	Rules []Rule
	// Jobs caps concurrent targets; values below 1 mean sequential.
	Jobs int
}

// Run lints all targets. The reporter is wrapped for concurrent use, so
// any sink may be passed. Returns early when ctx is canceled.
func (r *Runner) Run(ctx context.Context, targets []Target, reporter diag.Reporter) error {
	if err := CheckCompatibility(r.Rules); err != nil {
		return fmt.Errorf("lint run: %w", err)
	}

	jobs := r.Jobs
	if jobs < 1 {
		jobs = 1
	}

	sink := diag.NewSyncReporter(reporter)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, target := range targets {
		target := target
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			Run(target.File, target.Unit, r.Rules, sink)
			return nil
		})
	}

	return g.Wait()
}
