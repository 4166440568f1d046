package scenarios

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kilianp07/pmrs/core/schedule"
	"github.com/kilianp07/pmrs/infra/logger"
	"github.com/kilianp07/pmrs/infra/metrics"
)

var scenarioStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func RunScenario(t *testing.T, sc *Scenario) {
	t.Helper()
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewPromRecorderWithRegistry(reg)
	if err != nil {
		t.Fatalf("prom recorder: %v", err)
	}
	gen := schedule.New(nil,
		schedule.WithLogger(logger.NopLogger{}),
		schedule.WithObserver(rec),
		schedule.WithClock(func() time.Time { return scenarioStart }),
	)

	req := sc.Request()
	plan, err := gen.Generate(req)
	if sc.Expected.Error != "" {
		if err == nil {
			t.Fatalf("scenario %s expected %s error, got none", sc.Name, sc.Expected.Error)
		}
		if kind := schedule.ErrorKind(err); kind != sc.Expected.Error {
			t.Errorf("scenario %s expected %s error, got %s (%v)", sc.Name, sc.Expected.Error, kind, err)
		}
		if n, err := testutil.GatherAndCount(reg, "pmrs_generation_errors_total"); err != nil || n != 1 {
			t.Errorf("scenario %s expected one error series, got %d (%v)", sc.Name, n, err)
		}
		return
	}
	if err != nil {
		t.Fatalf("scenario %s: %v", sc.Name, err)
	}

	if got := plan.Schedule.Len(); got != sc.Expected.Days {
		t.Errorf("scenario %s expected %d days, got %d", sc.Name, sc.Expected.Days, got)
	}
	if plan.Meta.CycleDays != sc.Expected.CycleDays {
		t.Errorf("scenario %s expected cycle of %d days, got %d", sc.Name, sc.Expected.CycleDays, plan.Meta.CycleDays)
	}
	if plan.Meta.Seed != sc.Expected.Seed {
		t.Errorf("scenario %s expected seed %d, got %d", sc.Name, sc.Expected.Seed, plan.Meta.Seed)
	}
	for i, want := range sc.Expected.QuickConnects {
		if i >= len(plan.Meta.QuickConnects) {
			t.Fatalf("scenario %s lists %d quick-connects", sc.Name, len(sc.Expected.QuickConnects))
		}
		got := plan.Meta.QuickConnects[i]
		if got.Minute != want.Minute || got.Channel != want.Channel {
			t.Errorf("scenario %s quick-connect %d: got XX:%02d ch %d, want XX:%02d ch %d",
				sc.Name, i+1, got.Minute, got.Channel, want.Minute, want.Channel)
		}
	}

	again, err := gen.Generate(req)
	if err != nil {
		t.Fatalf("scenario %s rerun: %v", sc.Name, err)
	}
	for i := range plan.Schedule {
		if plan.Schedule[i] != again.Schedule[i] {
			t.Errorf("scenario %s day %d differs between runs", sc.Name, i+1)
		}
	}
	if n, err := testutil.GatherAndCount(reg, "pmrs_generations_total"); err != nil || n != 1 {
		t.Errorf("scenario %s expected one generation series, got %d (%v)", sc.Name, n, err)
	}
}
