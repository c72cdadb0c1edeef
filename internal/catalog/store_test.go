package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"montage/internal/catalog"
	"montage/internal/testsupport"
)

func openTestStore(t *testing.T) *catalog.Store {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func sampleRun(jobID string) catalog.Run {
	return catalog.Run{
		JobID:          jobID,
		Title:          "Test Video Project",
		ProjectPath:    "/out/timeline/" + jobID + "_project.fcpxml",
		MixRequestPath: "/out/audio/" + jobID + "_mix_request.json",
		TotalDuration:  30.0,
		Valid:          true,
		ErrorCount:     0,
		WarningCount:   1,
	}
}

func TestRecordRunRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	stored, err := store.RecordRun(ctx, sampleRun("job_round_trip"))
	if err != nil {
		t.Fatalf("record run: %v", err)
	}
	if stored.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if stored.JobID != "job_round_trip" {
		t.Fatalf("job id = %q", stored.JobID)
	}
	if stored.TotalDuration != 30.0 {
		t.Fatalf("total duration = %v", stored.TotalDuration)
	}
	if !stored.Valid || stored.WarningCount != 1 {
		t.Fatalf("validation outcome mangled: %+v", stored)
	}
	if stored.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	fetched, err := store.GetByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if fetched.ProjectPath != stored.ProjectPath {
		t.Fatalf("project path = %q, want %q", fetched.ProjectPath, stored.ProjectPath)
	}
}

func TestRecordRunPreservesExplicitTimestamp(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	run := sampleRun("job_timestamp")
	run.CreatedAt = time.Date(2026, time.March, 5, 12, 30, 0, 0, time.UTC)

	stored, err := store.RecordRun(ctx, run)
	if err != nil {
		t.Fatalf("record run: %v", err)
	}
	if !stored.CreatedAt.Equal(run.CreatedAt) {
		t.Fatalf("created_at = %v, want %v", stored.CreatedAt, run.CreatedAt)
	}
}

func TestGetByIDMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetByID(context.Background(), 9999)
	if !errors.Is(err, catalog.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, jobID := range []string{"job_a", "job_b", "job_c"} {
		if _, err := store.RecordRun(ctx, sampleRun(jobID)); err != nil {
			t.Fatalf("record %s: %v", jobID, err)
		}
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].JobID != "job_c" || runs[2].JobID != "job_a" {
		t.Fatalf("unexpected order: %q first, %q last", runs[0].JobID, runs[2].JobID)
	}

	limited, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("list runs limited: %v", err)
	}
	if len(limited) != 2 || limited[0].JobID != "job_c" {
		t.Fatalf("unexpected limited result: %+v", limited)
	}
}

func TestListRunsByJob(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, jobID := range []string{"job_x", "job_y", "job_x"} {
		if _, err := store.RecordRun(ctx, sampleRun(jobID)); err != nil {
			t.Fatalf("record %s: %v", jobID, err)
		}
	}

	runs, err := store.ListRunsByJob(ctx, "job_x")
	if err != nil {
		t.Fatalf("list by job: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs for job_x, got %d", len(runs))
	}
	for _, run := range runs {
		if run.JobID != "job_x" {
			t.Fatalf("stray run in job filter: %+v", run)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	first, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if _, err := first.RecordRun(context.Background(), sampleRun("job_persist")); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer second.Close()

	runs, err := second.ListRuns(context.Background(), 0)
	if err != nil {
		t.Fatalf("list after reopen: %v", err)
	}
	if len(runs) != 1 || runs[0].JobID != "job_persist" {
		t.Fatalf("run did not survive reopen: %+v", runs)
	}
}
