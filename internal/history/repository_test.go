package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ytget/bulkget/internal/model"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "data", "history.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRecordAndList(t *testing.T) {
	repo := openTestRepo(t)

	result := &model.BulkResult{
		TotalVideos:     5,
		Successful:      4,
		Failed:          1,
		OutputDirectory: "/tmp/out",
		Errors:          []model.BulkError{{VideoID: "v3", Title: "Broken", Error: "boom"}},
	}
	started := time.Now().Add(-time.Minute)
	finished := time.Now()

	run, err := repo.Record("https://www.youtube.com/playlist?list=PL1", result, started, finished)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if run.ID == "" {
		t.Error("Expected generated run id")
	}

	runs, err := repo.List(10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	if got.ID != run.ID {
		t.Errorf("Expected id %s, got %s", run.ID, got.ID)
	}
	if got.URL != "https://www.youtube.com/playlist?list=PL1" {
		t.Errorf("Unexpected URL: %s", got.URL)
	}
	if got.TotalVideos != 5 || got.Successful != 4 || got.Failed != 1 || got.Skipped != 0 {
		t.Errorf("Unexpected counts: %+v", got)
	}
	if got.OutputDirectory != "/tmp/out" {
		t.Errorf("Unexpected output directory: %s", got.OutputDirectory)
	}
}

func TestListOrderAndLimit(t *testing.T) {
	repo := openTestRepo(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		started := base.Add(time.Duration(i) * time.Minute)
		_, err := repo.Record("url", &model.BulkResult{TotalVideos: i}, started, started.Add(time.Second))
		if err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	runs, err := repo.List(2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].TotalVideos != 2 || runs[1].TotalVideos != 1 {
		t.Errorf("Unexpected order: %d, %d", runs[0].TotalVideos, runs[1].TotalVideos)
	}
}

func TestClear(t *testing.T) {
	repo := openTestRepo(t)

	now := time.Now()
	if _, err := repo.Record("url", &model.BulkResult{}, now, now); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if err := repo.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	runs, err := repo.List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	repo, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	now := time.Now()
	if _, err := repo.Record("url", &model.BulkResult{TotalVideos: 1}, now, now); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	repo.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Reopen error = %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected persisted run after reopen, got %d", len(runs))
	}
}
