package sqlite

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskedge/internal/models"
	"taskedge/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), logger)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testTask(title string, createdAt time.Time) models.Task {
	return models.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    models.StatusPending,
		Tags:      []string{},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestCreateAndGetTask(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	summary := "Deploys v2 to production."
	task := testTask("Ship release", time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	task.Description = "Deploy v2 to prod"
	task.Tags = []string{"release", "ops"}
	task.AISummary = &summary

	if err := s.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	got, err := s.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Title != task.Title || got.Description != task.Description || got.Status != task.Status {
		t.Errorf("GetTask = %+v, want stored fields", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "release" || got.Tags[1] != "ops" {
		t.Errorf("Tags = %v, want ordered round-trip", got.Tags)
	}
	if got.AISummary == nil || *got.AISummary != summary {
		t.Errorf("AISummary = %v, want %q", got.AISummary, summary)
	}
	if !got.CreatedAt.Equal(task.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, task.CreatedAt)
	}
}

func TestGetTaskNullableFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	task := testTask("Buy milk", time.Now().UTC())
	if err := s.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	got, err := s.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Description != "" {
		t.Errorf("Description = %q, want empty", got.Description)
	}
	if got.AISummary != nil {
		t.Errorf("AISummary = %v, want nil", got.AISummary)
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Errorf("Tags = %v, want empty non-nil slice", got.Tags)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetTask(context.Background(), uuid.NewString())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetTask err = %v, want ErrNotFound", err)
	}
}

func TestListTasksNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		task := testTask(title, base.Add(time.Duration(i)*time.Second))
		if err := s.CreateTask(ctx, task); err != nil {
			t.Fatalf("CreateTask %q: %v", title, err)
		}
	}

	tasks, err := s.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("len(tasks) = %d, want 3", len(tasks))
	}
	for i, want := range []string{"third", "second", "first"} {
		if tasks[i].Title != want {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, want)
		}
	}
}

func TestUpdateTask(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	task := testTask("Ship release", time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	if err := s.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	summary := "Rolls the release back."
	task.Title = "Roll back"
	task.Description = "Roll back the release"
	task.Status = models.StatusDone
	task.AISummary = &summary
	task.UpdatedAt = task.UpdatedAt.Add(time.Minute)
	if err := s.UpdateTask(ctx, task); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	got, err := s.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Title != task.Title || got.Description != task.Description || got.Status != task.Status {
		t.Errorf("GetTask after update = %+v, want updated fields", got)
	}
	if got.AISummary == nil || *got.AISummary != summary {
		t.Errorf("AISummary = %v, want %q", got.AISummary, summary)
	}
	if !got.UpdatedAt.Equal(task.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, task.UpdatedAt)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	s := openTestStore(t)

	task := testTask("ghost", time.Now().UTC())
	if err := s.UpdateTask(context.Background(), task); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("UpdateTask err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTask(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	task := testTask("Ship release", time.Now().UTC())
	if err := s.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if err := s.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := s.GetTask(ctx, task.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetTask after delete err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTaskNotFound(t *testing.T) {
	s := openTestStore(t)

	if err := s.DeleteTask(context.Background(), uuid.NewString()); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("DeleteTask err = %v, want ErrNotFound", err)
	}
}

func TestPreferences(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	value, err := s.GetPreference(ctx, models.PreferenceTheme)
	if err != nil {
		t.Fatalf("GetPreference: %v", err)
	}
	if value != "" {
		t.Errorf("unset preference = %q, want empty", value)
	}

	if err := s.SetPreference(ctx, models.PreferenceTheme, models.ThemeDark); err != nil {
		t.Fatalf("SetPreference: %v", err)
	}
	value, err = s.GetPreference(ctx, models.PreferenceTheme)
	if err != nil {
		t.Fatalf("GetPreference: %v", err)
	}
	if value != models.ThemeDark {
		t.Errorf("preference = %q, want %q", value, models.ThemeDark)
	}

	// Last write wins.
	if err := s.SetPreference(ctx, models.PreferenceTheme, models.ThemeLight); err != nil {
		t.Fatalf("SetPreference overwrite: %v", err)
	}
	value, _ = s.GetPreference(ctx, models.PreferenceTheme)
	if value != models.ThemeLight {
		t.Errorf("preference = %q, want overwritten %q", value, models.ThemeLight)
	}
}
