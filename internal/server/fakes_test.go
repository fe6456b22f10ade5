package server

import (
	"context"
	"sync"

	"taskedge/internal/models"
	"taskedge/internal/storage"
	"taskedge/internal/summary"
)

// fakeStore is an in-memory TaskStore and PreferenceStore with error
// injection, so handlers can be exercised without a database.
type fakeStore struct {
	mu    sync.Mutex
	tasks map[string]models.Task
	order []string // creation order, oldest first
	prefs map[string]string

	ListErr    error
	CreateErr  error
	GetErr     error
	UpdateErr  error
	DeleteErr  error
	GetPrefErr error
	SetPrefErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tasks: make(map[string]models.Task),
		prefs: make(map[string]string),
	}
}

func (f *fakeStore) ListTasks(_ context.Context) ([]models.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Task, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		out = append(out, f.tasks[f.order[i]])
	}
	return out, nil
}

func (f *fakeStore) CreateTask(_ context.Context, t models.Task) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[t.ID] = t
	f.order = append(f.order, t.ID)
	return nil
}

func (f *fakeStore) GetTask(_ context.Context, id string) (models.Task, error) {
	if f.GetErr != nil {
		return models.Task{}, f.GetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok {
		return models.Task{}, storage.ErrNotFound
	}
	return t, nil
}

func (f *fakeStore) UpdateTask(_ context.Context, t models.Task) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[t.ID]; !ok {
		return storage.ErrNotFound
	}
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeStore) DeleteTask(_ context.Context, id string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.tasks, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeStore) GetPreference(_ context.Context, key string) (string, error) {
	if f.GetPrefErr != nil {
		return "", f.GetPrefErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prefs[key], nil
}

func (f *fakeStore) SetPreference(_ context.Context, key, value string) error {
	if f.SetPrefErr != nil {
		return f.SetPrefErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefs[key] = value
	return nil
}

func (f *fakeStore) taskCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tasks)
}

func (f *fakeStore) task(id string) (models.Task, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	return t, ok
}

// fakeSummarizer returns a fixed Result and records every description it was
// asked to summarize.
type fakeSummarizer struct {
	mu     sync.Mutex
	result summary.Result
	calls  []string
}

func (f *fakeSummarizer) Summarize(_ context.Context, description string) summary.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, description)
	return f.result
}

func (f *fakeSummarizer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
