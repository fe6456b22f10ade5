package models

import "time"

// Task represents a single tracked work item. AISummary is derived from the
// description on a best-effort basis and may be stale or absent at any time.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	AISummary   *string   `json:"ai_summary"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Task statuses.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// DefaultTaskStatus is assigned to newly created tasks.
const DefaultTaskStatus = StatusPending

// ValidTaskStatuses enumerates the statuses a task may hold.
var ValidTaskStatuses = map[string]struct{}{
	StatusPending: {},
	StatusDone:    {},
}

// UI themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// PreferenceTheme is the key under which the theme preference is stored.
const PreferenceTheme = "theme"

// DefaultTheme is returned when no theme preference has been stored yet.
const DefaultTheme = ThemeLight

// ValidThemes enumerates the themes a client may select.
var ValidThemes = map[string]struct{}{
	ThemeLight: {},
	ThemeDark:  {},
}
