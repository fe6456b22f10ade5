// Package summary wraps the external text-generation capability that
// produces one-sentence task summaries. Summarization is always best-effort:
// a failed attempt is reported through Result so callers can log it, but it
// must never fail the enclosing request.
package summary

// Result is the outcome of a summarization attempt.
type Result struct {
	Summary string
	Err     error
}

// OK reports whether the attempt produced a usable summary.
func (r Result) OK() bool {
	return r.Err == nil
}

// ShouldRegenerate decides whether a task update needs a fresh summary.
// supplied is nil when the request did not include a description. A summary
// is regenerated only when the description actually changed and the new
// value is non-empty.
func ShouldRegenerate(stored string, supplied *string) bool {
	if supplied == nil {
		return false
	}
	return *supplied != "" && *supplied != stored
}
