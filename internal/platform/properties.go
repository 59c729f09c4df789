package platform

import (
	"math"
	"strings"

	"github.com/mj1618/openwindows/internal/model"
)

// Unsupported marks a key that was present but held a value type
// the platform layer does not copy.
type Unsupported struct{}

// Properties is one window's property record, copied out of the native
// dictionary. Values are int64, float64, string, bool or Unsupported.
type Properties map[string]any

// Int returns the value at key as an int. Missing keys, fractional
// floats and non-numeric values report false.
func (p Properties) Int(key string) (int, bool) {
	switch v := p[key].(type) {
	case int64:
		return int(v), true
	case int:
		return v, true
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// IntOr returns Int(key), or def when the value is absent or unconvertible.
func (p Properties) IntOr(key string, def int) int {
	if n, ok := p.Int(key); ok {
		return n
	}
	return def
}

// String returns the string at key, or "" when missing or not a string.
func (p Properties) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// ListOptions controls window listing.
type ListOptions struct {
	PID int    // Filter by PID (0 = unset)
	App string // Filter by app name, case-insensitive ("" = unset)
}

// Matches reports whether w passes the PID and App filters.
func (o ListOptions) Matches(w model.Window) bool {
	if o.PID != 0 && w.PID != o.PID {
		return false
	}
	if o.App != "" && !strings.EqualFold(w.App, o.App) {
		return false
	}
	return true
}
