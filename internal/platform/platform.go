package platform

import "errors"

// Well-known keys of a CoreGraphics window info dictionary.
const (
	KeyLayer     = "kCGWindowLayer"
	KeyAlpha     = "kCGWindowAlpha"
	KeyName      = "kCGWindowName"
	KeyOwnerName = "kCGWindowOwnerName"
	KeyOwnerPID  = "kCGWindowOwnerPID"
	KeyNumber    = "kCGWindowNumber"
)

// Keys lists every key a WindowSource is expected to copy out of the native record.
var Keys = []string{KeyLayer, KeyAlpha, KeyName, KeyOwnerName, KeyOwnerPID, KeyNumber}

// ErrQueryUnavailable is returned when the window server query yields no list.
var ErrQueryUnavailable = errors.New("window list query returned no result")

// WindowSource queries the OS window registry.
type WindowSource interface {
	// CopyWindowInfo returns one Properties record per enumerable window,
	// across all windows regardless of on-screen state, in the order the
	// window server reports them. No native memory is referenced by the result.
	CopyWindowInfo() ([]Properties, error)
}
