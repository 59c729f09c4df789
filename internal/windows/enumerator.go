// Package windows lists the visible application windows reported by a
// platform.WindowSource.
package windows

import (
	"github.com/mj1618/openwindows/internal/model"
	"github.com/mj1618/openwindows/internal/platform"
	"github.com/sirupsen/logrus"
)

// Enumerator turns raw window records into visible windows.
type Enumerator struct {
	source platform.WindowSource
	log    logrus.FieldLogger
}

// NewEnumerator creates an Enumerator over source. A nil log uses the
// logrus standard logger.
func NewEnumerator(source platform.WindowSource, log logrus.FieldLogger) *Enumerator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Enumerator{source: source, log: log}
}

// ListVisible queries the source once and returns the windows that pass
// Decode and opts, in the order the source reported them. A failed query
// is logged and yields an empty list.
func (e *Enumerator) ListVisible(opts platform.ListOptions) []model.Window {
	records, err := e.source.CopyWindowInfo()
	if err != nil {
		e.log.WithError(err).Error("failed to get window info")
		return []model.Window{}
	}

	windows := make([]model.Window, 0, len(records))
	for i, p := range records {
		w, reason := decode(p)
		if reason != "" {
			e.log.WithFields(logrus.Fields{
				"index":  i,
				"owner":  p.String(platform.KeyOwnerName),
				"reason": reason,
			}).Trace("skipping window")
			continue
		}
		if !opts.Matches(w) {
			continue
		}
		windows = append(windows, w)
	}
	e.log.WithFields(logrus.Fields{
		"records": len(records),
		"visible": len(windows),
	}).Debug("listed windows")
	return windows
}

// Decode extracts a Window from one raw record. It reports false for
// non-zero layers, zero or unparsable alpha, an empty name or owner,
// and a missing owner PID.
func Decode(p platform.Properties) (model.Window, bool) {
	w, reason := decode(p)
	return w, reason == ""
}

func decode(p platform.Properties) (model.Window, string) {
	layer := p.IntOr(platform.KeyLayer, 0)
	alpha := p.IntOr(platform.KeyAlpha, 0)
	if layer != 0 {
		return model.Window{}, "non-zero layer"
	}
	if alpha == 0 {
		return model.Window{}, "transparent"
	}

	title := p.String(platform.KeyName)
	owner := p.String(platform.KeyOwnerName)
	pid, ok := p.Int(platform.KeyOwnerPID)
	switch {
	case title == "":
		return model.Window{}, "empty title"
	case owner == "":
		return model.Window{}, "empty owner"
	case !ok:
		return model.Window{}, "missing pid"
	}

	return model.Window{
		PID:   pid,
		App:   owner,
		Title: title,
		ID:    p.IntOr(platform.KeyNumber, 0),
	}, ""
}
