// SPDX-License-Identifier: EPL-2.0

package split

import "log/slog"

// Observer is notified of progress. Calls happen on the goroutine running
// the split, in plan order.
type Observer interface {
	// PlanComputed is called once before any file is written.
	PlanComputed(totalFrames int, plan []Entry)
	// SliceStarted is called before the source is read for entry.
	SliceStarted(entry Entry, path string)
	// SliceWritten is called after the file for entry is closed.
	SliceWritten(entry Entry, path string)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) PlanComputed(int, []Entry)  {}
func (NopObserver) SliceStarted(Entry, string) {}
func (NopObserver) SliceWritten(Entry, string) {}

// LogObserver reports progress to a structured logger.
type LogObserver struct {
	Logger *slog.Logger
}

// NewLogObserver returns a LogObserver writing to logger, or to the
// default logger when logger is nil.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{Logger: logger}
}

func (o *LogObserver) PlanComputed(totalFrames int, plan []Entry) {
	if len(plan) == 0 {
		return
	}

	o.Logger.Info("slice plan computed",
		"frames", totalFrames,
		"slices", len(plan),
		"frames_per_slice", totalFrames/len(plan),
		"leftover", totalFrames%len(plan),
	)
}

func (o *LogObserver) SliceStarted(entry Entry, path string) {
	o.Logger.Debug("writing slice",
		"slice", entry.Index+1,
		"offset", entry.Offset,
		"count", entry.Count,
		"path", path,
	)
}

func (o *LogObserver) SliceWritten(entry Entry, path string) {
	o.Logger.Info("slice written",
		"slice", entry.Index+1,
		"frames", entry.Count,
		"path", path,
	)
}
