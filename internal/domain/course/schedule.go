package course

import (
	"sort"
	"strings"

	"basecampus-api/internal/domain/booking"
)

// BuildScheduleSummary renders the denormalized schedule_info text for a
// course: one `YYYY-MM-DD (HH:mm - HH:mm)` line per non-cancelled
// booking, ascending by start time, newline-joined. The summary is a
// cache with no identity of its own and must always be recomputed in
// full from the booking rows, never patched incrementally.
func BuildScheduleSummary(slots []booking.TimeSlot) string {
	if len(slots) == 0 {
		return ""
	}

	sorted := make([]booking.TimeSlot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start().Before(sorted[j].Start())
	})

	lines := make([]string, len(sorted))
	for i, slot := range sorted {
		lines[i] = slot.Summary()
	}
	return strings.Join(lines, "\n")
}
