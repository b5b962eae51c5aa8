// Package cli holds the small interactive helpers shared by the brandstudio
// subcommands.
package cli

import (
	"fmt"
	"time"
)

// FormatElapsed renders a duration as M:SS or H:MM:SS for progress output.
func FormatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
