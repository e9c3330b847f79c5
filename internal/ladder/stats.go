package ladder

import "fmt"

// FormatStats renders a season record as wins–losses, e.g. "3–1".
func FormatStats(p Player) string {
	return fmt.Sprintf("%d–%d", p.Wins, p.Losses)
}
