package ladder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStats(t *testing.T) {
	assert.Equal(t, "3–1", FormatStats(Player{Wins: 3, Losses: 1}))
	assert.Equal(t, "0–0", FormatStats(Player{}))
	assert.Equal(t, "12–7", FormatStats(Player{Wins: 12, Losses: 7}))
}
