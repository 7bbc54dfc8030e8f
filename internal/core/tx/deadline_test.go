package tx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeadline(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want uint64
	}{
		{"epoch", NetworkEpoch, 0},
		{"before epoch", NetworkEpoch.Add(-time.Hour), 0},
		{"one hour", NetworkEpoch.Add(time.Hour), 3600000},
		{"unix reference", time.Unix(1459468800, 0).Add(2 * time.Second), 2000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeadlineAt(tc.at))
		})
	}

	at := time.Date(2019, time.June, 5, 12, 30, 0, 0, time.UTC)
	assert.True(t, at.Equal(DeadlineTime(DeadlineAt(at))))
}
