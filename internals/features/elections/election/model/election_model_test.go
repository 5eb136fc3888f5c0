package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElectionPredicates(t *testing.T) {
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	cases := []struct {
		name       string
		enabled    bool
		endTime    *time.Time
		wantActive bool
		wantEnded  bool
	}{
		{"enabled tanpa batas waktu", true, nil, true, false},
		{"enabled, end_time masih di depan", true, &future, true, false},
		{"enabled, end_time sudah lewat", true, &past, false, true},
		{"disabled tanpa batas waktu", false, nil, false, false},
		{"disabled, end_time sudah lewat", false, &past, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := ElectionModel{
				ElectionEnabled: tc.enabled,
				ElectionEndTime: tc.endTime,
			}
			assert.Equal(t, tc.wantActive, m.IsActive())
			assert.Equal(t, tc.wantEnded, m.HasEnded())
		})
	}
}
