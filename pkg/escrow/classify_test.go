package escrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lock(bias, slope string) *Lock {
	return &Lock{Bias: bias, Slope: slope, Timestamp: 1_700_000_000}
}

func bridged(bias, slope string) *BridgedLock {
	return &BridgedLock{Bias: bias, Slope: slope}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		bridged   *BridgedLock
		canonical *Lock
		secondary *Lock
		want      SyncState
	}{
		{
			name:      "all three equal",
			bridged:   bridged("10", "1"),
			canonical: lock("10", "1"),
			secondary: lock("10", "1"),
			want:      Synced,
		},
		{
			name:      "equal by value with different formatting",
			bridged:   bridged("10.0", "1"),
			canonical: lock("10", "1.00"),
			secondary: lock("10.000", "1"),
			want:      Synced,
		},
		{
			name:      "bridge caught up, secondary differs in both fields",
			bridged:   bridged("10", "1"),
			canonical: lock("10", "1"),
			secondary: lock("5", "0.5"),
			want:      Syncing,
		},
		{
			name:      "bridge caught up, secondary has no lock yet",
			bridged:   bridged("10", "1"),
			canonical: lock("10", "1"),
			secondary: nil,
			want:      Syncing,
		},
		{
			name:      "secondary differs in bias only",
			bridged:   bridged("10", "1"),
			canonical: lock("10", "1"),
			secondary: lock("5", "1"),
			want:      Unsynced,
		},
		{
			name:      "secondary differs in slope only",
			bridged:   bridged("10", "1"),
			canonical: lock("10", "1"),
			secondary: lock("10", "0.5"),
			want:      Unsynced,
		},
		{
			name:      "bridge stale relative to canonical",
			bridged:   bridged("8", "0.8"),
			canonical: lock("10", "1"),
			secondary: lock("8", "0.8"),
			want:      Unsynced,
		},
		{
			name:      "bridge stale and secondary different",
			bridged:   bridged("8", "0.8"),
			canonical: lock("10", "1"),
			secondary: lock("5", "0.5"),
			want:      Unsynced,
		},
		{
			name:      "canonical lock missing",
			bridged:   bridged("10", "1"),
			canonical: nil,
			secondary: lock("10", "1"),
			want:      Unsynced,
		},
		{
			name:      "no bridged lock",
			bridged:   nil,
			canonical: lock("10", "1"),
			secondary: lock("10", "1"),
			want:      Unsynced,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.bridged, tt.canonical, tt.secondary))
		})
	}
}

func TestClassify_SingleFieldDifferenceIsNeverSyncing(t *testing.T) {
	values := []string{"0", "1", "2.5", "100"}
	for _, b := range values {
		for _, s := range values {
			for _, other := range values {
				if other == b {
					continue
				}
				br, canon := bridged(b, s), lock(b, s)
				assert.Equal(t, Unsynced, Classify(br, canon, lock(other, s)), "bias %s->%s", b, other)
				if other != s {
					assert.Equal(t, Unsynced, Classify(br, canon, lock(b, other)), "slope %s->%s", s, other)
				}
			}
		}
	}
}

func TestSameAmount(t *testing.T) {
	s := func(v string) *string { return &v }

	assert.True(t, sameAmount(s("1"), s("1.000")))
	assert.False(t, sameAmount(s("1"), s("1.0001")))
	assert.False(t, sameAmount(nil, s("1")))
	assert.False(t, sameAmount(nil, nil))
	assert.True(t, sameAmount(s("n/a"), s("n/a")))
	assert.False(t, sameAmount(s("n/a"), s("0")))
}
