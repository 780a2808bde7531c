package escrow

import "github.com/shopspring/decimal"

// Classify derives the sync state of one secondary network from the bridge
// mirror, the canonical lock and the lock on that network. A nil record
// means the subgraph returned no row and never compares equal.
//
// Syncing requires the secondary record to differ in both bias and slope; a
// record differing in only one of them is reported as Unsynced.
func Classify(bridged *BridgedLock, canonical, secondary *Lock) SyncState {
	if bridged == nil {
		return Unsynced
	}

	var canonicalBias, canonicalSlope, secondaryBias, secondarySlope *string
	if canonical != nil {
		canonicalBias, canonicalSlope = &canonical.Bias, &canonical.Slope
	}
	if secondary != nil {
		secondaryBias, secondarySlope = &secondary.Bias, &secondary.Slope
	}

	bridgeMatchesCanonical := sameAmount(&bridged.Bias, canonicalBias) &&
		sameAmount(&bridged.Slope, canonicalSlope)

	if bridgeMatchesCanonical &&
		sameAmount(canonicalBias, secondaryBias) &&
		sameAmount(canonicalSlope, secondarySlope) {
		return Synced
	}

	if bridgeMatchesCanonical &&
		!sameAmount(&bridged.Bias, secondaryBias) &&
		!sameAmount(&bridged.Slope, secondarySlope) {
		return Syncing
	}

	return Unsynced
}

// sameAmount compares two decimal strings by value so that "10" and "10.0"
// are equal. Missing values are never equal; values that do not parse fall
// back to exact string comparison.
func sameAmount(a, b *string) bool {
	if a == nil || b == nil {
		return false
	}
	da, errA := decimal.NewFromString(*a)
	db, errB := decimal.NewFromString(*b)
	if errA != nil || errB != nil {
		return *a == *b
	}
	return da.Equal(db)
}
