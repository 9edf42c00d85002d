package benefits

import (
	"math"

	"household-engine/internal/params"
)

// CommuteDeduction returns the annual commute deduction. The daily round
// trip is truncated to whole kilometres; the first FreeKm are not
// deductible, kilometres up to BandCeilingKm accrue Rate1 and the rest
// accrue Rate2. Remote municipalities use the remote rates for both bands.
// Bridge crossings add a fixed amount per crossing; unknown bridge ids add
// nothing.
func CommuteDeduction(p params.CommuteParams, oneWayKm float64, days int, remote bool, bridges map[string]int) float64 {
	rate1, rate2 := p.Rate1, p.Rate2
	if remote {
		rate1, rate2 = p.RemoteRate1, p.RemoteRate2
	}

	roundTrip := math.Floor(oneWayKm * 2)
	ceiling, free := float64(p.BandCeilingKm), float64(p.FreeKm)
	band1Km := max(0, min(roundTrip, ceiling)-free)
	band2Km := max(0, roundTrip-ceiling)

	deduction := (band1Km*rate1 + band2Km*rate2) * float64(days)

	for bridge, count := range bridges {
		deduction += p.BridgeSurcharges[bridge] * float64(count)
	}
	return deduction
}

// KnownBridge reports whether a bridge id carries a surcharge.
func KnownBridge(p params.CommuteParams, bridge string) bool {
	_, ok := p.BridgeSurcharges[bridge]
	return ok
}
