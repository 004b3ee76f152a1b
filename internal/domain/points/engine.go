package points

import (
	"math"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/player"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/stats"
)

// Captaincy selects the final multiplier applied to a player's point total.
type Captaincy int

const (
	CaptaincyNone Captaincy = iota
	CaptaincyVice
	CaptaincyCaptain
)

const (
	runPoints          = 1.0
	fourBonus          = 1.0
	sixBonus           = 2.0
	centuryBonus       = 8.0
	halfCenturyBonus   = 4.0
	duckPenalty        = -2.0
	wicketPoints       = 25.0
	bowledLBWBonus     = 8.0
	maidenPoints       = 12.0
	catchPoints        = 8.0
	stumpingPoints     = 12.0
	directRunOutPoints = 12.0
	assistRunOutPoints = 6.0

	strikeRateMinBalls = 20
	economyMinOvers    = 2
)

// Compute converts one player's raw match line into fantasy points.
// It is a pure function: no I/O, no clock, same inputs always yield the same
// output, which lets the coordinator recompute safely while a match is live.
func Compute(stat stats.PlayerMatchStat, role player.Role, captaincy Captaincy) float64 {
	total := battingPoints(stat, role) + bowlingPoints(stat) + fieldingPoints(stat)
	return total * multiplier(captaincy)
}

func battingPoints(stat stats.PlayerMatchStat, role player.Role) float64 {
	points := float64(stat.Runs)*runPoints +
		float64(stat.Fours)*fourBonus +
		float64(stat.Sixes)*sixBonus

	switch {
	case stat.Runs >= 100:
		points += centuryBonus
	case stat.Runs >= 50:
		points += halfCenturyBonus
	}

	if stat.Runs == 0 && stat.Dismissed && stat.BallsFaced > 0 && duckApplies(role) {
		points += duckPenalty
	}

	if stat.BallsFaced >= strikeRateMinBalls {
		points += strikeRateModifier(float64(stat.Runs) / float64(stat.BallsFaced) * 100)
	}

	return points
}

// duckApplies exhausts the role enum so an unlisted role is a compile-visible
// decision rather than a silent exemption.
func duckApplies(role player.Role) bool {
	switch role {
	case player.RoleBatsman, player.RoleAllRounder, player.RoleWicketKeeper:
		return true
	case player.RoleBowler:
		return false
	default:
		return false
	}
}

func strikeRateModifier(rate float64) float64 {
	switch {
	case rate > 120:
		return 2
	case rate >= 100:
		return 1
	case rate >= 70 && rate < 80:
		return -1
	case rate >= 60 && rate < 70:
		return -2
	default:
		return 0
	}
}

func bowlingPoints(stat stats.PlayerMatchStat) float64 {
	points := float64(stat.Wickets)*wicketPoints +
		float64(stat.BowledLBW)*bowledLBWBonus +
		float64(stat.Maidens)*maidenPoints

	switch {
	case stat.Wickets >= 5:
		points += 16
	case stat.Wickets >= 4:
		points += 8
	case stat.Wickets >= 3:
		points += 4
	}

	balls := oversToBalls(stat.Overs)
	if balls >= economyMinOvers*6 {
		points += economyModifier(float64(stat.RunsConceded) / (float64(balls) / 6))
	}

	return points
}

func economyModifier(rate float64) float64 {
	switch {
	case rate < 5:
		return 6
	case rate < 6:
		return 4
	case rate < 7:
		return 2
	case rate >= 11:
		return -6
	case rate >= 10:
		return -4
	case rate >= 9:
		return -2
	default:
		return 0
	}
}

func fieldingPoints(stat stats.PlayerMatchStat) float64 {
	return float64(stat.Catches)*catchPoints +
		float64(stat.Stumpings)*stumpingPoints +
		float64(stat.RunOutsDirect)*directRunOutPoints +
		float64(stat.RunOutsAssist)*assistRunOutPoints
}

func multiplier(captaincy Captaincy) float64 {
	switch captaincy {
	case CaptaincyCaptain:
		return 2
	case CaptaincyVice:
		return 1.5
	default:
		return 1
	}
}

// oversToBalls expands cricket over notation (3.4 = 3 overs and 4 balls).
func oversToBalls(overs float64) int {
	whole := int(overs)
	fraction := overs - float64(whole)
	balls := int(math.Round(fraction * 10))
	if balls > 5 {
		balls = 5
	}
	return whole*6 + balls
}
