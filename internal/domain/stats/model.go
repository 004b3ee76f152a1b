package stats

import "time"

// PlayerMatchStat is one player's raw performance line in one match.
// The live feed rewrites it repeatedly while the match is in progress; rows
// become immutable once the match is archived. Re-sent identical snapshots
// are expected and must be tolerated (last write wins).
type PlayerMatchStat struct {
	MatchID  string
	PlayerID string

	// Batting.
	Runs       int
	BallsFaced int
	Fours      int
	Sixes      int
	Dismissed  bool

	// Bowling. Overs uses cricket notation where the fraction counts balls
	// (3.4 = 3 overs 4 balls); economy maths converts it first.
	Wickets      int
	BowledLBW    int
	Overs        float64
	Maidens      int
	RunsConceded int

	// Fielding.
	Catches       int
	Stumpings     int
	RunOutsDirect int
	RunOutsAssist int

	UpdatedAt time.Time
}
