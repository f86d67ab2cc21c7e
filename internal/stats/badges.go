package stats

type BadgeID string

const (
	BadgeSurvivor  BadgeID = "survivor"
	BadgeBombproof BadgeID = "bombproof"
	BadgeVeteran   BadgeID = "veteran"
	BadgeSlowFuse  BadgeID = "slow_fuse"
	BadgeReckless  BadgeID = "reckless"
)

type Badge struct {
	ID          BadgeID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

var AllBadges = map[BadgeID]Badge{
	BadgeSurvivor:  {ID: BadgeSurvivor, Name: "Survivor", Description: "Won a game", Icon: "🏆"},
	BadgeBombproof: {ID: BadgeBombproof, Name: "Bombproof", Description: "Won 5+ games", Icon: "💣"},
	BadgeVeteran:   {ID: BadgeVeteran, Name: "Veteran", Description: "Played 10+ games", Icon: "🎖️"},
	BadgeSlowFuse:  {ID: BadgeSlowFuse, Name: "Slow Fuse", Description: "Timed out 5+ times", Icon: "🐢"},
	BadgeReckless:  {ID: BadgeReckless, Name: "Reckless", Description: "Answered wrong 10+ times", Icon: "🎲"},
}

// EvaluateLifetimeBadges checks which badges a player has earned across
// their career.
func EvaluateLifetimeBadges(stats PlayerLifetimeStats) []Badge {
	var earned []Badge

	if stats.Wins >= 1 {
		earned = append(earned, AllBadges[BadgeSurvivor])
	}
	if stats.Wins >= 5 {
		earned = append(earned, AllBadges[BadgeBombproof])
	}
	if stats.GamesPlayed >= 10 {
		earned = append(earned, AllBadges[BadgeVeteran])
	}
	if stats.Timeouts >= 5 {
		earned = append(earned, AllBadges[BadgeSlowFuse])
	}
	if stats.WrongAnswers >= 10 {
		earned = append(earned, AllBadges[BadgeReckless])
	}

	return earned
}
