package models

import "time"

type OrganizerStats struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Specialty     MedalCategory `json:"specialty"`
	EventsHosted  int           `json:"eventsHosted"`
	AverageRating float64       `json:"averageRating"` // 0-5
	AttendeeCount int           `json:"attendeeCount"`
	Consistency   float64       `json:"consistency"` // 0-1, share of events completed on time
	Points        int           `json:"points"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// EventOutcome is the result of one completed event, folded into OrganizerStats.
type EventOutcome struct {
	AttendeeCount   int     `json:"attendeeCount" validate:"gte=0"`
	AverageRating   float64 `json:"averageRating" validate:"gte=0,lte=5"`
	CompletedOnTime bool    `json:"completedOnTime"`
}

type Rank string

const (
	RankBronze Rank = "Bronze"
	RankSilver Rank = "Silver"
	RankGold   Rank = "Gold"
)

// Level orders ranks; higher is better.
func (r Rank) Level() int {
	switch r {
	case RankGold:
		return 3
	case RankSilver:
		return 2
	case RankBronze:
		return 1
	default:
		return 0
	}
}

type Medal string

const (
	MedalNovice    Medal = "novice"
	MedalBronze    Medal = "bronze"
	MedalSilver    Medal = "silver"
	MedalGold      Medal = "gold"
	MedalCrownKing Medal = "crownKing"
)

func (m Medal) DisplayName() string {
	switch m {
	case MedalCrownKing:
		return "Crown King"
	case MedalGold:
		return "Gold"
	case MedalSilver:
		return "Silver"
	case MedalBronze:
		return "Bronze"
	default:
		return "Novice"
	}
}

type MedalBadge struct {
	Category MedalCategory `json:"category"`
	Icon     string        `json:"icon"`
	Medal    Medal         `json:"medal"`
	Label    string        `json:"label"`
	Points   int           `json:"points"`
}

type RankGap struct {
	NextRank     Medal `json:"nextRank"`
	Threshold    int   `json:"threshold"`
	PointsNeeded int   `json:"pointsNeeded"`
}

// OrganizerStanding is an organizer's stats together with ranks derived from them.
type OrganizerStanding struct {
	Stats   OrganizerStats `json:"stats"`
	Rank    Rank           `json:"rank"`
	Medal   *MedalBadge    `json:"medal,omitempty"`
	NextGap *RankGap       `json:"nextGap,omitempty"`
}
