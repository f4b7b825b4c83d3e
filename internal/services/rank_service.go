package services

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/monitoring"
)

type rankThreshold struct {
	rank          models.Rank
	eventsHosted  int
	averageRating float64
	attendeeCount int
	consistency   float64
}

// highest tier first; every condition of a tier must hold
var rankTable = []rankThreshold{
	{rank: models.RankGold, eventsHosted: 50, averageRating: 4.8, attendeeCount: 1000, consistency: 0.9},
	{rank: models.RankSilver, eventsHosted: 30, averageRating: 4.5, attendeeCount: 500, consistency: 0.7},
}

// CalculateRank maps organizer stats to a tier. Bronze is the floor.
func CalculateRank(stats models.OrganizerStats) models.Rank {
	for _, t := range rankTable {
		if stats.EventsHosted >= t.eventsHosted &&
			stats.AverageRating >= t.averageRating &&
			stats.AttendeeCount >= t.attendeeCount &&
			stats.Consistency >= t.consistency {
			return t.rank
		}
	}
	return models.RankBronze
}

type medalThreshold struct {
	medal  models.Medal
	points int
}

// ascending; shared by every medal category
var medalTable = []medalThreshold{
	{medal: models.MedalBronze, points: 500},
	{medal: models.MedalSilver, points: 1000},
	{medal: models.MedalGold, points: 2000},
	{medal: models.MedalCrownKing, points: 5000},
}

func lookupMedalCategory(category models.MedalCategory) (models.MedalCategoryInfo, error) {
	info, ok := models.LookupMedalCategory(category)
	if !ok {
		return info, models.NewValidationError("category", "unknown medal category "+string(category))
	}
	return info, nil
}

// CategoryRank returns the medal earned with the given cumulative points.
func CategoryRank(category models.MedalCategory, points int) (models.Medal, error) {
	if _, err := lookupMedalCategory(category); err != nil {
		return "", err
	}
	medal := models.MedalNovice
	for _, t := range medalTable {
		if points >= t.points {
			medal = t.medal
		}
	}
	return medal, nil
}

// PointsForEvent is base points plus two per attendee plus ten per rating point, floored.
func PointsForEvent(category models.MedalCategory, attendees int, rating float64) (int, error) {
	info, err := lookupMedalCategory(category)
	if err != nil {
		return 0, err
	}
	return info.PointsPerEvent + int(math.Floor(float64(attendees)*2)) + int(math.Floor(rating*10)), nil
}

// NextRankGap returns nil when points already reach the top medal.
func NextRankGap(category models.MedalCategory, points int) (*models.RankGap, error) {
	if _, err := lookupMedalCategory(category); err != nil {
		return nil, err
	}
	for _, t := range medalTable {
		if points < t.points {
			return &models.RankGap{NextRank: t.medal, Threshold: t.points, PointsNeeded: t.points - points}, nil
		}
	}
	return nil, nil
}

func MedalBadgeFor(category models.MedalCategory, points int) (*models.MedalBadge, error) {
	info, err := lookupMedalCategory(category)
	if err != nil {
		return nil, err
	}
	medal, _ := CategoryRank(category, points)
	return &models.MedalBadge{
		Category: category,
		Icon:     info.Icon,
		Medal:    medal,
		Label:    medal.DisplayName() + " - " + titleCase(string(category)),
		Points:   points,
	}, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// RankEvaluator folds event outcomes into organizer stats. Ranks are always
// derived from current stats, never stored.
type RankEvaluator struct {
	repo   models.OrganizerRepo
	logger *slog.Logger
	now    func() time.Time

	mu sync.Mutex
}

func NewRankEvaluator(repo models.OrganizerRepo, logger *slog.Logger) *RankEvaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &RankEvaluator{repo: repo, logger: logger, now: time.Now}
}

func (re *RankEvaluator) Standing(ctx context.Context, organizerID string) (*models.OrganizerStanding, error) {
	stats, err := re.repo.GetOrganizer(ctx, organizerID)
	if err != nil {
		return nil, err
	}
	return standingFor(*stats), nil
}

// UpdateStats records one completed event. Unknown organizers start from zero stats.
func (re *RankEvaluator) UpdateStats(ctx context.Context, organizerID string, outcome models.EventOutcome) (*models.OrganizerStanding, error) {
	organizerID = strings.TrimSpace(organizerID)
	if organizerID == "" {
		return nil, models.NewValidationError("id", "is required")
	}
	if err := models.ValidateStruct(outcome); err != nil {
		return nil, err
	}

	re.mu.Lock()
	defer re.mu.Unlock()

	stats, err := re.repo.GetOrganizer(ctx, organizerID)
	if errors.Is(err, models.ErrNotFound) {
		stats = &models.OrganizerStats{ID: organizerID, Name: organizerID}
	} else if err != nil {
		return nil, err
	}

	before := CalculateRank(*stats)
	foldOutcome(stats, outcome)
	stats.UpdatedAt = re.now().UTC()

	if err := re.repo.SaveOrganizer(ctx, stats); err != nil {
		return nil, err
	}

	standing := standingFor(*stats)
	re.logger.Info("organizer stats updated",
		"organizer_id", organizerID,
		"events_hosted", stats.EventsHosted,
		"previous_rank", before,
		"rank", standing.Rank,
	)
	return standing, nil
}

// foldOutcome keeps averageRating and consistency as running means over hosted events.
func foldOutcome(stats *models.OrganizerStats, outcome models.EventOutcome) {
	n := float64(stats.EventsHosted)
	onTime := 0.0
	if outcome.CompletedOnTime {
		onTime = 1
	}

	stats.AverageRating = round4((stats.AverageRating*n + outcome.AverageRating) / (n + 1))
	stats.Consistency = round4((stats.Consistency*n + onTime) / (n + 1))
	stats.EventsHosted++
	stats.AttendeeCount += outcome.AttendeeCount

	if points, err := PointsForEvent(stats.Specialty, outcome.AttendeeCount, outcome.AverageRating); err == nil {
		stats.Points += points
	}
}

func round4(f float64) float64 {
	return math.Round(f*1e4) / 1e4
}

func standingFor(stats models.OrganizerStats) *models.OrganizerStanding {
	standing := &models.OrganizerStanding{Stats: stats, Rank: CalculateRank(stats)}
	if badge, err := MedalBadgeFor(stats.Specialty, stats.Points); err == nil {
		standing.Medal = badge
		standing.NextGap, _ = NextRankGap(stats.Specialty, stats.Points)
	}
	monitoring.RecordRank(standing.Rank)
	return standing
}

// Leaders lists organizers best first: rank, then points, then name.
// An empty specialty returns every organizer.
func (re *RankEvaluator) Leaders(ctx context.Context, specialty models.MedalCategory) ([]*models.OrganizerStanding, error) {
	if specialty != "" {
		if _, err := lookupMedalCategory(specialty); err != nil {
			return nil, err
		}
	}

	all, err := re.repo.ListOrganizers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.OrganizerStanding, 0, len(all))
	for _, s := range all {
		if specialty != "" && s.Specialty != specialty {
			continue
		}
		out = append(out, standingFor(*s))
	}

	slices.SortStableFunc(out, func(a, b *models.OrganizerStanding) int {
		if c := cmp.Compare(b.Rank.Level(), a.Rank.Level()); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Stats.Points, a.Stats.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.Stats.Name, b.Stats.Name)
	})
	return out, nil
}

func (re *RankEvaluator) MedalCategories() []models.MedalCategoryInfo {
	return models.MedalCategories()
}
