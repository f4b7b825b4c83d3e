package services

import (
	"context"
	"testing"

	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRank(t *testing.T) {
	tests := []struct {
		name  string
		stats models.OrganizerStats
		want  models.Rank
	}{
		{
			name:  "gold when every gold threshold holds",
			stats: models.OrganizerStats{EventsHosted: 55, AverageRating: 4.9, AttendeeCount: 1200, Consistency: 0.95},
			want:  models.RankGold,
		},
		{
			name:  "gold boundaries are inclusive",
			stats: models.OrganizerStats{EventsHosted: 50, AverageRating: 4.8, AttendeeCount: 1000, Consistency: 0.9},
			want:  models.RankGold,
		},
		{
			name:  "silver when events fall short of gold",
			stats: models.OrganizerStats{EventsHosted: 35, AverageRating: 4.6, AttendeeCount: 600, Consistency: 0.75},
			want:  models.RankSilver,
		},
		{
			name:  "one missed gold condition drops to silver",
			stats: models.OrganizerStats{EventsHosted: 80, AverageRating: 4.9, AttendeeCount: 5000, Consistency: 0.89},
			want:  models.RankSilver,
		},
		{
			name:  "bronze below silver",
			stats: models.OrganizerStats{EventsHosted: 10, AverageRating: 4.0, AttendeeCount: 100, Consistency: 0.5},
			want:  models.RankBronze,
		},
		{
			name:  "bronze for a new organizer",
			stats: models.OrganizerStats{},
			want:  models.RankBronze,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateRank(tt.stats))
		})
	}
}

func TestCategoryRank(t *testing.T) {
	tests := []struct {
		points int
		want   models.Medal
	}{
		{0, models.MedalNovice},
		{499, models.MedalNovice},
		{500, models.MedalBronze},
		{999, models.MedalBronze},
		{1000, models.MedalSilver},
		{2000, models.MedalGold},
		{4999, models.MedalGold},
		{5000, models.MedalCrownKing},
		{90000, models.MedalCrownKing},
	}

	for _, tt := range tests {
		got, err := CategoryRank(models.MedalHealth, tt.points)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "points %d", tt.points)
	}

	_, err := CategoryRank("cooking", 100)
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestPointsForEvent(t *testing.T) {
	points, err := PointsForEvent(models.MedalTech, 20, 4.5)
	require.NoError(t, err)
	assert.Equal(t, 135, points)

	points, err = PointsForEvent(models.MedalArts, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, models.BasePointsPerEvent, points)

	// 4.79 * 10 floors to 47
	points, err = PointsForEvent(models.MedalSports, 3, 4.79)
	require.NoError(t, err)
	assert.Equal(t, 50+6+47, points)

	_, err = PointsForEvent("unknown", 1, 1)
	assert.Error(t, err)
}

func TestNextRankGap(t *testing.T) {
	gap, err := NextRankGap(models.MedalGrowth, 750)
	require.NoError(t, err)
	require.NotNil(t, gap)
	assert.Equal(t, models.RankGap{NextRank: models.MedalSilver, Threshold: 1000, PointsNeeded: 250}, *gap)

	gap, err = NextRankGap(models.MedalGrowth, 0)
	require.NoError(t, err)
	assert.Equal(t, models.MedalBronze, gap.NextRank)
	assert.Equal(t, 500, gap.PointsNeeded)

	gap, err = NextRankGap(models.MedalGrowth, 5000)
	require.NoError(t, err)
	assert.Nil(t, gap)
}

func TestMedalBadgeFor(t *testing.T) {
	badge, err := MedalBadgeFor(models.MedalHealth, 5000)
	require.NoError(t, err)
	assert.Equal(t, &models.MedalBadge{
		Category: models.MedalHealth,
		Icon:     "fa-heart",
		Medal:    models.MedalCrownKing,
		Label:    "Crown King - Health",
		Points:   5000,
	}, badge)
}

func TestRankEvaluator_UpdateStatsFoldsOutcome(t *testing.T) {
	repo := models.NewMemoryOrganizerRepo(&models.OrganizerStats{
		ID: "org", Name: "Org", Specialty: models.MedalTech,
		EventsHosted: 1, AverageRating: 4.0, AttendeeCount: 10, Consistency: 1, Points: 100,
	})
	re := NewRankEvaluator(repo, nil)

	standing, err := re.UpdateStats(context.Background(), "org", models.EventOutcome{
		AttendeeCount: 20, AverageRating: 4.5, CompletedOnTime: false,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, standing.Stats.EventsHosted)
	assert.Equal(t, 30, standing.Stats.AttendeeCount)
	assert.Equal(t, 4.25, standing.Stats.AverageRating)
	assert.Equal(t, 0.5, standing.Stats.Consistency)
	assert.Equal(t, 235, standing.Stats.Points)
	assert.Equal(t, models.RankBronze, standing.Rank)
	require.NotNil(t, standing.Medal)
	assert.Equal(t, models.MedalNovice, standing.Medal.Medal)

	stored, err := re.Standing(context.Background(), "org")
	require.NoError(t, err)
	assert.Equal(t, standing.Stats, stored.Stats)
}

func TestRankEvaluator_RankNeverDropsWithStrongOutcomes(t *testing.T) {
	seed := models.SampleOrganizers(fixedNow)
	re := NewRankEvaluator(models.NewMemoryOrganizerRepo(seed...), nil)
	ctx := context.Background()

	prev, err := re.Standing(ctx, "org-gophers")
	require.NoError(t, err)
	for i := 0; i < 40; i++ {
		next, err := re.UpdateStats(ctx, "org-gophers", models.EventOutcome{
			AttendeeCount: 60, AverageRating: 5, CompletedOnTime: true,
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, next.Rank.Level(), prev.Rank.Level())
		assert.Greater(t, next.Stats.Points, prev.Stats.Points)
		prev = next
	}
	assert.Equal(t, models.RankGold, prev.Rank)
}

func TestRankEvaluator_UnknownOrganizerStartsFromZero(t *testing.T) {
	re := NewRankEvaluator(models.NewMemoryOrganizerRepo(), nil)

	standing, err := re.UpdateStats(context.Background(), "newcomer", models.EventOutcome{AttendeeCount: 5, AverageRating: 3})
	require.NoError(t, err)
	assert.Equal(t, "newcomer", standing.Stats.Name)
	assert.Equal(t, 1, standing.Stats.EventsHosted)
	assert.Equal(t, 3.0, standing.Stats.AverageRating)
	assert.Zero(t, standing.Stats.Points, "no specialty, no medal points")
	assert.Nil(t, standing.Medal)
	assert.Equal(t, models.RankBronze, standing.Rank)
}

func TestRankEvaluator_RejectsInvalidInput(t *testing.T) {
	re := NewRankEvaluator(models.NewMemoryOrganizerRepo(), nil)
	ctx := context.Background()
	var verr *models.ValidationError

	_, err := re.UpdateStats(ctx, "  ", models.EventOutcome{})
	assert.ErrorAs(t, err, &verr)

	_, err = re.UpdateStats(ctx, "org", models.EventOutcome{AverageRating: 5.5})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "averageRating", verr.Fields[0].Field)

	_, err = re.UpdateStats(ctx, "org", models.EventOutcome{AttendeeCount: -1})
	assert.ErrorAs(t, err, &verr)

	_, err = re.Standing(ctx, "org")
	assert.ErrorIs(t, err, models.ErrNotFound, "rejected updates register nothing")
}

func TestRankEvaluator_Leaders(t *testing.T) {
	re := NewRankEvaluator(models.NewMemoryOrganizerRepo(models.SampleOrganizers(fixedNow)...), nil)
	ctx := context.Background()

	leaders, err := re.Leaders(ctx, "")
	require.NoError(t, err)

	got := make([]string, 0, len(leaders))
	for _, l := range leaders {
		got = append(got, l.Stats.ID)
	}
	assert.Equal(t, []string{"org-maya", "org-gophers", "org-founders", "org-lena"}, got)
	assert.Equal(t, models.RankGold, leaders[0].Rank)
	assert.Equal(t, models.MedalCrownKing, leaders[0].Medal.Medal)

	tech, err := re.Leaders(ctx, models.MedalTech)
	require.NoError(t, err)
	require.Len(t, tech, 1)
	assert.Equal(t, "org-gophers", tech[0].Stats.ID)

	_, err = re.Leaders(ctx, "cooking")
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
}
