package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

// SampleEvents returns the startup catalog, dated relative to now so the demo
// always has upcoming events.
func SampleEvents(now time.Time) []*Event {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	at := func(days, hour int) time.Time {
		return day.AddDate(0, 0, days).Add(time.Duration(hour) * time.Hour)
	}
	two, three := 2.0, 3.0
	fifty, hundred := 50, 100

	events := []*Event{
		{
			ID:             "3f0c6a52-8d1e-4b7a-9a51-2a8e7c1d0001",
			Title:          "Go Meetup: Concurrency Patterns",
			Description:    "An evening of talks on channels, worker pools and context cancellation.",
			Category:       CategoryTechnology,
			Type:           EventInPerson,
			Date:           at(3, 18),
			Duration:       &two,
			Venue:          strPtr("Tech Hub"),
			Address:        strPtr("12 Market Street"),
			City:           "San Francisco",
			State:          strPtr("CA"),
			IsFree:         true,
			Tags:           []string{"golang", "backend", "networking"},
			Organizer:      "Bay Area Gophers",
			OrganizerEmail: "hello@bayareagophers.example",
			Attendees:      42,
			Interested:     80,
		},
		{
			ID:             "3f0c6a52-8d1e-4b7a-9a51-2a8e7c1d0002",
			Title:          "Sunrise Yoga in the Park",
			Description:    "Gentle vinyasa flow for all levels. Bring a mat and water.",
			Category:       CategoryHealth,
			Type:           EventInPerson,
			Date:           at(1, 7),
			Venue:          strPtr("Riverside Park"),
			Address:        strPtr("400 Riverside Drive"),
			City:           "New York",
			State:          strPtr("NY"),
			Price:          decimal.RequireFromString("10.00"),
			MaxAttendees:   &fifty,
			Tags:           []string{"yoga", "wellness", "outdoors"},
			Organizer:      "Maya Patel",
			OrganizerEmail: "maya@flowstudio.example",
			Attendees:      18,
			Interested:     25,
		},
		{
			ID:             "3f0c6a52-8d1e-4b7a-9a51-2a8e7c1d0003",
			Title:          "Startup Pitch Night",
			Description:    "Ten founders, five minutes each, one panel of investors.",
			Category:       CategoryBusiness,
			Type:           EventOnline,
			Date:           at(7, 19),
			Duration:       &three,
			City:           "Online",
			Price:          decimal.RequireFromString("15.50"),
			MaxAttendees:   &hundred,
			Tags:           []string{"startup", "investing"},
			Organizer:      "Founders Circle",
			OrganizerEmail: "events@founderscircle.example",
			Attendees:      64,
			Interested:     120,
		},
		{
			ID:             "3f0c6a52-8d1e-4b7a-9a51-2a8e7c1d0004",
			Title:          "Street Food Festival",
			Description:    "Thirty vendors, live music and a dessert tent.",
			Category:       CategoryFood,
			Type:           EventInPerson,
			Date:           at(5, 12),
			Venue:          strPtr("Harbor Plaza"),
			Address:        strPtr("1 Harbor Way"),
			City:           "Seattle",
			State:          strPtr("WA"),
			IsFree:         true,
			Tags:           []string{"food", "music", "family"},
			Organizer:      "Seattle Eats",
			OrganizerEmail: "team@seattleeats.example",
			Attendees:      210,
			Interested:     400,
		},
		{
			ID:             "3f0c6a52-8d1e-4b7a-9a51-2a8e7c1d0005",
			Title:          "Watercolor Basics Workshop",
			Description:    "Learn washes, layering and color mixing in a small group.",
			Category:       CategoryArts,
			Type:           EventInPerson,
			Date:           at(-2, 14),
			Venue:          strPtr("Studio 9"),
			Address:        strPtr("9 Canal Street"),
			City:           "Chicago",
			State:          strPtr("IL"),
			Price:          decimal.RequireFromString("35.00"),
			Tags:           []string{"painting", "workshop"},
			Organizer:      "Lena Ortiz",
			OrganizerEmail: "lena@studio9.example",
			Attendees:      12,
			Interested:     30,
		},
	}

	for _, e := range events {
		e.Timezone = "EST"
		e.CreatedAt = now
		e.UpdatedAt = now
	}
	return events
}

// SampleOrganizers returns the startup leaderboard.
func SampleOrganizers(now time.Time) []*OrganizerStats {
	return []*OrganizerStats{
		{ID: "org-maya", Name: "Maya Patel", Specialty: MedalHealth, EventsHosted: 52, AverageRating: 4.9, AttendeeCount: 1400, Consistency: 0.95, Points: 5200, UpdatedAt: now},
		{ID: "org-gophers", Name: "Bay Area Gophers", Specialty: MedalTech, EventsHosted: 34, AverageRating: 4.6, AttendeeCount: 720, Consistency: 0.8, Points: 2300, UpdatedAt: now},
		{ID: "org-founders", Name: "Founders Circle", Specialty: MedalBusiness, EventsHosted: 12, AverageRating: 4.2, AttendeeCount: 310, Consistency: 0.6, Points: 640, UpdatedAt: now},
		{ID: "org-lena", Name: "Lena Ortiz", Specialty: MedalArts, EventsHosted: 4, AverageRating: 4.7, AttendeeCount: 48, Consistency: 1, Points: 380, UpdatedAt: now},
	}
}
