package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventInPerson EventType = "in-person"
	EventOnline   EventType = "online"
)

type Event struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Category       EventCategory   `json:"category"`
	Type           EventType       `json:"type"`
	Date           time.Time       `json:"date"`               // e.g., "2025-09-26T18:00:00Z"
	Duration       *float64        `json:"duration"`           // hours
	Timezone       string          `json:"timezone"`           // display label, e.g. "EST"
	Venue          *string         `json:"venue"`              // nil for online events
	Address        *string         `json:"address"`
	City           string          `json:"city"`
	State          *string         `json:"state"`
	IsFree         bool            `json:"isFree"`
	Price          decimal.Decimal `json:"price"`
	MaxAttendees   *int            `json:"maxAttendees"`
	Tags           []string        `json:"tags"`
	Image          *string         `json:"image"`
	Organizer      string          `json:"organizer"`
	OrganizerEmail string          `json:"organizerEmail"`
	Attendees      int             `json:"attendees"`
	Interested     int             `json:"interested"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Clone returns a copy that shares no mutable state with e.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	out := *e
	out.Tags = slices.Clone(e.Tags)
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return &out
}

// AddressOrEmpty is used by location matching; online events have no address.
func (e *Event) AddressOrEmpty() string {
	if e.Address == nil {
		return ""
	}
	return *e.Address
}

// TagList accepts either a JSON array of strings or a comma separated string.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("tags must be a list or a comma separated string")
	}
	*t = strings.Split(raw, ",")
	return nil
}

// Normalize trims every tag and drops empty ones.
func (t TagList) Normalize() []string {
	out := make([]string, 0, len(t))
	for _, tag := range t {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// CreateEventRequest is the submission form for a new event.
type CreateEventRequest struct {
	Title        string           `json:"title" validate:"required"`
	Description  string           `json:"description" validate:"required"`
	Category     string           `json:"category" validate:"required,event_category"`
	Type         string           `json:"type" validate:"required,oneof=in-person online"`
	Date         string           `json:"date" validate:"required"` // YYYY-MM-DD
	Time         string           `json:"time" validate:"required"` // HH:MM (24h)
	Datetime     string           `json:"datetime,omitempty"`
	Duration     *float64         `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Timezone     string           `json:"timezone,omitempty"`
	Venue        string           `json:"venue,omitempty"`
	Address      string           `json:"address,omitempty"`
	City         string           `json:"city" validate:"required"`
	State        string           `json:"state,omitempty"`
	IsFree       bool             `json:"isFree"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	MaxAttendees *int             `json:"maxAttendees,omitempty" validate:"omitempty,gte=0"`
	Tags         TagList          `json:"tags,omitempty"`
	Image        string           `json:"image,omitempty"`
	Organizer    string           `json:"organizer" validate:"required"`
	Email        string           `json:"email" validate:"required,email"`
}

// TrimSpace trims every free-text field in place.
func (r *CreateEventRequest) TrimSpace() {
	for _, f := range []*string{
		&r.Title, &r.Description, &r.Category, &r.Type, &r.Date, &r.Time, &r.Datetime,
		&r.Timezone, &r.Venue, &r.Address, &r.City, &r.State, &r.Image, &r.Organizer, &r.Email,
	} {
		*f = strings.TrimSpace(*f)
	}
}

// UpdateEventRequest carries the same field set as CreateEventRequest; nil means "keep".
type UpdateEventRequest struct {
	Title        *string          `json:"title,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Type         *string          `json:"type,omitempty"`
	Date         *string          `json:"date,omitempty"`
	Time         *string          `json:"time,omitempty"`
	Datetime     *string          `json:"datetime,omitempty"`
	Duration     *float64         `json:"duration,omitempty"`
	Timezone     *string          `json:"timezone,omitempty"`
	Venue        *string          `json:"venue,omitempty"`
	Address      *string          `json:"address,omitempty"`
	City         *string          `json:"city,omitempty"`
	State        *string          `json:"state,omitempty"`
	IsFree       *bool            `json:"isFree,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	MaxAttendees *int             `json:"maxAttendees,omitempty"`
	Tags         *TagList         `json:"tags,omitempty"`
	Image        *string          `json:"image,omitempty"`
	Organizer    *string          `json:"organizer,omitempty"`
	Email        *string          `json:"email,omitempty"`
}

type AttendanceKind string

const (
	AttendanceGoing      AttendanceKind = "going"
	AttendanceInterested AttendanceKind = "interested"
)

type AttendanceAction string

const (
	AttendanceAdd    AttendanceAction = "add"
	AttendanceRemove AttendanceAction = "remove"
)

type AttendanceRequest struct {
	Type   AttendanceKind   `json:"type" validate:"required,oneof=going interested"`
	Action AttendanceAction `json:"action" validate:"required,oneof=add remove"`
}

type AttendanceCounts struct {
	Attendees  int `json:"attendees"`
	Interested int `json:"interested"`
}

// EventFilter holds the list query options; zero values mean "no condition".
type EventFilter struct {
	Category string
	Search   string
	Location string
	Exclude  string
	Limit    int
}

type DateBucket string

const (
	BucketAll      DateBucket = "all"
	BucketToday    DateBucket = "today"
	BucketTomorrow DateBucket = "tomorrow"
	BucketWeekend  DateBucket = "weekend"
)

type CatalogStats struct {
	TotalEvents      int                   `json:"totalEvents"`
	UpcomingEvents   int                   `json:"upcomingEvents"`
	TotalAttendees   int                   `json:"totalAttendees"`
	EventsByCategory map[EventCategory]int `json:"eventsByCategory"`
}
