package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/monitoring"
	"github.com/shopspring/decimal"
)

const DefaultTimezone = "EST"

// EventCatalog answers event queries and applies mutations against an EventStore.
// Mutations are serialized by mu so read-modify-write cycles never lose updates.
type EventCatalog struct {
	store     models.EventStore
	logger    *slog.Logger
	now       func() time.Time
	loc       *time.Location
	defaultTZ string

	mu sync.Mutex
}

type CatalogOption func(*EventCatalog)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) CatalogOption {
	return func(ec *EventCatalog) { ec.now = now }
}

// WithLocation sets the location used for calendar-day comparisons.
func WithLocation(loc *time.Location) CatalogOption {
	return func(ec *EventCatalog) { ec.loc = loc }
}

func WithDefaultTimezone(tz string) CatalogOption {
	return func(ec *EventCatalog) { ec.defaultTZ = tz }
}

func WithCatalogLogger(logger *slog.Logger) CatalogOption {
	return func(ec *EventCatalog) { ec.logger = logger }
}

func NewEventCatalog(store models.EventStore, opts ...CatalogOption) *EventCatalog {
	ec := &EventCatalog{
		store:     store,
		logger:    slog.Default(),
		now:       time.Now,
		loc:       time.UTC,
		defaultTZ: DefaultTimezone,
	}
	for _, opt := range opts {
		opt(ec)
	}
	return ec
}

// List returns the events matching every supplied condition, sorted by date
// ascending, truncated to filter.Limit when it is positive.
func (ec *EventCatalog) List(ctx context.Context, filter models.EventFilter) ([]*models.Event, error) {
	events, err := ec.store.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return applyFilter(events, filter), nil
}

func applyFilter(events []*models.Event, f models.EventFilter) []*models.Event {
	search := strings.ToLower(f.Search)
	location := strings.ToLower(f.Location)

	out := make([]*models.Event, 0, len(events))
	for _, e := range events {
		if f.Category != "" && string(e.Category) != f.Category {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		if location != "" && !containsFold(e.City, location) && !containsFold(e.AddressOrEmpty(), location) {
			continue
		}
		if f.Exclude != "" && e.ID == f.Exclude {
			continue
		}
		out = append(out, e)
	}

	sortByDate(out)
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// term is already lower-cased
func matchesSearch(e *models.Event, term string) bool {
	if containsFold(e.Title, term) || containsFold(e.Description, term) {
		return true
	}
	return slices.ContainsFunc(e.Tags, func(tag string) bool { return containsFold(tag, term) })
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

// stable, so events sharing a timestamp keep store order
func sortByDate(events []*models.Event) {
	slices.SortStableFunc(events, func(a, b *models.Event) int {
		return a.Date.Compare(b.Date)
	})
}

func (ec *EventCatalog) Get(ctx context.Context, id string) (*models.Event, error) {
	return ec.store.GetEvent(ctx, id)
}

// ByCategory is List with only the category condition.
func (ec *EventCatalog) ByCategory(ctx context.Context, category string) ([]*models.Event, error) {
	return ec.List(ctx, models.EventFilter{Category: category})
}

func (ec *EventCatalog) Create(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	event, err := ec.buildEvent(req)
	if err != nil {
		monitoring.RecordMutation("create", err)
		return nil, err
	}

	now := ec.now().UTC()
	event.ID = uuid.NewString()
	event.CreatedAt = now
	event.UpdatedAt = now

	ec.mu.Lock()
	defer ec.mu.Unlock()

	if err := ec.store.InsertEvent(ctx, event); err != nil {
		monitoring.RecordMutation("create", err)
		return nil, fmt.Errorf("failed to store event: %w", err)
	}
	monitoring.RecordMutation("create", nil)
	ec.logger.Info("event created", "event_id", event.ID, "category", event.Category, "city", event.City)
	return event, nil
}

// Update merges req onto the stored event, validates the result exactly like
// Create and commits it only when valid.
func (ec *EventCatalog) Update(ctx context.Context, id string, req models.UpdateEventRequest) (*models.Event, error) {
	ec.mu.Lock()
	defer ec.mu.Unlock()

	existing, err := ec.store.GetEvent(ctx, id)
	if err != nil {
		monitoring.RecordMutation("update", err)
		return nil, err
	}

	merged := requestFromEvent(existing)
	mergeUpdate(&merged, req)

	updated, err := ec.buildEvent(merged)
	if err != nil {
		monitoring.RecordMutation("update", err)
		return nil, err
	}
	updated.ID = existing.ID
	updated.Attendees = existing.Attendees
	updated.Interested = existing.Interested
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = ec.now().UTC()

	if err := ec.store.ReplaceEvent(ctx, updated); err != nil {
		monitoring.RecordMutation("update", err)
		return nil, err
	}
	monitoring.RecordMutation("update", nil)
	ec.logger.Info("event updated", "event_id", id)
	return updated, nil
}

func (ec *EventCatalog) Remove(ctx context.Context, id string) (*models.Event, error) {
	ec.mu.Lock()
	defer ec.mu.Unlock()

	removed, err := ec.store.DeleteEvent(ctx, id)
	monitoring.RecordMutation("delete", err)
	if err != nil {
		return nil, err
	}
	ec.logger.Info("event deleted", "event_id", id)
	return removed, nil
}

// AdjustAttendance adds or removes one "going" or "interested" mark. Counts never drop below zero.
func (ec *EventCatalog) AdjustAttendance(ctx context.Context, id string, kind models.AttendanceKind, action models.AttendanceAction) (models.AttendanceCounts, error) {
	if err := models.ValidateStruct(models.AttendanceRequest{Type: kind, Action: action}); err != nil {
		return models.AttendanceCounts{}, err
	}

	ec.mu.Lock()
	defer ec.mu.Unlock()

	event, err := ec.store.GetEvent(ctx, id)
	if err != nil {
		return models.AttendanceCounts{}, err
	}

	counter := &event.Attendees
	if kind == models.AttendanceInterested {
		counter = &event.Interested
	}
	switch action {
	case models.AttendanceAdd:
		*counter++
	case models.AttendanceRemove:
		if *counter > 0 {
			*counter--
		}
	}

	if err := ec.store.ReplaceEvent(ctx, event); err != nil {
		return models.AttendanceCounts{}, err
	}
	monitoring.RecordAttendance(string(kind), string(action))
	return models.AttendanceCounts{Attendees: event.Attendees, Interested: event.Interested}, nil
}

// ByDateBucket filters by calendar day in the catalog location, relative to the
// current clock. An empty bucket is treated as "all".
func (ec *EventCatalog) ByDateBucket(ctx context.Context, bucket models.DateBucket) ([]*models.Event, error) {
	today := startOfDay(ec.now().In(ec.loc))

	var days []time.Time
	switch bucket {
	case "", models.BucketAll:
	case models.BucketToday:
		days = []time.Time{today}
	case models.BucketTomorrow:
		days = []time.Time{today.AddDate(0, 0, 1)}
	case models.BucketWeekend:
		sat, sun := weekendOf(today)
		days = []time.Time{sat, sun}
	default:
		return nil, models.NewValidationError("bucket", "must be one of: today tomorrow weekend all")
	}

	events, err := ec.store.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	out := events
	if days != nil {
		out = make([]*models.Event, 0, len(events))
		for _, e := range events {
			eventDay := startOfDay(e.Date.In(ec.loc))
			if slices.ContainsFunc(days, eventDay.Equal) {
				out = append(out, e)
			}
		}
	}
	sortByDate(out)
	return out, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weekendOf returns the Saturday and Sunday of the weekend containing today,
// or of the next weekend on weekdays.
func weekendOf(today time.Time) (time.Time, time.Time) {
	var sat time.Time
	switch today.Weekday() {
	case time.Saturday:
		sat = today
	case time.Sunday:
		sat = today.AddDate(0, 0, -1)
	default:
		sat = today.AddDate(0, 0, int(time.Saturday-today.Weekday()))
	}
	return sat, sat.AddDate(0, 0, 1)
}

func (ec *EventCatalog) Stats(ctx context.Context) (*models.CatalogStats, error) {
	events, err := ec.store.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	now := ec.now()
	stats := &models.CatalogStats{
		TotalEvents:      len(events),
		EventsByCategory: make(map[models.EventCategory]int),
	}
	for _, e := range events {
		stats.TotalAttendees += e.Attendees
		stats.EventsByCategory[e.Category]++
		if e.Date.After(now) {
			stats.UpcomingEvents++
		}
	}
	monitoring.SetCatalogSize(len(events))
	return stats, nil
}

// Categories returns the taxonomy with the number of events in each category.
func (ec *EventCatalog) Categories(ctx context.Context) ([]models.CategoryInfo, error) {
	stats, err := ec.Stats(ctx)
	if err != nil {
		return nil, err
	}
	cats := models.EventCategories()
	for i := range cats {
		cats[i].Count = stats.EventsByCategory[cats[i].ID]
	}
	return cats, nil
}

// SeedIfEmpty inserts the given events when the store holds none.
func (ec *EventCatalog) SeedIfEmpty(ctx context.Context, events []*models.Event) (int, error) {
	ec.mu.Lock()
	defer ec.mu.Unlock()

	n, err := ec.store.CountEvents(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for _, e := range events {
		if err := ec.store.InsertEvent(ctx, e); err != nil {
			return 0, fmt.Errorf("failed to seed event %s: %w", e.ID, err)
		}
	}
	return len(events), nil
}

// buildEvent trims, validates and normalizes a submission. Identity and
// timestamps are left for the caller.
func (ec *EventCatalog) buildEvent(req models.CreateEventRequest) (*models.Event, error) {
	req.TrimSpace()
	if err := models.ValidateStruct(&req); err != nil {
		return nil, err
	}

	verr := &models.ValidationError{}
	date := resolveDate(req, verr)

	price := decimal.Zero
	if !req.IsFree && req.Price != nil {
		if req.Price.IsNegative() {
			verr.Add("price", "must not be negative")
		}
		price = *req.Price
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = ec.defaultTZ
	}

	return &models.Event{
		Title:          req.Title,
		Description:    req.Description,
		Category:       models.EventCategory(req.Category),
		Type:           models.EventType(req.Type),
		Date:           date,
		Duration:       req.Duration,
		Timezone:       timezone,
		Venue:          nilIfEmpty(req.Venue),
		Address:        nilIfEmpty(req.Address),
		City:           req.City,
		State:          nilIfEmpty(req.State),
		IsFree:         req.IsFree,
		Price:          price,
		MaxAttendees:   req.MaxAttendees,
		Tags:           req.Tags.Normalize(),
		Image:          nilIfEmpty(req.Image),
		Organizer:      req.Organizer,
		OrganizerEmail: req.Email,
	}, nil
}

var datetimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04"}

// resolveDate checks date and time, then prefers an explicit combined datetime
// over joining them as UTC.
func resolveDate(req models.CreateEventRequest, verr *models.ValidationError) time.Time {
	var joined time.Time
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		verr.Add("date", "must be formatted as YYYY-MM-DD")
	} else if joined = joinDateTime(req.Date, req.Time); joined.IsZero() {
		verr.Add("time", "must be formatted as HH:MM")
	}

	if req.Datetime == "" {
		return joined
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, req.Datetime); err == nil {
			return t.UTC()
		}
	}
	verr.Add("datetime", "must be an ISO-8601 date-time")
	return time.Time{}
}

func joinDateTime(date, clock string) time.Time {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse("2006-01-02T"+layout, date+"T"+clock); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func requestFromEvent(e *models.Event) models.CreateEventRequest {
	date := e.Date.UTC()
	price := e.Price
	return models.CreateEventRequest{
		Title:        e.Title,
		Description:  e.Description,
		Category:     string(e.Category),
		Type:         string(e.Type),
		Date:         date.Format("2006-01-02"),
		Time:         date.Format("15:04"),
		Datetime:     date.Format(time.RFC3339Nano),
		Duration:     e.Duration,
		Timezone:     e.Timezone,
		Venue:        derefOr(e.Venue),
		Address:      derefOr(e.Address),
		City:         e.City,
		State:        derefOr(e.State),
		IsFree:       e.IsFree,
		Price:        &price,
		MaxAttendees: e.MaxAttendees,
		Tags:         models.TagList(slices.Clone(e.Tags)),
		Image:        derefOr(e.Image),
		Organizer:    e.Organizer,
		Email:        e.OrganizerEmail,
	}
}

func mergeUpdate(dst *models.CreateEventRequest, u models.UpdateEventRequest) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&dst.Title, u.Title)
	setString(&dst.Description, u.Description)
	setString(&dst.Category, u.Category)
	setString(&dst.Type, u.Type)
	setString(&dst.Timezone, u.Timezone)
	setString(&dst.Venue, u.Venue)
	setString(&dst.Address, u.Address)
	setString(&dst.City, u.City)
	setString(&dst.State, u.State)
	setString(&dst.Image, u.Image)
	setString(&dst.Organizer, u.Organizer)
	setString(&dst.Email, u.Email)

	// a new date or time without a new datetime replaces the stored datetime
	if u.Date != nil || u.Time != nil {
		dst.Datetime = ""
	}
	setString(&dst.Date, u.Date)
	setString(&dst.Time, u.Time)
	setString(&dst.Datetime, u.Datetime)

	if u.Duration != nil {
		dst.Duration = u.Duration
	}
	if u.IsFree != nil {
		dst.IsFree = *u.IsFree
	}
	if u.Price != nil {
		dst.Price = u.Price
	}
	if u.MaxAttendees != nil {
		dst.MaxAttendees = u.MaxAttendees
	}
	if u.Tags != nil {
		dst.Tags = *u.Tags
	}
}
