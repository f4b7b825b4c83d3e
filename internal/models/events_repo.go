package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const EventsCollection = "events"

// eventDocument is the stored shape of an Event. Price is kept as a decimal
// string so no precision is lost in BSON doubles.
type eventDocument struct {
	ID             string    `bson:"_id"`
	Title          string    `bson:"title"`
	Description    string    `bson:"description"`
	Category       string    `bson:"category"`
	Type           string    `bson:"type"`
	Date           time.Time `bson:"date"`
	Duration       *float64  `bson:"duration"`
	Timezone       string    `bson:"timezone"`
	Venue          *string   `bson:"venue"`
	Address        *string   `bson:"address"`
	City           string    `bson:"city"`
	State          *string   `bson:"state"`
	IsFree         bool      `bson:"is_free"`
	Price          string    `bson:"price"`
	MaxAttendees   *int      `bson:"max_attendees"`
	Tags           []string  `bson:"tags"`
	Image          *string   `bson:"image"`
	Organizer      string    `bson:"organizer"`
	OrganizerEmail string    `bson:"organizer_email"`
	Attendees      int       `bson:"attendees"`
	Interested     int       `bson:"interested"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

func toDocument(e *Event) eventDocument {
	return eventDocument{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Category:       string(e.Category),
		Type:           string(e.Type),
		Date:           e.Date,
		Duration:       e.Duration,
		Timezone:       e.Timezone,
		Venue:          e.Venue,
		Address:        e.Address,
		City:           e.City,
		State:          e.State,
		IsFree:         e.IsFree,
		Price:          e.Price.String(),
		MaxAttendees:   e.MaxAttendees,
		Tags:           e.Tags,
		Image:          e.Image,
		Organizer:      e.Organizer,
		OrganizerEmail: e.OrganizerEmail,
		Attendees:      e.Attendees,
		Interested:     e.Interested,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (d eventDocument) toEvent() (*Event, error) {
	price := decimal.Zero
	if d.Price != "" {
		p, err := decimal.NewFromString(d.Price)
		if err != nil {
			return nil, fmt.Errorf("event %s has invalid price %q: %v", d.ID, d.Price, err)
		}
		price = p
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &Event{
		ID:             d.ID,
		Title:          d.Title,
		Description:    d.Description,
		Category:       EventCategory(d.Category),
		Type:           EventType(d.Type),
		Date:           d.Date.UTC(),
		Duration:       d.Duration,
		Timezone:       d.Timezone,
		Venue:          d.Venue,
		Address:        d.Address,
		City:           d.City,
		State:          d.State,
		IsFree:         d.IsFree,
		Price:          price,
		MaxAttendees:   d.MaxAttendees,
		Tags:           tags,
		Image:          d.Image,
		Organizer:      d.Organizer,
		OrganizerEmail: d.OrganizerEmail,
		Attendees:      d.Attendees,
		Interested:     d.Interested,
		CreatedAt:      d.CreatedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}, nil
}

// MongoEventStore persists events in a single MongoDB collection.
type MongoEventStore struct {
	col *mongo.Collection
}

func NewMongoEventStore(col *mongo.Collection) *MongoEventStore {
	return &MongoEventStore{col: col}
}

func (m *MongoEventStore) ListEvents(ctx context.Context) ([]*Event, error) {
	cursor, err := m.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding events: %v", err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	for cursor.Next(ctx) {
		var doc eventDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding event: %v", err)
		}
		event, err := doc.toEvent()
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return events, nil
}

func (m *MongoEventStore) GetEvent(ctx context.Context, id string) (*Event, error) {
	var doc eventDocument
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding event %s: %v", id, err)
	}
	return doc.toEvent()
}

func (m *MongoEventStore) InsertEvent(ctx context.Context, event *Event) error {
	if _, err := m.col.InsertOne(ctx, toDocument(event)); err != nil {
		return fmt.Errorf("error inserting event: %v", err)
	}
	return nil
}

func (m *MongoEventStore) ReplaceEvent(ctx context.Context, event *Event) error {
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": event.ID}, toDocument(event))
	if err != nil {
		return fmt.Errorf("error replacing event %s: %v", event.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("event %s: %w", event.ID, ErrNotFound)
	}
	return nil
}

func (m *MongoEventStore) DeleteEvent(ctx context.Context, id string) (*Event, error) {
	var doc eventDocument
	err := m.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error deleting event %s: %v", id, err)
	}
	return doc.toEvent()
}

func (m *MongoEventStore) CountEvents(ctx context.Context) (int, error) {
	n, err := m.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting events: %v", err)
	}
	return int(n), nil
}
