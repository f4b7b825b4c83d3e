package models

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json field names so errors line up with request bodies
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("event_category", func(fl validator.FieldLevel) bool {
		return IsEventCategory(fl.Field().String())
	})
	return v
}

// ValidateStruct runs the shared validator and converts failures into *ValidationError.
func ValidateStruct(s any) error {
	return FromValidator(Validate.Struct(s))
}

// EventStore owns the event collection. Implementations return copies; callers may
// mutate what they receive without affecting stored state.
type EventStore interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	InsertEvent(ctx context.Context, event *Event) error
	ReplaceEvent(ctx context.Context, event *Event) error
	DeleteEvent(ctx context.Context, id string) (*Event, error)
	CountEvents(ctx context.Context) (int, error)
}

// OrganizerRepo owns organizer statistics.
type OrganizerRepo interface {
	GetOrganizer(ctx context.Context, id string) (*OrganizerStats, error)
	SaveOrganizer(ctx context.Context, stats *OrganizerStats) error
	ListOrganizers(ctx context.Context) ([]*OrganizerStats, error)
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(colName string) *mongo.Collection {
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName)
}

// Events returns the Mongo-backed event store.
func (mdb *MongodbRepo) Events() *MongoEventStore {
	return NewMongoEventStore(mdb.GetCollection(EventsCollection))
}
