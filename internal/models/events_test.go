package models

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"list", `["go", " web "]`, []string{"go", "web"}},
		{"comma string", `"go, web,,  api "`, []string{"go", "web", "api"}},
		{"empty string", `""`, []string{}},
		{"null", `null`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tags TagList
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &tags))
			assert.Equal(t, tt.want, tags.Normalize())
		})
	}

	var tags TagList
	assert.Error(t, json.Unmarshal([]byte(`42`), &tags))
}

func TestEventClone_DoesNotShareTags(t *testing.T) {
	e := &Event{ID: "a", Tags: []string{"x"}}
	c := e.Clone()
	c.Tags[0] = "y"
	assert.Equal(t, "x", e.Tags[0])

	assert.Equal(t, []string{}, (&Event{}).Clone().Tags)
	assert.Nil(t, (*Event)(nil).Clone())
}

func TestValidateStruct_ReportsJSONFieldNames(t *testing.T) {
	err := ValidateStruct(CreateEventRequest{Category: "astrology", Type: "hybrid", Email: "nope"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	byField := map[string]string{}
	for _, f := range verr.Fields {
		byField[f.Field] = f.Message
	}
	assert.Equal(t, "is required", byField["title"])
	assert.Equal(t, "is required", byField["organizer"])
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "must be one of: in-person online", byField["type"])
	assert.Contains(t, byField["category"], "technology")
}

func TestValidateStruct_AttendanceRequest(t *testing.T) {
	assert.NoError(t, ValidateStruct(AttendanceRequest{Type: AttendanceGoing, Action: AttendanceAdd}))

	err := ValidateStruct(AttendanceRequest{Type: "maybe", Action: AttendanceAdd})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "type", verr.Fields[0].Field)
}

func TestValidationError(t *testing.T) {
	verr := &ValidationError{}
	assert.NoError(t, verr.OrNil())

	verr.Add("title", "is required")
	verr.Add("city", "is required")
	assert.EqualError(t, verr.OrNil(), "validation failed: title: is required; city: is required")

	plain := errors.New("plain")
	assert.Same(t, plain, FromValidator(plain))
	assert.NoError(t, FromValidator(nil))
}

func TestMemoryEventStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 9, 26, 10, 0, 0, 0, time.UTC)
	store := NewMemoryEventStore(SampleEvents(now)...)

	n, err := store.CountEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	first, err := store.GetEvent(ctx, "3f0c6a52-8d1e-4b7a-9a51-2a8e7c1d0001")
	require.NoError(t, err)
	first.Title = "changed"

	again, err := store.GetEvent(ctx, first.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Title, "returned events are copies")

	require.NoError(t, store.ReplaceEvent(ctx, first))
	again, _ = store.GetEvent(ctx, first.ID)
	assert.Equal(t, "changed", again.Title)

	assert.Error(t, store.InsertEvent(ctx, first), "duplicate id")

	removed, err := store.DeleteEvent(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, removed.ID)

	_, err = store.GetEvent(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.DeleteEvent(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.ReplaceEvent(ctx, first), ErrNotFound)

	all, err := store.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestSampleEvents_AreValid(t *testing.T) {
	now := time.Date(2025, 9, 26, 10, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for _, e := range SampleEvents(now) {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
		assert.True(t, IsEventCategory(string(e.Category)), e.ID)
		assert.NotEmpty(t, e.Title)
		assert.NotEmpty(t, e.City)
		assert.NotEmpty(t, e.OrganizerEmail)
		if e.IsFree {
			assert.True(t, e.Price.IsZero(), e.ID)
		}
	}
}
