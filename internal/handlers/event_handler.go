package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/services"
)

// ListEvents serves GET /events. bucket narrows by calendar day and combines
// with the other filters.
func ListEvents(catalog *services.EventCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := helpers.QueryInt(c, "limit", 0)
		if err != nil {
			respondError(c, err)
			return
		}

		filter := models.EventFilter{
			Category: helpers.StringTrim(c.Query("category")),
			Search:   helpers.StringTrim(c.Query("search")),
			Location: helpers.StringTrim(c.Query("location")),
			Exclude:  helpers.StringTrim(c.Query("exclude")),
		}
		bucket := models.DateBucket(helpers.StringTrim(c.Query("bucket")))

		if bucket == "" || bucket == models.BucketAll {
			filter.Limit = limit
			events, err := catalog.List(c.Request.Context(), filter)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, models.ListResponse(events, len(events)))
			return
		}

		inBucket, err := catalog.ByDateBucket(c.Request.Context(), bucket)
		if err != nil {
			respondError(c, err)
			return
		}
		matching, err := catalog.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}

		ids := make(map[string]struct{}, len(inBucket))
		for _, e := range inBucket {
			ids[e.ID] = struct{}{}
		}
		events := make([]*models.Event, 0, len(inBucket))
		for _, e := range matching {
			if _, ok := ids[e.ID]; ok {
				events = append(events, e)
			}
		}
		if limit > 0 && len(events) > limit {
			events = events[:limit]
		}
		c.JSON(http.StatusOK, models.ListResponse(events, len(events)))
	}
}

func GetEvent(catalog *services.EventCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := catalog.Get(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event, ""))
	}
}

func CreateEvent(catalog *services.EventCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body: "+err.Error()))
			return
		}

		event, err := catalog.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(event, "Event created successfully"))
	}
}

// UpdateEvent rejects bodies carrying fields outside the event form.
func UpdateEvent(catalog *services.EventCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateEventRequest
		if err := helpers.DecodeStrict(c, &req); err != nil {
			respondError(c, err)
			return
		}

		event, err := catalog.Update(c.Request.Context(), helpers.StringTrim(c.Param("id")), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event, "Event updated successfully"))
	}
}

func DeleteEvent(catalog *services.EventCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := catalog.Remove(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event, "Event deleted successfully"))
	}
}

func AdjustAttendance(catalog *services.EventCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AttendanceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body: "+err.Error()))
			return
		}

		counts, err := catalog.AdjustAttendance(c.Request.Context(), helpers.StringTrim(c.Param("id")), req.Type, req.Action)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(counts, ""))
	}
}

func ListCategories(catalog *services.EventCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := catalog.Categories(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(cats, len(cats)))
	}
}

func CatalogStats(catalog *services.EventCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := catalog.Stats(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(stats, ""))
	}
}
