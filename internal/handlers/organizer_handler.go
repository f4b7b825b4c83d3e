package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/services"
)

func ListOrganizers(ranks *services.RankEvaluator) gin.HandlerFunc {
	return func(c *gin.Context) {
		specialty := models.MedalCategory(helpers.StringTrim(c.Query("specialty")))
		leaders, err := ranks.Leaders(c.Request.Context(), specialty)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(leaders, len(leaders)))
	}
}

func GetOrganizer(ranks *services.RankEvaluator) gin.HandlerFunc {
	return func(c *gin.Context) {
		standing, err := ranks.Standing(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(standing, ""))
	}
}

// RecordOutcome folds one completed event into the organizer's stats.
func RecordOutcome(ranks *services.RankEvaluator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var outcome models.EventOutcome
		if err := helpers.DecodeStrict(c, &outcome); err != nil {
			respondError(c, err)
			return
		}

		standing, err := ranks.UpdateStats(c.Request.Context(), helpers.StringTrim(c.Param("id")), outcome)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(standing, "Organizer stats updated"))
	}
}

func ListMedalCategories(ranks *services.RankEvaluator) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats := ranks.MedalCategories()
		c.JSON(http.StatusOK, models.ListResponse(cats, len(cats)))
	}
}

type medalStanding struct {
	Badge   *models.MedalBadge `json:"badge"`
	NextGap *models.RankGap    `json:"nextGap"`
}

// MedalForPoints reports the medal earned in a category with ?points= and the gap to the next one.
func MedalForPoints() gin.HandlerFunc {
	return func(c *gin.Context) {
		category := models.MedalCategory(helpers.StringTrim(c.Param("category")))
		points, err := helpers.QueryInt(c, "points", 0)
		if err != nil {
			respondError(c, err)
			return
		}

		badge, err := services.MedalBadgeFor(category, points)
		if err != nil {
			respondError(c, err)
			return
		}
		gap, err := services.NextRankGap(category, points)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(medalStanding{Badge: badge, NextGap: gap}, ""))
	}
}

// EventPoints previews the points one event would award.
func EventPoints() gin.HandlerFunc {
	return func(c *gin.Context) {
		category := models.MedalCategory(helpers.StringTrim(c.Param("category")))
		attendees, err := helpers.QueryInt(c, "attendees", 0)
		if err != nil {
			respondError(c, err)
			return
		}
		rating, err := helpers.QueryFloat(c, "rating", 0)
		if err != nil {
			respondError(c, err)
			return
		}
		if rating > 5 {
			respondError(c, models.NewValidationError("rating", "must be at most 5"))
			return
		}

		points, err := services.PointsForEvent(category, attendees, rating)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"category": category, "points": points}, ""))
	}
}
