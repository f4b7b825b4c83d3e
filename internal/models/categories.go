package models

type EventCategory string

const (
	CategoryTechnology EventCategory = "technology"
	CategoryBusiness   EventCategory = "business"
	CategoryArts       EventCategory = "arts"
	CategorySports     EventCategory = "sports"
	CategoryFood       EventCategory = "food"
	CategoryMusic      EventCategory = "music"
	CategoryEducation  EventCategory = "education"
	CategoryHealth     EventCategory = "health"
	CategoryOther      EventCategory = "other"
)

type CategoryInfo struct {
	ID          EventCategory `json:"id"`
	DisplayName string        `json:"displayName"`
	Count       int           `json:"count"`
}

var eventCategories = []CategoryInfo{
	{ID: CategoryTechnology, DisplayName: "Technology"},
	{ID: CategoryBusiness, DisplayName: "Business"},
	{ID: CategoryArts, DisplayName: "Arts & Culture"},
	{ID: CategorySports, DisplayName: "Sports & Fitness"},
	{ID: CategoryFood, DisplayName: "Food & Drink"},
	{ID: CategoryMusic, DisplayName: "Music"},
	{ID: CategoryEducation, DisplayName: "Education"},
	{ID: CategoryHealth, DisplayName: "Health & Wellness"},
	{ID: CategoryOther, DisplayName: "Other"},
}

// EventCategories returns the taxonomy in display order.
func EventCategories() []CategoryInfo {
	out := make([]CategoryInfo, len(eventCategories))
	copy(out, eventCategories)
	return out
}

func EventCategoryIDs() []string {
	ids := make([]string, 0, len(eventCategories))
	for _, c := range eventCategories {
		ids = append(ids, string(c.ID))
	}
	return ids
}

func IsEventCategory(s string) bool {
	for _, c := range eventCategories {
		if string(c.ID) == s {
			return true
		}
	}
	return false
}

// MedalCategory is an organizer specialty in the medal scheme.
type MedalCategory string

const (
	MedalHealth   MedalCategory = "health"
	MedalTech     MedalCategory = "tech"
	MedalSports   MedalCategory = "sports"
	MedalArts     MedalCategory = "arts"
	MedalGrowth   MedalCategory = "growth"
	MedalBusiness MedalCategory = "business"
)

type MedalCategoryInfo struct {
	ID             MedalCategory `json:"id"`
	Icon           string        `json:"icon"`
	PointsPerEvent int           `json:"pointsPerEvent"`
}

// Thresholds are shared by every medal category; only the icon differs.
const BasePointsPerEvent = 50

var medalCategories = []MedalCategoryInfo{
	{ID: MedalHealth, Icon: "fa-heart", PointsPerEvent: BasePointsPerEvent},
	{ID: MedalTech, Icon: "fa-laptop-code", PointsPerEvent: BasePointsPerEvent},
	{ID: MedalSports, Icon: "fa-running", PointsPerEvent: BasePointsPerEvent},
	{ID: MedalArts, Icon: "fa-palette", PointsPerEvent: BasePointsPerEvent},
	{ID: MedalGrowth, Icon: "fa-seedling", PointsPerEvent: BasePointsPerEvent},
	{ID: MedalBusiness, Icon: "fa-briefcase", PointsPerEvent: BasePointsPerEvent},
}

func MedalCategories() []MedalCategoryInfo {
	out := make([]MedalCategoryInfo, len(medalCategories))
	copy(out, medalCategories)
	return out
}

// LookupMedalCategory reports the metadata for c and whether it exists.
func LookupMedalCategory(c MedalCategory) (MedalCategoryInfo, bool) {
	for _, m := range medalCategories {
		if m.ID == c {
			return m, true
		}
	}
	return MedalCategoryInfo{}, false
}
