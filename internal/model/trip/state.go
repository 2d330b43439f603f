package trip

// BudgetLevel classifies spending appetite into three disjoint tiers.
type BudgetLevel string

const (
	BudgetLow      BudgetLevel = "low"
	BudgetModerate BudgetLevel = "moderate"
	BudgetHigh     BudgetLevel = "high"
)

// DietaryPreference captures a single dietary restriction.
type DietaryPreference string

const (
	DietVegetarian  DietaryPreference = "vegetarian"
	DietVegan       DietaryPreference = "vegan"
	DietGlutenFree  DietaryPreference = "gluten-free"
	DietHalal       DietaryPreference = "halal"
	DietKosher      DietaryPreference = "kosher"
	DietPescatarian DietaryPreference = "pescatarian"
)

// AccommodationPreference captures the preferred lodging style.
type AccommodationPreference string

const (
	StayBudget    AccommodationPreference = "budget"
	StayModerate  AccommodationPreference = "moderate"
	StayLuxury    AccommodationPreference = "luxury"
	StayHostel    AccommodationPreference = "hostel"
	StayApartment AccommodationPreference = "apartment"
	StayResort    AccommodationPreference = "resort"
)

// AccessibilityNeed captures mobility requirements.
type AccessibilityNeed string

const NeedWheelchair AccessibilityNeed = "wheelchair"

// State accumulates everything learned about the trip over a conversation.
// Scalar fields are only overwritten by non-empty extraction results, so a
// fact stated once is never cleared by a later turn.
type State struct {
	Destination      string                  `json:"destination,omitempty"`
	DurationDays     int                     `json:"durationDays,omitempty"`
	Budget           BudgetLevel             `json:"budget,omitempty"`
	TravelMonth      string                  `json:"travelMonth,omitempty"`
	Preferences      []string                `json:"preferences,omitempty"`
	SpecialInterests []string                `json:"specialInterests,omitempty"`
	Dietary          DietaryPreference       `json:"dietary,omitempty"`
	Accommodation    AccommodationPreference `json:"accommodation,omitempty"`
	Accessibility    AccessibilityNeed       `json:"accessibility,omitempty"`
}

// Ready reports whether the required fields for itinerary generation are set.
func (s *State) Ready() bool {
	return s.Destination != "" && s.DurationDays > 0
}

// MergeResult describes what a Merge call changed.
type MergeResult struct {
	Changed          bool
	DurationProvided bool
}

// Merge folds freshly extracted values into the state. Empty incoming values
// never clear existing ones.
func (s *State) Merge(in State) MergeResult {
	var res MergeResult

	if in.Destination != "" && in.Destination != s.Destination {
		s.Destination = in.Destination
		res.Changed = true
	}
	if in.DurationDays > 0 && in.DurationDays != s.DurationDays {
		s.DurationDays = in.DurationDays
		res.Changed = true
		res.DurationProvided = true
	}
	if in.Budget != "" && in.Budget != s.Budget {
		s.Budget = in.Budget
		res.Changed = true
	}
	if in.TravelMonth != "" && in.TravelMonth != s.TravelMonth {
		s.TravelMonth = in.TravelMonth
		res.Changed = true
	}
	if in.Dietary != "" && in.Dietary != s.Dietary {
		s.Dietary = in.Dietary
		res.Changed = true
	}
	if in.Accommodation != "" && in.Accommodation != s.Accommodation {
		s.Accommodation = in.Accommodation
		res.Changed = true
	}
	if in.Accessibility != "" && in.Accessibility != s.Accessibility {
		s.Accessibility = in.Accessibility
		res.Changed = true
	}

	for _, p := range in.Preferences {
		if s.addPreference(p) {
			res.Changed = true
		}
	}
	for _, si := range in.SpecialInterests {
		if s.addSpecialInterest(si) {
			res.Changed = true
		}
	}

	return res
}

func (s *State) addPreference(tag string) bool {
	for _, existing := range s.Preferences {
		if existing == tag {
			return false
		}
	}
	s.Preferences = append(s.Preferences, tag)
	return true
}

func (s *State) addSpecialInterest(tag string) bool {
	for _, existing := range s.SpecialInterests {
		if existing == tag {
			return false
		}
	}
	s.SpecialInterests = append(s.SpecialInterests, tag)
	return true
}

// HasPreference reports whether the tag was already collected.
func (s *State) HasPreference(tag string) bool {
	for _, existing := range s.Preferences {
		if existing == tag {
			return true
		}
	}
	return false
}
