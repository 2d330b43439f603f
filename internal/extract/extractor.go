// Package extract turns free-form chat text into structured trip fields.
// All extraction is deterministic pattern matching over the joined,
// case-folded history of user messages; a field that no pattern matches
// is simply left empty.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tripsmith/tripsmith/internal/model/trip"
)

// SupportedDestinations lists the cities with curated data. The extractor
// falls back to scanning for these names when no destination template fires.
var SupportedDestinations = []string{
	"paris", "london", "new york", "tokyo", "rome",
	"barcelona", "sydney", "dubai", "bangkok", "venice",
}

// Destination templates in precedence order; the first one that matches
// wins, and within it the first capture wins.
var destinationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`travel(?:ing)?\s+to\s+([a-z][a-z .'-]+)`),
	regexp.MustCompile(`visit(?:ing)?\s+([a-z][a-z .'-]+)`),
	regexp.MustCompile(`trip\s+to\s+([a-z][a-z .'-]+)`),
	regexp.MustCompile(`going\s+to\s+([a-z][a-z .'-]+)`),
	regexp.MustCompile(`vacation\s+in\s+([a-z][a-z .'-]+)`),
	regexp.MustCompile(`holiday\s+in\s+([a-z][a-z .'-]+)`),
}

var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*(?:day|days)\b`),
	regexp.MustCompile(`for\s+(\d+)\b`),
	regexp.MustCompile(`^\s*(\d+)\s*$`),
}

var monthPatterns = []*regexp.Regexp{
	regexp.MustCompile(`in\s+(january|february|march|april|may|june|july|august|september|october|november|december)\b`),
	regexp.MustCompile(`during\s+(january|february|march|april|may|june|july|august|september|october|november|december)\b`),
	regexp.MustCompile(`in\s+the\s+(spring|summer|fall|winter|autumn)\b`),
	regexp.MustCompile(`\b(spring|summer|fall|winter|autumn)\s+trip\b`),
}

// Budget vocabularies are checked in this fixed order and the first tier
// with a matching keyword wins. A message mixing tiers ("cheap luxury
// trip") therefore resolves to the lowest tier, deterministically. The
// bare word "budget" is handled separately in extractBudget: "a moderate
// budget" names its own tier, while "on a budget" means low.
var budgetVocabulary = []struct {
	level trip.BudgetLevel
	terms []string
}{
	{trip.BudgetLow, []string{"low", "cheap", "inexpensive", "affordable", "economic"}},
	{trip.BudgetModerate, []string{"moderate", "mid", "medium", "standard", "average", "reasonable", "mid-range", "middle"}},
	{trip.BudgetHigh, []string{"high", "luxury", "expensive", "premium", "deluxe", "upscale", "high-end"}},
}

// Preference buckets are non-exclusive: every tag whose bucket matches is
// added, unlike the single-valued budget resolution above.
var preferenceBuckets = []keywordBucket{
	{"art", []string{"art", "museum", "gallery", "exhibition", "painting", "sculpture"}},
	{"history", []string{"history", "historic", "historical", "ancient", "ruins", "heritage", "monument", "landmark"}},
	{"food", []string{"food", "cuisine", "restaurant", "dining", "culinary", "gastronomy", "eat", "taste"}},
	{"nature", []string{"nature", "park", "mountain", "beach", "garden", "landscape", "hiking", "outdoor", "adventure"}},
	{"culture", []string{"culture", "cultural", "local", "tradition", "authentic"}},
	{"shopping", []string{"shopping", "shop", "market", "store", "mall", "boutique"}},
	{"nightlife", []string{"nightlife", "bar", "club", "pub", "party", "entertainment"}},
	{"relaxation", []string{"relaxation", "relax", "spa", "wellness", "retreat", "peaceful"}},
	{"technology", []string{"technology", "tech", "electronics", "gadget", "robotics", "anime"}},
}

var specialInterestBuckets = []keywordBucket{
	{"broadway", []string{"broadway", "musical", "theater show", "theatre show"}},
	{"wine", []string{"wine", "winery", "vineyard", "wine tasting"}},
	{"photography", []string{"photography", "photo spot", "photogenic", "camera"}},
	{"architecture", []string{"architecture", "architectural", "cathedral", "skyscraper"}},
	{"sports", []string{"sports", "stadium", "football match", "baseball game"}},
}

// Dietary, accommodation and accessibility lookups are ordered and
// single-valued: the first matching category wins.
var dietaryVocabulary = []struct {
	diet  trip.DietaryPreference
	terms []string
}{
	{trip.DietVegetarian, []string{"vegetarian", "veggie", "no meat"}},
	{trip.DietVegan, []string{"vegan", "plant-based", "no animal products"}},
	{trip.DietGlutenFree, []string{"gluten-free", "gluten free", "no gluten"}},
	{trip.DietHalal, []string{"halal"}},
	{trip.DietKosher, []string{"kosher"}},
	{trip.DietPescatarian, []string{"pescatarian", "fish but no meat"}},
}

var accommodationVocabulary = []struct {
	stay  trip.AccommodationPreference
	terms []string
}{
	{trip.StayLuxury, []string{"luxury hotel", "five star hotel", "5 star hotel"}},
	{trip.StayBudget, []string{"budget hotel", "affordable hotel", "cheap hotel"}},
	{trip.StayModerate, []string{"moderate hotel", "mid-range hotel", "standard hotel"}},
	{trip.StayHostel, []string{"hostel", "backpacker"}},
	{trip.StayApartment, []string{"apartment", "flat", "vacation rental", "airbnb"}},
	{trip.StayResort, []string{"resort", "beach resort", "spa resort"}},
}

var accessibilityVocabulary = []struct {
	need  trip.AccessibilityNeed
	terms []string
}{
	{trip.NeedWheelchair, []string{"wheelchair", "wheelchair accessible", "mobility aid"}},
}

type keywordBucket struct {
	tag   string
	terms []string
}

var (
	bucketPatterns = map[string]*regexp.Regexp{}
	wordPatterns   = map[string]*regexp.Regexp{}
)

func init() {
	for _, b := range preferenceBuckets {
		bucketPatterns[b.tag] = compileBucket(b.terms)
	}
	for _, b := range specialInterestBuckets {
		bucketPatterns[b.tag] = compileBucket(b.terms)
	}

	for _, tier := range budgetVocabulary {
		compileWords(tier.terms)
	}
	compileWords([]string{"budget"})
	for _, entry := range dietaryVocabulary {
		compileWords(entry.terms)
	}
	for _, entry := range accommodationVocabulary {
		compileWords(entry.terms)
	}
	for _, entry := range accessibilityVocabulary {
		compileWords(entry.terms)
	}
	compileWords(SupportedDestinations)
}

func compileWords(terms []string) {
	for _, term := range terms {
		if _, ok := wordPatterns[term]; !ok {
			wordPatterns[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
		}
	}
}

// compileBucket builds one pattern per bucket, tolerating simple plural and
// verbal suffixes the way users actually type ("museums", "shopping").
func compileBucket(terms []string) *regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)(?:s|ing|ed)?\b`)
}

// FromMessages re-extracts trip fields from the full sequence of user
// messages. Running it twice over the same sequence yields the same result;
// fields that do not match remain zero and never disturb each other.
func FromMessages(userMessages []string) trip.State {
	joined := strings.ToLower(strings.Join(userMessages, " "))

	var out trip.State
	out.Destination = extractDestination(joined)
	out.DurationDays = extractDuration(joined)
	out.TravelMonth = extractMonth(joined)
	out.Budget = extractBudget(joined)
	out.Preferences = matchBuckets(joined, preferenceBuckets)
	out.SpecialInterests = matchBuckets(joined, specialInterestBuckets)
	out.Dietary = extractDietary(joined)
	out.Accommodation = extractAccommodation(joined)
	out.Accessibility = extractAccessibility(joined)
	return out
}

func extractDestination(text string) string {
	for _, pattern := range destinationPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			if dest := NormalizePlace(m[1]); dest != "" {
				return dest
			}
		}
	}

	// No template fired; fall back to scanning for curated city names.
	for _, city := range SupportedDestinations {
		if containsWord(text, city) {
			return NormalizePlace(city)
		}
	}
	return ""
}

func extractDuration(text string) int {
	for _, pattern := range durationPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			if days, err := strconv.Atoi(m[1]); err == nil && days > 0 {
				return days
			}
		}
	}
	return 0
}

func extractMonth(text string) string {
	for _, pattern := range monthPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return TitleCase(m[1])
		}
	}
	return ""
}

func extractBudget(text string) trip.BudgetLevel {
	for _, tier := range budgetVocabulary {
		for _, term := range tier.terms {
			if containsWord(text, term) {
				return tier.level
			}
		}
	}
	// Only the generic word remains: "on a budget", "budget trip".
	if containsWord(text, "budget") {
		return trip.BudgetLow
	}
	return ""
}

func matchBuckets(text string, buckets []keywordBucket) []string {
	var tags []string
	for _, b := range buckets {
		if bucketPatterns[b.tag].MatchString(text) {
			tags = append(tags, b.tag)
		}
	}
	return tags
}

func extractDietary(text string) trip.DietaryPreference {
	for _, entry := range dietaryVocabulary {
		for _, term := range entry.terms {
			if containsWord(text, term) {
				return entry.diet
			}
		}
	}
	return ""
}

func extractAccommodation(text string) trip.AccommodationPreference {
	for _, entry := range accommodationVocabulary {
		for _, term := range entry.terms {
			if containsWord(text, term) {
				return entry.stay
			}
		}
	}
	return ""
}

func extractAccessibility(text string) trip.AccessibilityNeed {
	for _, entry := range accessibilityVocabulary {
		for _, term := range entry.terms {
			if containsWord(text, term) {
				return entry.need
			}
		}
	}
	return ""
}

func containsWord(text, term string) bool {
	pattern, ok := wordPatterns[term]
	if !ok {
		return strings.Contains(text, term)
	}
	return pattern.MatchString(text)
}
