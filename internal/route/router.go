// Package route decides the next conversational action for a user turn.
// The decision procedure is an ordered rule list evaluated top to bottom;
// the first matching rule fires. The ordering is load-bearing: a message
// containing both weather and attraction words resolves by rule position,
// never by specificity. Reply wording may be randomized, the chosen rule
// may not.
package route

import (
	"regexp"
	"strings"

	"github.com/tripsmith/tripsmith/internal/extract"
	"github.com/tripsmith/tripsmith/internal/model/trip"
)

// Kind tags the action variants the pipeline can take after a user turn.
type Kind string

const (
	KindAnswer   Kind = "answer"    // respond with prepared text
	KindLookup   Kind = "lookup"    // run a targeted enrichment lookup
	KindGenerate Kind = "generate"  // compose a full itinerary
	KindClarify  Kind = "clarify"   // ask for a missing required field
	KindNone     Kind = "none"      // nothing to do (e.g. empty input)
)

// LookupKind names the enrichment operation a lookup action targets.
type LookupKind string

const (
	LookupWeather         LookupKind = "weather"
	LookupAttractions     LookupKind = "attractions"
	LookupRestaurants     LookupKind = "restaurants"
	LookupAccommodations  LookupKind = "accommodations"
	LookupSpecialInterest LookupKind = "special_interest"
)

// Action is the tagged result of a routing decision.
type Action struct {
	Kind   Kind
	Text   string     // populated for answer/clarify
	Lookup LookupKind // populated for lookup
	Param  string     // lookup parameter (location, interest, ...)
}

// Input bundles everything a routing decision may consult.
type Input struct {
	Message              string
	State                *trip.State
	DurationJustProvided bool
	ItineraryExists      bool
}

var weatherWords = []string{"weather", "whether", "temperature", "climate", "rain", "sunny", "forecast"}

var attractionWords = []string{"attraction", "see", "museum", "landmark", "sight", "monument"}
var restaurantWords = []string{"restaurant", "food", "eat", "dining", "cuisine", "meal"}
var accommodationWords = []string{"hotel", "stay", "accommodation", "lodging", "hostel"}

var bareDurationPattern = regexp.MustCompile(`\b\d+\s*(?:day|days)?\b`)

// Decide applies the rule list to one turn. Given a fixed input triple the
// returned Kind is always the same; only answer wording varies.
func Decide(in Input) Action {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return Action{Kind: KindNone}
	}
	lower := strings.ToLower(message)
	state := in.State

	// Rule 1: weather intent outranks everything, including itinerary
	// generation and other topical lookups.
	if containsAny(lower, weatherWords) {
		location := locationFromMessage(lower)
		if location == "" {
			location = state.Destination
		}
		if location == "" {
			return Action{Kind: KindClarify, Text: "Which city would you like to know the weather for?"}
		}
		return Action{Kind: KindLookup, Lookup: LookupWeather, Param: location}
	}

	// Rule 2: duration just arrived and the destination is known; generate
	// immediately rather than asking anything further.
	if in.DurationJustProvided && state.Destination != "" && state.DurationDays > 0 && !in.ItineraryExists {
		return Action{Kind: KindGenerate}
	}

	// Rule 3: a short bare "5" or "5 days" message is an implicit duration
	// confirmation when the destination is already known.
	if !in.ItineraryExists && state.Destination != "" &&
		len(strings.Fields(message)) <= 3 && bareDurationPattern.MatchString(lower) {
		return Action{Kind: KindGenerate}
	}

	// Rule 4: scripted conversational replies.
	if text := scriptedReply(lower, state, in.ItineraryExists); text != "" {
		return Action{Kind: KindAnswer, Text: text}
	}

	// Rule 5: required fields missing; ask for the first one.
	if state.Destination == "" {
		return Action{Kind: KindClarify, Text: askDestination()}
	}
	if state.DurationDays == 0 {
		return Action{Kind: KindClarify, Text: askDuration(state.Destination)}
	}

	// Rule 6: topical lookups once the destination is known.
	if containsAny(lower, attractionWords) {
		return Action{Kind: KindLookup, Lookup: LookupAttractions, Param: state.Destination}
	}
	if containsAny(lower, restaurantWords) {
		return Action{Kind: KindLookup, Lookup: LookupRestaurants, Param: state.Destination}
	}
	if containsAny(lower, accommodationWords) {
		return Action{Kind: KindLookup, Lookup: LookupAccommodations, Param: state.Destination}
	}
	if interest := matchedSpecialInterest(lower, state); interest != "" {
		return Action{Kind: KindLookup, Lookup: LookupSpecialInterest, Param: interest}
	}

	// Rule 7: everything required is present and no itinerary exists yet.
	if !in.ItineraryExists {
		return Action{Kind: KindGenerate}
	}

	// Rule 8: itinerary exists and the message is generic; keep the
	// conversation moving with a follow-up question.
	return Action{Kind: KindAnswer, Text: followUp(state.Destination)}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if containsWord(text, w) {
			return true
		}
	}
	return false
}

var wordBoundaryCache = map[string]*regexp.Regexp{}

// replyWords are matched with word boundaries inside scripted replies;
// bare substring checks would let "hi" match "this".
var replyWords = []string{"hi", "hello", "hey", "safe", "cash", "budget"}

func init() {
	// Topical words tolerate a plural suffix ("restaurants", "museums");
	// reply words match exactly so "hi" never matches "his".
	for _, set := range [][]string{weatherWords, attractionWords, restaurantWords, accommodationWords} {
		for _, w := range set {
			wordBoundaryCache[w] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `s?\b`)
		}
	}
	for _, w := range replyWords {
		wordBoundaryCache[w] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
}

func containsWord(text, word string) bool {
	if p, ok := wordBoundaryCache[word]; ok {
		return p.MatchString(text)
	}
	return strings.Contains(text, word)
}

// locationFromMessage finds an explicit place in a weather question using
// the preposition-following-word heuristic, checking one- and two-word
// candidates against the curated destination list.
func locationFromMessage(lower string) string {
	words := strings.Fields(strings.Map(stripPunct, lower))
	prepositions := map[string]bool{"in": true, "at": true, "for": true, "of": true}

	for i, word := range words {
		if !prepositions[word] || i+1 >= len(words) {
			continue
		}
		if i+2 < len(words) {
			two := words[i+1] + " " + words[i+2]
			if isSupported(two) {
				return extract.NormalizePlace(two)
			}
		}
		if isSupported(words[i+1]) {
			return extract.NormalizePlace(words[i+1])
		}
	}
	return ""
}

func stripPunct(r rune) rune {
	switch r {
	case '?', '!', '.', ',', ';':
		return ' '
	}
	return r
}

func isSupported(candidate string) bool {
	for _, city := range extract.SupportedDestinations {
		if candidate == city {
			return true
		}
	}
	return false
}

func matchedSpecialInterest(lower string, state *trip.State) string {
	for _, interest := range state.SpecialInterests {
		if strings.Contains(lower, interest) {
			return interest
		}
	}
	return ""
}
