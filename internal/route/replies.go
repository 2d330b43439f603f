package route

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/tripsmith/tripsmith/internal/extract"
	"github.com/tripsmith/tripsmith/internal/model/trip"
)

// Reply wording is picked at random for variety; the rule that selects a
// scripted reply is deterministic.

var greetings = []string{
	"Hi there! I'd be happy to help with your travel plans.",
	"Hello! I'm excited to help you plan your trip.",
	"Welcome! I'm your travel assistant.",
	"Greetings! Ready to plan an amazing journey?",
}

var destinationComments = map[string][]string{
	"london": {
		"London is an amazing choice! It's a city filled with history, culture, and incredible attractions.",
		"Great choice! London offers a perfect mix of historical landmarks and modern attractions.",
	},
	"paris": {
		"Paris is a beautiful destination! The City of Light has so much to offer.",
		"Ah, Paris! A city of romance, art, and extraordinary cuisine.",
	},
	"new york": {
		"New York City is incredible! The energy of the Big Apple is unlike anywhere else.",
		"NYC is a fantastic choice! From Central Park to Broadway, there's something for everyone.",
	},
	"tokyo": {
		"Tokyo is a wonderful pick! Ancient temples and neon districts side by side.",
		"Great choice! Tokyo blends tradition and technology like nowhere else.",
	},
}

var transportTips = map[string]string{
	"london":   "London has an excellent public transportation system. The Tube is the fastest way to get around; use an Oyster card or contactless payment for the best fares.",
	"paris":    "Paris has a comprehensive Metro that's easy to navigate. Consider a carnet of tickets or a Navigo pass for multiple days.",
	"new york": "New York's subway runs 24/7 and is the fastest way to get around. Get a MetroCard or use contactless payment at the turnstiles.",
}

var safetyTips = map[string]string{
	"london":   "London is generally safe for tourists, but watch for pickpockets in crowded areas and on public transport.",
	"paris":    "Paris is generally safe; be cautious about pickpockets in tourist areas and on the Metro, and watch for common street scams.",
	"new york": "New York is much safer than its reputation suggests. Stay alert at night and keep valuables secure in crowded places.",
}

var currencyTips = map[string]string{
	"london":   "The UK uses the British Pound (£). Cards are widely accepted, but carry a little cash for small purchases.",
	"paris":    "France uses the Euro (€). Cards work almost everywhere, though some markets prefer cash.",
	"new york": "The US uses the US Dollar ($). Cards are accepted almost everywhere, and tipping 15-20% is customary in restaurants.",
}

var languageTips = map[string]string{
	"paris":    "French is the local language. 'Bonjour', 'merci', and 'parlez-vous anglais ?' go a long way - locals appreciate the effort.",
	"tokyo":    "Japanese is the local language. 'Sumimasen' (excuse me) and 'arigatou' (thank you) are useful; transit signage is bilingual.",
	"new york": "English is spoken everywhere in New York, with dozens of other languages across its neighborhoods.",
}

// scriptedReply returns prepared conversational text when one of the
// scripted situations applies, or "" to let later rules decide.
func scriptedReply(lower string, state *trip.State, itineraryExists bool) string {
	destKey := strings.ToLower(state.Destination)

	// Greeting before any destination is known.
	if state.Destination == "" && (containsWord(lower, "hi") || containsWord(lower, "hello") || containsWord(lower, "hey") || len(lower) < 20) {
		return pick(greetings) + " Where would you like to travel to? I can provide detailed information for popular destinations like " +
			titledCities(5) + " and more."
	}

	// Destination just stated, duration still unknown.
	if state.Destination != "" && state.DurationDays == 0 && len(lower) < 25 &&
		(strings.Contains(lower, "visit") || strings.Contains(lower, destKey)) {
		if comments, ok := destinationComments[destKey]; ok {
			return pick(comments) + fmt.Sprintf(" How long are you planning to stay in %s?", state.Destination)
		}
		return fmt.Sprintf("%s is a great choice! How many days are you planning to stay there?", state.Destination)
	}

	// Destination and duration known, but no interests gathered yet.
	if state.Destination != "" && state.DurationDays > 0 && !itineraryExists && len(state.Preferences) == 0 &&
		(strings.Contains(lower, "recommend") || strings.Contains(lower, "suggest") || strings.Contains(lower, "what should")) {
		return fmt.Sprintf("Before I put together your %d days in %s: any particular interests, like art, history, food, or nature?",
			state.DurationDays, state.Destination)
	}

	// Post-itinerary follow-up topics.
	if itineraryExists && state.Destination != "" {
		switch {
		case strings.Contains(lower, "transport") || strings.Contains(lower, "getting around") || strings.Contains(lower, "metro"):
			if tip, ok := transportTips[destKey]; ok {
				return tip
			}
			return fmt.Sprintf("Getting around %s is straightforward; public transportation is usually the most efficient option.", state.Destination)
		case strings.Contains(lower, "safety") || containsWord(lower, "safe"):
			if tip, ok := safetyTips[destKey]; ok {
				return tip
			}
			return fmt.Sprintf("%s is generally safe for tourists; exercise the usual big-city precautions.", state.Destination)
		case strings.Contains(lower, "currency") || strings.Contains(lower, "money") || containsWord(lower, "cash"):
			if tip, ok := currencyTips[destKey]; ok {
				return tip
			}
			return fmt.Sprintf("Check the local currency for %s before your trip; major cards are widely accepted in most destinations.", state.Destination)
		case strings.Contains(lower, "language") || strings.Contains(lower, "phrase") || strings.Contains(lower, "speak"):
			if tip, ok := languageTips[destKey]; ok {
				return tip
			}
			return fmt.Sprintf("Learning a few local phrases for %s is always appreciated; a translation app covers the rest.", state.Destination)
		case containsWord(lower, "budget") || strings.Contains(lower, "how much") || strings.Contains(lower, "cost"):
			return fmt.Sprintf("Your itinerary for %s already reflects your budget level; ask me about attractions or restaurants if you want cheaper or fancier alternatives.", state.Destination)
		}
	}

	return ""
}

func askDestination() string {
	openers := []string{
		"Where would you like to travel to? I can help with detailed information for destinations like: ",
		"Which city are you interested in visiting? I have great information about: ",
		"I'd be happy to help plan your trip! Where are you heading? I know a lot about: ",
	}
	return pick(openers) + titledCities(len(extract.SupportedDestinations))
}

func askDuration(destination string) string {
	questions := []string{
		fmt.Sprintf("How long are you planning to stay in %s?", destination),
		fmt.Sprintf("How many days will you be spending in %s?", destination),
		fmt.Sprintf("What's the duration of your trip to %s?", destination),
	}
	return pick(questions)
}

func followUp(destination string) string {
	questions := []string{
		fmt.Sprintf("Is there anything specific about your %s trip you'd like to know more about?", destination),
		fmt.Sprintf("Would you like recommendations for shopping or souvenirs in %s?", destination),
		fmt.Sprintf("Can I help you with information about the local language or useful phrases for %s?", destination),
		fmt.Sprintf("Would you like suggestions for local transportation in %s?", destination),
	}
	return pick(questions)
}

func pick(options []string) string {
	return options[rand.IntN(len(options))]
}

func titledCities(n int) string {
	if n > len(extract.SupportedDestinations) {
		n = len(extract.SupportedDestinations)
	}
	titled := make([]string, 0, n)
	for _, city := range extract.SupportedDestinations[:n] {
		titled = append(titled, extract.TitleCase(city))
	}
	return strings.Join(titled, ", ")
}
