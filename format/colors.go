package format

import "time"

// categoryClasses maps each content category to its badge style token.
// Lookups for values outside the closed set fall back to defaultClass.
var categoryClasses = map[string]string{
	"beaches":       "bg-sky-100 text-sky-800",
	"waterfalls":    "bg-cyan-100 text-cyan-800",
	"caves":         "bg-stone-200 text-stone-800",
	"diving":        "bg-blue-100 text-blue-800",
	"attractions":   "bg-violet-100 text-violet-800",
	"food-drink":    "bg-orange-100 text-orange-800",
	"accommodation": "bg-rose-100 text-rose-800",
	"activities":    "bg-teal-100 text-teal-800",
	"travel-tips":   "bg-amber-100 text-amber-800",
	"culture":       "bg-emerald-100 text-emerald-800",
}

var difficultyClasses = map[string]string{
	"easy":        "bg-green-100 text-green-800",
	"moderate":    "bg-amber-100 text-amber-800",
	"challenging": "bg-red-100 text-red-800",
}

const defaultClass = "bg-gray-100 text-gray-800"

// CategoryClass returns the badge style token for a category, falling back to
// a neutral token for unknown values. It never fails on bad input; unknown
// categories should have been rejected by validation already.
func CategoryClass(category string) string {
	if c, ok := categoryClasses[category]; ok {
		return c
	}
	return defaultClass
}

// DifficultyClass returns the badge style token for a difficulty rating, with
// the same neutral fallback as CategoryClass.
func DifficultyClass(difficulty string) string {
	if c, ok := difficultyClasses[difficulty]; ok {
		return c
	}
	return defaultClass
}

// Season returns the climate season for a calendar month. The island's dry
// season runs November through May; everything else is the wet season. The
// rule is fixed, not configurable.
func Season(month time.Month) string {
	if month >= time.November || month <= time.May {
		return "dry"
	}
	return "wet"
}
