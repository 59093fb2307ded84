package submission

import (
	"math"
	"slices"
)

// baseCosts is the starting estimate in USD per project type.
var baseCosts = map[string]int{
	"chatbot":         15000,
	"automation":      20000,
	"analytics":       25000,
	"nlp":             30000,
	"computer_vision": 35000,
	"custom":          40000,
}

// featureMultiplier is the fraction of the base added per selected feature.
const featureMultiplier = 0.1

// ProjectTypes lists the accepted project types, sorted.
func ProjectTypes() []string {
	types := make([]string, 0, len(baseCosts))
	for t := range baseCosts {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// EstimateCost returns round(base * (1 + 0.1 * features)) for a known
// project type.
func EstimateCost(projectType string, features int) (int, bool) {
	base, ok := baseCosts[projectType]
	if !ok {
		return 0, false
	}
	features = max(features, 0)
	return int(math.Round(float64(base) * (1 + featureMultiplier*float64(features)))), true
}

func deriveProjectEstimate(s Sanitized) Derived {
	cost, ok := EstimateCost(s.String("projectType"), len(s.List("features")))
	if !ok {
		return Derived{}
	}
	return Derived{EstimatedCost: &cost}
}
