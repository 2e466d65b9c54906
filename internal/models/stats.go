// ABOUTME: AnalysisStats model, the derived snapshot over stored analyses.
// ABOUTME: Always recomputed on demand, never persisted or cached.
package models

// CategoryCount is one bucket of the vish-score category distribution.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MonthCount is one bucket of the six-month rolling analysis count.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// AnalysisStats is a derived snapshot over all stored records.
//
// Trend compares the mean Vish Score of the k most recent records against
// the k oldest, k = min(5, count). For small histories the two windows can
// overlap or coincide, which pulls the trend toward zero; that degradation
// is deliberate and kept as-is.
type AnalysisStats struct {
	TotalAnalyses    int             `json:"totalAnalyses"`
	AvgVishScore     int             `json:"avgVishScore"`
	AvgHealthScore   int             `json:"avgHealthScore"`
	AvgTasteScore    int             `json:"avgTasteScore"`
	AvgConsumerScore int             `json:"avgConsumerScore"`
	HealthyChoices   int             `json:"healthyChoices"`
	Trend            int             `json:"trend"`
	Categories       []CategoryCount `json:"categories"`
	Monthly          []MonthCount    `json:"monthly"`
}
