package services

import "strings"

const (
	HealthStatusGood    = "good"
	HealthStatusWarning = "warning"
)

type HealthCheckItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type HealthStatus struct {
	Status      string `json:"status"`
	Explanation string `json:"explanation"`
}

// HealthRule pairs an item-name substring with a declared health condition.
// Rules are evaluated in order and the first match wins, so new rules can be
// added without touching the evaluation logic.
type HealthRule struct {
	ItemSubstring string // matched case-insensitively against the item name
	Condition     string
	Status        string
	Explanation   string
}

var healthRules = []HealthRule{
	{
		ItemSubstring: "raisins",
		Condition:     "Diabetes Mellitus",
		Status:        HealthStatusWarning,
		Explanation:   "Raisins are high in concentrated natural sugars, which can spike blood glucose levels. With Diabetes Mellitus it is safer to enjoy them sparingly, if at all.",
	},
}

const goodExplanation = "Looks like a great choice for your health profile."

type HealthService struct{}

func NewHealthService() *HealthService {
	return &HealthService{}
}

// Evaluate classifies each cart item against the declared conditions.
// Unmatched items default to "good" with a generic explanation. Pure function
// over its inputs; callers decide when to re-run it.
func (s *HealthService) Evaluate(conditions []string, items []HealthCheckItem) map[int]HealthStatus {
	conditionSet := make(map[string]bool, len(conditions))
	for _, c := range conditions {
		conditionSet[c] = true
	}

	results := make(map[int]HealthStatus, len(items))
	for _, item := range items {
		results[item.ID] = evaluateItem(conditionSet, item.Name)
	}
	return results
}

func evaluateItem(conditionSet map[string]bool, name string) HealthStatus {
	lowerName := strings.ToLower(name)
	for _, rule := range healthRules {
		if strings.Contains(lowerName, rule.ItemSubstring) && conditionSet[rule.Condition] {
			return HealthStatus{Status: rule.Status, Explanation: rule.Explanation}
		}
	}
	return HealthStatus{Status: HealthStatusGood, Explanation: goodExplanation}
}
