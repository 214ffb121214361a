package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateRaisinsWithDiabetes(t *testing.T) {
	svc := NewHealthService()

	results := svc.Evaluate(
		[]string{"Diabetes Mellitus"},
		[]HealthCheckItem{{ID: 1, Name: "Dried Raisins (Kishmish) (250g)"}},
	)

	assert.Equal(t, HealthStatusWarning, results[1].Status)
	assert.Contains(t, results[1].Explanation, "Diabetes Mellitus")
}

func TestEvaluateMatchesItemNameCaseInsensitively(t *testing.T) {
	svc := NewHealthService()

	results := svc.Evaluate(
		[]string{"Diabetes Mellitus"},
		[]HealthCheckItem{{ID: 7, Name: "DRIED RAISINS (250g)"}},
	)

	assert.Equal(t, HealthStatusWarning, results[7].Status)
}

func TestEvaluateRaisinsWithoutDiabetes(t *testing.T) {
	svc := NewHealthService()

	results := svc.Evaluate(
		[]string{"Hypertension (High Blood Pressure)"},
		[]HealthCheckItem{{ID: 1, Name: "Dried Raisins (Kishmish) (250g)"}},
	)

	assert.Equal(t, HealthStatusGood, results[1].Status)
	assert.Equal(t, goodExplanation, results[1].Explanation)
}

func TestEvaluateUnmatchedItemsAreGood(t *testing.T) {
	svc := NewHealthService()

	results := svc.Evaluate(
		[]string{"Diabetes Mellitus"},
		[]HealthCheckItem{
			{ID: 1, Name: "Fresh Spinach (Palak)"},
			{ID: 2, Name: "Alphonso Mangoes"},
		},
	)

	assert.Len(t, results, 2)
	for _, status := range results {
		assert.Equal(t, HealthStatusGood, status.Status)
	}
}

func TestEvaluateEmptyConditions(t *testing.T) {
	svc := NewHealthService()

	results := svc.Evaluate(nil, []HealthCheckItem{{ID: 3, Name: "Dried Raisins (Kishmish) (250g)"}})

	assert.Equal(t, HealthStatusGood, results[3].Status)
}

func TestEvaluateEmptyCart(t *testing.T) {
	svc := NewHealthService()

	results := svc.Evaluate([]string{"Diabetes Mellitus"}, nil)

	assert.Empty(t, results)
}
