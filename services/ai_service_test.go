package services

import (
	"context"
	"errors"
	"testing"

	"farmconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGroq struct {
	jsonContent string
	textContent string
	err         error
}

func (f *fakeGroq) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	return f.jsonContent, f.err
}

func (f *fakeGroq) CompleteText(ctx context.Context, system, user string) (string, error) {
	return f.textContent, f.err
}

func TestGetDietaryRecommendations(t *testing.T) {
	svc := NewAIServiceWith(&fakeGroq{
		jsonContent: `{"recommendations": ["Spinach", "Guava"], "explanation": "Both are low on the glycemic index."}`,
	})

	output, err := svc.GetDietaryRecommendations(context.Background(), models.DietaryRecommendationInput{
		HealthConditions: []string{"Diabetes Mellitus"},
		DietaryGoals:     "manage blood sugar",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Spinach", "Guava"}, output.Recommendations)
	assert.NotEmpty(t, output.Explanation)
}

func TestGetDietaryRecommendationsSchemaMismatch(t *testing.T) {
	svc := NewAIServiceWith(&fakeGroq{jsonContent: `{"unexpected": true}`})

	_, err := svc.GetDietaryRecommendations(context.Background(), models.DietaryRecommendationInput{
		DietaryGoals: "weight loss",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not match schema")
}

func TestGetDietaryRecommendationsClientError(t *testing.T) {
	svc := NewAIServiceWith(&fakeGroq{err: errors.New("model request failed")})

	_, err := svc.GetDietaryRecommendations(context.Background(), models.DietaryRecommendationInput{
		DietaryGoals: "weight loss",
	})

	assert.Error(t, err)
}

func TestGenerateProductDescription(t *testing.T) {
	svc := NewAIServiceWith(&fakeGroq{
		jsonContent: `{"description": "Sweet, sun-ripened mangoes straight from the orchard."}`,
	})

	output, err := svc.GenerateProductDescription(context.Background(), models.ProductDescriptionInput{
		ProductName: "Alphonso Mangoes",
		ProductType: "fruit",
		KeyTraits:   "sweet, organic",
	})

	require.NoError(t, err)
	assert.Contains(t, output.Description, "mangoes")
}

func TestGenerateProductDescriptionMissingField(t *testing.T) {
	svc := NewAIServiceWith(&fakeGroq{jsonContent: `{}`})

	_, err := svc.GenerateProductDescription(context.Background(), models.ProductDescriptionInput{
		ProductName: "Alphonso Mangoes",
		ProductType: "fruit",
		KeyTraits:   "sweet",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not match schema")
}

func TestSummarizeCropDemand(t *testing.T) {
	svc := NewAIServiceWith(&fakeGroq{
		jsonContent: `{"summary": "Tomatoes are in high demand around Nashik."}`,
	})

	output, err := svc.SummarizeCropDemand(context.Background(), models.CropDemandSummaryInput{
		CropDemandRequests: []models.CropDemandRequest{
			{Crop: "Tomatoes", Quantity: 50, Location: "Nashik"},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.Summary)
}

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"product", "product", IntentProduct},
		{"post", "post", IntentPost},
		{"uppercase", "POST", IntentPost},
		{"extra text", "product listing flow", IntentProduct},
		{"unrecognized falls back to product", "I am not sure", IntentProduct},
		{"empty falls back to product", "", IntentProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAIServiceWith(&fakeGroq{textContent: tt.content})

			intent, err := svc.ClassifyIntent(context.Background(), "I want to add something")

			require.NoError(t, err)
			assert.Equal(t, tt.want, intent)
		})
	}
}

func TestClassifyIntentClientError(t *testing.T) {
	svc := NewAIServiceWith(&fakeGroq{err: errors.New("model returned status 500")})

	_, err := svc.ClassifyIntent(context.Background(), "add a product")

	assert.Error(t, err)
}
