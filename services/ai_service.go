package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"farmconnect/libs"
	"farmconnect/models"
)

// GroqCompleter is the slice of the Groq client the AI flows need; tests
// substitute a fake.
type GroqCompleter interface {
	CompleteJSON(ctx context.Context, system, user string) (string, error)
	CompleteText(ctx context.Context, system, user string) (string, error)
}

type AIService struct {
	client GroqCompleter
}

func NewAIService() *AIService {
	return &AIService{client: libs.NewGroqClient()}
}

func NewAIServiceWith(client GroqCompleter) *AIService {
	return &AIService{client: client}
}

const dietarySystemPrompt = `You are a registered dietician who provides personalized dietary recommendations based on a person's health conditions and dietary goals. Only recommend fruits and vegetables. Respond with a JSON object of the shape {"recommendations": ["..."], "explanation": "..."}.`

func buildDietaryPrompt(input models.DietaryRecommendationInput) string {
	conditions := "none"
	if len(input.HealthConditions) > 0 {
		conditions = strings.Join(input.HealthConditions, ", ")
	}
	return fmt.Sprintf(
		"Given the following health conditions: %s\nAnd the dietary goal of: %s\n\nRecommend specific fruits and vegetables, and explain why these recommendations are being made, considering the health conditions and dietary goals.",
		conditions, input.DietaryGoals,
	)
}

func (s *AIService) GetDietaryRecommendations(ctx context.Context, input models.DietaryRecommendationInput) (*models.DietaryRecommendationOutput, error) {
	if strings.TrimSpace(input.DietaryGoals) == "" {
		input.DietaryGoals = "healthy eating"
	}

	content, err := s.client.CompleteJSON(ctx, dietarySystemPrompt, buildDietaryPrompt(input))
	if err != nil {
		return nil, err
	}

	var output models.DietaryRecommendationOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("model output did not match schema: %w", err)
	}
	if len(output.Recommendations) == 0 || output.Explanation == "" {
		return nil, errors.New("model output did not match schema: missing recommendations or explanation")
	}
	return &output, nil
}

const productDescriptionSystemPrompt = `You are an expert copywriter specializing in writing compelling product descriptions for fruits and vegetables. Respond with a JSON object of the shape {"description": "..."}.`

func buildProductDescriptionPrompt(input models.ProductDescriptionInput) string {
	return fmt.Sprintf(
		"Given the following information, write a short, engaging description to attract customers:\n\nProduct Name: %s\nProduct Type: %s\nKey Traits: %s",
		input.ProductName, input.ProductType, input.KeyTraits,
	)
}

func (s *AIService) GenerateProductDescription(ctx context.Context, input models.ProductDescriptionInput) (*models.ProductDescriptionOutput, error) {
	content, err := s.client.CompleteJSON(ctx, productDescriptionSystemPrompt, buildProductDescriptionPrompt(input))
	if err != nil {
		return nil, err
	}

	var output models.ProductDescriptionOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("model output did not match schema: %w", err)
	}
	if output.Description == "" {
		return nil, errors.New("model output did not match schema: missing description")
	}
	return &output, nil
}

const cropDemandSystemPrompt = `You are an AI assistant helping farmers understand crop demand. Respond with a JSON object of the shape {"summary": "..."}.`

func buildCropDemandPrompt(input models.CropDemandSummaryInput) string {
	var b strings.Builder
	b.WriteString("Summarize the following crop demand requests, highlighting the crops in high demand, their quantities, and locations:\n\n")
	for _, req := range input.CropDemandRequests {
		fmt.Fprintf(&b, "- Crop: %s, Quantity: %g, Location: %s\n", req.Crop, req.Quantity, req.Location)
	}
	return b.String()
}

func (s *AIService) SummarizeCropDemand(ctx context.Context, input models.CropDemandSummaryInput) (*models.CropDemandSummaryOutput, error) {
	content, err := s.client.CompleteJSON(ctx, cropDemandSystemPrompt, buildCropDemandPrompt(input))
	if err != nil {
		return nil, err
	}

	var output models.CropDemandSummaryOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("model output did not match schema: %w", err)
	}
	if output.Summary == "" {
		return nil, errors.New("model output did not match schema: missing summary")
	}
	return &output, nil
}

const (
	IntentProduct = "product"
	IntentPost    = "post"
)

const intentSystemPrompt = `You are an intent classifier for an agricultural marketplace app.
Analyze the user message and classify it as exactly ONE of these intents:

1. "product" - When the user wants to add or create a new product listing
2. "post" - When the user wants to create a social post using an existing product

Return ONLY the word "product" or "post" without any additional text.`

// ClassifyIntent decides which creation flow the assistant should steer the
// farmer towards. Unrecognized model output falls back to "product".
func (s *AIService) ClassifyIntent(ctx context.Context, message string) (string, error) {
	content, err := s.client.CompleteText(ctx, intentSystemPrompt, message)
	if err != nil {
		return "", err
	}

	intent := ""
	if fields := strings.Fields(strings.ToLower(content)); len(fields) > 0 {
		intent = fields[0]
	}
	if intent != IntentProduct && intent != IntentPost {
		intent = IntentProduct
	}
	return intent, nil
}
