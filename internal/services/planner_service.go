package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/arogyamitra/backend/internal/config"
	"github.com/arogyamitra/backend/internal/models"
)

var ErrAIConfigMissing = errors.New("AI configuration missing")

const (
	workoutSystem = "You are a professional fitness coach. Always return valid JSON matching the provided schema. Do not include any markdown formatting or extra text."

	nutritionSystem = "You are a professional nutritionist. Always return valid JSON matching the provided schema. Do not include any markdown formatting or extra text."
)

// PlannerService is the client for the external generation provider. One
// shot per call: no retry, no backoff, no fallback. Provider or parse
// failures surface as errors for the handler to report upstream.
type PlannerService struct {
	cfg    *config.Config
	client *http.Client
}

func NewPlannerService(cfg *config.Config) *PlannerService {
	return &PlannerService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.AITimeout},
	}
}

// --- Gemini wire types ---

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateWorkout requests a 7-day plan shaped as
// [{day, title, exercises:[{name, sets, reps, rest, intensity,
// youtube_search_query}]}].
func (s *PlannerService) GenerateWorkout(ctx context.Context, profile *models.Profile) (json.RawMessage, error) {
	prompt := fmt.Sprintf(`Generate a 7-day structured fitness plan for a %d year old %s weighing %.0fkg at %.0fcm.
Goal: %s. Activity Level: %s.
Medical Context:
- Allergies: %s
- Health Conditions: %s
- Medications: %s

Include Warmup, Main Workout, and Cooldown for each day. Ensure exercises are safe given the medical context.
Return a JSON array of {"day", "title", "exercises": [{"name", "sets", "reps", "rest", "intensity", "youtube_search_query"}]}.`,
		profile.Age, profile.Gender, profile.Weight, profile.Height,
		profile.Goal, profile.ActivityLevel,
		orNone(profile.Allergies), orNone(profile.HealthConditions), orNone(profile.Medications))

	return s.generateJSON(ctx, workoutSystem, prompt)
}

// GenerateNutrition requests a 7-day meal plan shaped as
// [{day, meals:[{type, name, calories, protein, carbs, fats, ingredients}]}].
func (s *PlannerService) GenerateNutrition(ctx context.Context, profile *models.Profile, cuisine string) (json.RawMessage, error) {
	if cuisine == "" {
		cuisine = "Global"
	}

	prompt := fmt.Sprintf(`Generate a 7-day personalized meal plan for a %d year old %s with goal %s.
Cuisine Preference: %s.
Dietary Preferences: %s.
Medical Context:
- Allergies: %s
- Health Conditions: %s
- Medications: %s

Include Breakfast, Lunch, Snack, Dinner for each day with calorie and macro breakdown. Ensure meals are safe given the medical context and allergies. If cuisine is Indian, include popular healthy Indian dishes like Poha, Moong Dal Chilla, Paneer Tikka, etc.
Return a JSON array of {"day", "meals": [{"type", "name", "calories", "protein", "carbs", "fats", "ingredients": ["..."]}]}.`,
		profile.Age, profile.Gender, profile.Goal, cuisine, profile.DietaryPreferences,
		orNone(profile.Allergies), orNone(profile.HealthConditions), orNone(profile.Medications))

	return s.generateJSON(ctx, nutritionSystem, prompt)
}

// Chat sends one coach-conversation turn grounded in the user's profile.
func (s *PlannerService) Chat(ctx context.Context, profile *models.Profile, message string) (string, error) {
	profileJSON, _ := json.Marshal(profile)
	system := fmt.Sprintf(`You are AROMI, an empathetic and intelligent AI health coach for ArogyaMitra.
User Profile: %s.
Medical Info:
- Allergies: %s
- Health Conditions: %s
- Medications: %s

Be encouraging, professional, and data-driven. Help with workouts, nutrition, and motivation.
IMPORTANT: Always consider the user's medical conditions, allergies, and medications when giving advice.`,
		profileJSON, orNone(profile.Allergies), orNone(profile.HealthConditions), orNone(profile.Medications))

	return s.generate(ctx, system, message, false)
}

func (s *PlannerService) generateJSON(ctx context.Context, system, prompt string) (json.RawMessage, error) {
	text, err := s.generate(ctx, system, prompt, true)
	if err != nil {
		return nil, err
	}

	var plan json.RawMessage
	if err := json.Unmarshal([]byte(cleanJSON(text)), &plan); err != nil {
		return nil, fmt.Errorf("provider returned unparsable plan: %w", err)
	}
	return plan, nil
}

func (s *PlannerService) generate(ctx context.Context, system, prompt string, jsonMode bool) (string, error) {
	if s.cfg.GeminiAPIKey == "" {
		return "", ErrAIConfigMissing
	}

	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: system}}},
		Contents:          []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	if jsonMode {
		reqBody.GenerationConfig = &geminiGenerationConfig{ResponseMIMEType: "application/json"}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode provider request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		s.cfg.GeminiAPIURL, s.cfg.GeminiModel, s.cfg.GeminiAPIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var genResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode provider response: %w", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("provider returned no candidates")
	}

	var sb strings.Builder
	for _, part := range genResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

// cleanJSON strips markdown code fences some models wrap around JSON output.
func cleanJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

func orNone(s *string) string {
	if s == nil || *s == "" {
		return "None"
	}
	return *s
}
