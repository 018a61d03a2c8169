package dto

import "encoding/json"

type SavePlanRequest struct {
	Plan json.RawMessage `json:"plan"`
}

type ChatAppendRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type GenerateNutritionRequest struct {
	Cuisine string `json:"cuisine"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatReplyResponse struct {
	Reply string `json:"reply"`
}
