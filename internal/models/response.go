package models

const StatusSuccess = "success"

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type PredictionResponse struct {
	Status     string  `json:"status"`
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
}

type RecommendationResponse struct {
	Status       string `json:"status"`
	SuggestedJob string `json:"suggested_job"`
}

type ModelStatus struct {
	State   string `json:"state"`
	Backend string `json:"backend"`
	Path    string `json:"path"`
	Reason  string `json:"reason,omitempty"`
}

type ReadinessResponse struct {
	Status string                 `json:"status"`
	Models map[string]ModelStatus `json:"models"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Detail    string `json:"detail"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}
