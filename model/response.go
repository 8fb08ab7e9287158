package model

import "encoding/json"

// VoicePromptResponse is the success payload for a voice-prompt lookup.
// SignedURL is best-effort enrichment and omitted when the voice-session
// provisioning call is disabled or fails.
type VoicePromptResponse struct {
	Success         bool   `json:"success"`
	MicrolearningID string `json:"microlearningId"`
	Language        string `json:"language"`
	Prompt          string `json:"prompt"`
	FirstMessage    string `json:"firstMessage"`
	AgentID         string `json:"agentId"`
	WsURL           string `json:"wsUrl"`
	SignedURL       string `json:"signedUrl,omitempty"`
}

// VoicePromptResult is the service-level outcome of a voice-prompt lookup,
// before it is shaped into a response.
type VoicePromptResult struct {
	MicrolearningID string
	Language        string
	Prompt          string
	FirstMessage    string
	AgentID         string
	WsURL           string
	SignedURL       string
}

// ConversationSummary is the summarizer's output. StatusCard is passed
// through verbatim; its shape belongs to the summarizer, not to us.
type ConversationSummary struct {
	Summary    string          `json:"summary"`
	NextSteps  []string        `json:"nextSteps"`
	StatusCard json.RawMessage `json:"statusCard"`
}

// SummaryResponse is the success payload for a conversation-summary request.
type SummaryResponse struct {
	Success    bool            `json:"success"`
	Summary    string          `json:"summary"`
	NextSteps  []string        `json:"nextSteps"`
	StatusCard json.RawMessage `json:"statusCard"`
}
