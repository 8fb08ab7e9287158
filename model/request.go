package model

// VoicePromptRequest asks for the voice-agent prompt of a microlearning
// module in a given language.
type VoicePromptRequest struct {
	MicrolearningID string `json:"microlearningId" binding:"required"`
	Language        string `json:"language" binding:"required,langcode"`
}

// ConversationMessage is a single turn of a finished voice conversation.
type ConversationMessage struct {
	Role string `json:"role" binding:"required,oneof=agent user"`
	Text string `json:"text" binding:"required"`
}

// SummaryRequest asks for an incident-response summary of a completed
// simulation conversation. AccessToken is an opaque bearer credential,
// validated by delegation and never decoded here.
type SummaryRequest struct {
	AccessToken string                `json:"accessToken" binding:"required,min=32,max=4096"`
	Messages    []ConversationMessage `json:"messages" binding:"required,min=1,max=500,dive"`
}
