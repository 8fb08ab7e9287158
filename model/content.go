package model

// SceneContent is a single scene of a microlearning module as stored in the
// content store. Prompt seeds the voice agent, FirstMessage is the opening
// line spoken to the trainee.
type SceneContent struct {
	Prompt       string `json:"prompt"`
	FirstMessage string `json:"firstMessage"`
}

// MicrolearningContent maps a scene key (e.g. "4") to its content. The store
// is written by the content pipeline; this service only reads it.
type MicrolearningContent map[string]SceneContent
