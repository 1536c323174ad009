// Package dto holds the wire types of the AI endpoints.
package dto

// EnhanceRequest is the body of POST /ai/enhance-event.
type EnhanceRequest struct {
	Description string `json:"description"`
}

// EnhanceResponse is the success body of POST /ai/enhance-event.
type EnhanceResponse struct {
	EnhancedDescription string `json:"enhancedDescription"`
}
