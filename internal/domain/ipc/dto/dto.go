// Package dto contains data transfer objects for the ipc domain
package dto

// MessageRequest represents an inbound text message
type MessageRequest struct {
	ChatID int64  `json:"chatId"`
	UserID int64  `json:"userId"`
	Text   string `json:"text"`
}

// MessageResponse describes the reply that was sent
type MessageResponse struct {
	Code     string `json:"code,omitempty"`
	Resolved bool   `json:"resolved"`
	Text     string `json:"text"`
}
