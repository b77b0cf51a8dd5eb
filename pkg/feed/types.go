package feed

import "time"

// Event is pushed to every connected subscriber when the ledger changes.
// Types: token_minted, token_listed, listing_cancelled, token_sold.
type Event struct {
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse sent to client on errors
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
