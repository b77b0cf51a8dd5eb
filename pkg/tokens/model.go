package tokens

import "time"

type Token struct {
	ID          int64     `json:"id"`
	OwnerUUID   string    `json:"owner_uuid"`
	CreatorUUID string    `json:"creator_uuid"`
	TokenURI    string    `json:"token_uri"`
	CreatedAt   time.Time `json:"created_at"`
}

type TokenList struct {
	Items []Token `json:"items"`
	Total int64   `json:"total"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
}
