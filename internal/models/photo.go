package models

import "time"

// Photo is a stored photo record. The json tags (`UserId`, `createdAt`) are
// the public wire contract and must not change.
type Photo struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"image_url"`
	UserID    int       `json:"UserId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PhotoDetail is a photo joined with its owner, as returned by GET /photos/:id.
// The owner id lives inside the embedded User and is not repeated at top level.
type PhotoDetail struct {
	ID        int         `json:"id"`
	Title     string      `json:"title"`
	Caption   string      `json:"caption"`
	ImageURL  string      `json:"image_url"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	User      UserSummary `json:"User"`
}

type CreatePhotoRequest struct {
	Title    string `json:"title"`
	Caption  string `json:"caption"`
	ImageURL string `json:"image_url"`
}
