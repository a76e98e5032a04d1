package dto

type PlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
