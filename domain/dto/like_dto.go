package dto

// ToggleResult reports which way a toggle went.
type ToggleResult struct {
	Toggled string `json:"toggled"` // added | removed
}
