package models

// Profile is the viewer-chosen persona required before content access.
// At most one profile exists per identity; they share the same id.
type Profile struct {
	ID          string `json:"id"`
	UserName    string `json:"userName"`
	ImageURL    string `json:"imageUrl"`
	CreatedDate string `json:"createdDate"`
	UpdatedDate string `json:"updatedDate"`
}

// CreateProfileRequest carries the one-time profile setup data. The id comes
// from the identity, never generated locally.
type CreateProfileRequest struct {
	ID       string `json:"id" validate:"omitempty,uuid"`
	UserName string `json:"userName" validate:"required,max=50"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type RegisterFavoriteRequest struct {
	MovieID string `json:"movieId"`
}
