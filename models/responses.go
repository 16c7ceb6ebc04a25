package models

// AuthResult is the positive outcome of a face authentication scan: the
// identity whose stored image matched the presented one.
type AuthResult struct {
	// IdentityID is the matched identity's identifier.
	IdentityID string `json:"user_id"`

	// Email is the matched identity's display label.
	Email string `json:"email"`
}

// AuthResponse is the JSON body returned by the register and authenticate
// endpoints.
type AuthResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id,omitempty"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}

// AccountSummary describes one enrolled identity for account listings.
// Only identities that hold a face link are listed.
type AccountSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Type     string `json:"type"`

	// ImageURL points at the image-serving endpoint for this account.
	ImageURL string `json:"backendPictureUrl"`
}
