package models

// Response is the JSON envelope every endpoint answers with. Code duplicates
// the HTTP status so that frontends reading only the body stay consistent
// with the transport-level status.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`

	// Data carries the operation payload: an entity, a list, or an
	// [ImportReport]. Omitted on errors.
	Data any `json:"data,omitempty"`
}

// AuthResponse is the body of a successful authentication.
type AuthResponse struct {
	Code   int    `json:"code"`
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// RegistrationResponse is the body of a successful account creation.
type RegistrationResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	ID      string `json:"id"`
	Token   string `json:"token"`
}

// ProfileResponse wraps the profile payload returned by the profile surface.
type ProfileResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	User    User   `json:"user"`
}
