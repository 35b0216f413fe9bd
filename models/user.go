package models

// User is the logged-in session identity. There is no credential entity;
// verification is delegated to the configured CredentialVerifier.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
