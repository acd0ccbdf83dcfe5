package models

// User is the account owning the access token. Its Identifier salts the
// end-to-end encryption key.
type User struct {
	// Identifier is the account "iden".
	Identifier string `json:"iden"`

	// Name is the display name of the account.
	Name string `json:"name"`

	// Email is the primary e-mail address of the account.
	Email string `json:"email"`
}
