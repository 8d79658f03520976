package models

// Session is the client's belief about the current authenticated identity.
// Invariant: Token is non-empty exactly when User is non-nil. A session
// violating this is treated as invalid and cleared.
type Session struct {
	Token string    `json:"token"`
	User  *Identity `json:"user"`
}

// Valid reports whether the session holds a complete token/identity pair.
func (s Session) Valid() bool {
	return s.Token != "" && s.User != nil
}

// Empty reports whether the session holds neither token nor identity.
func (s Session) Empty() bool {
	return s.Token == "" && s.User == nil
}
