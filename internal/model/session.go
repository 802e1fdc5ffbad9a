package model

// Session is the client-owned authentication state: created at login, read
// by every authorized call, destroyed at logout.
type Session struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// Valid reports whether the session carries a usable credential.
func (s Session) Valid() bool {
	return s.Token != ""
}
