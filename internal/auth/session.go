package auth

// Session is the mutable session record owned by the Manager. Empty
// fields mean unauthenticated / unset. Other components receive copies
// via Manager.Session; only the Manager writes it.
type Session struct {
	Token       string
	BaseURL     string
	Environment string
}

// LoggedIn reports whether the session currently holds a token.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}
