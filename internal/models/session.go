package models

// UserSession is the locally persisted sign-in state. The e-mail is the
// only identifier the backend needs.
type UserSession struct {
	Email string `json:"email"`
}

// Account is what the identity provider yields on a successful sign-in
type Account struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IDToken string `json:"id_token"`
}
