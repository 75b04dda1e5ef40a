package response

type SignIn struct {
	IDToken string `json:"idToken"`
}
