package dto

type OAuthBegin struct {
	URL      string `json:"url"`
	State    string `json:"state"`
	Verifier string `json:"verifier,omitempty"`
	UsesPKCE bool   `json:"usesPkce"`
}

// OAuthCallbackRequest carries the callback query parameters together with
// the values read back from the short-lived state cookies. Empty
// CookieState means the cookie was absent.
type OAuthCallbackRequest struct {
	Provider      string `json:"provider"`
	Code          string `json:"code"`
	State         string `json:"state"`
	ProviderError string `json:"error"`
	CookieState   string `json:"-"`
	Verifier      string `json:"-"`
}
