package oauth

import (
	"context"

	"github.com/JMURv/authcore/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderGithub Provider = "github"
)

// Profile is the normalized identity every provider strategy produces.
type Profile struct {
	ExternalID    string
	Email         string
	Name          string
	AvatarURL     string
	EmailVerified bool
}

// Strategy captures everything that differs between providers: scopes,
// PKCE requirement and how the profile is obtained. The login/callback
// state machine itself is provider-agnostic.
type Strategy interface {
	Name() Provider
	UsesPKCE() bool
	AuthCodeURL(state, verifier string) string
	Exchange(ctx context.Context, code, verifier string) (*Profile, error)
}

type Registry struct {
	strategies map[Provider]Strategy
}

func New(conf config.Config) *Registry {
	r := &Registry{strategies: map[Provider]Strategy{}}

	if conf.OAuth.GoogleClientID != "" {
		r.strategies[ProviderGoogle] = &googleStrategy{
			conf: &oauth2.Config{
				ClientID:     conf.OAuth.GoogleClientID,
				ClientSecret: conf.OAuth.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				RedirectURL:  conf.OAuth.RedirectBase + "/auth/callback/google",
				Scopes:       []string{"openid", "email", "profile"},
			},
		}
	}

	if conf.OAuth.GithubClientID != "" {
		r.strategies[ProviderGithub] = &githubStrategy{
			conf: &oauth2.Config{
				ClientID:     conf.OAuth.GithubClientID,
				ClientSecret: conf.OAuth.GithubClientSecret,
				Endpoint:     github.Endpoint,
				RedirectURL:  conf.OAuth.RedirectBase + "/auth/callback/github",
				Scopes:       []string{"read:user", "user:email"},
			},
		}
	}

	return r
}

func (r *Registry) Get(name string) (Strategy, error) {
	s, ok := r.strategies[Provider(name)]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return s, nil
}
