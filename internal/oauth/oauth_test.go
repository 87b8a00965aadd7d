package oauth

import (
	"testing"

	"github.com/JMURv/authcore/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Get(t *testing.T) {
	conf := config.Config{}
	conf.OAuth.RedirectBase = "http://localhost:8080"
	conf.OAuth.GoogleClientID = "google-id"
	conf.OAuth.GoogleClientSecret = "google-secret"

	r := New(conf)

	t.Run("ConfiguredProvider", func(t *testing.T) {
		s, err := r.Get("google")
		require.NoError(t, err)
		assert.Equal(t, ProviderGoogle, s.Name())
		assert.True(t, s.UsesPKCE())
	})

	// Github has no credentials above, so it never entered the registry.
	t.Run("UnconfiguredProvider", func(t *testing.T) {
		_, err := r.Get("github")
		assert.ErrorIs(t, err, ErrUnknownProvider)
	})

	t.Run("UnknownProvider", func(t *testing.T) {
		_, err := r.Get("myspace")
		assert.ErrorIs(t, err, ErrUnknownProvider)
	})
}

func TestGoogleStrategy_AuthCodeURL(t *testing.T) {
	conf := config.Config{}
	conf.OAuth.RedirectBase = "http://localhost:8080"
	conf.OAuth.GoogleClientID = "google-id"
	conf.OAuth.GoogleClientSecret = "google-secret"

	r := New(conf)
	s, err := r.Get("google")
	require.NoError(t, err)

	url := s.AuthCodeURL("st-1", "ver-1")
	assert.Contains(t, url, "state=st-1")
	assert.Contains(t, url, "code_challenge=")
	assert.Contains(t, url, "code_challenge_method=S256")
	assert.Contains(t, url, "redirect_uri=")
}
