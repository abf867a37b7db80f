/* proxy_test.go
 * Contains unit tests for proxy.go functions
 */

package web

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region allowedProxyHost tests

func TestAllowedProxyHost(t *testing.T) {
	cases := map[string]bool{
		"https://liquipedia.net/commons/images/logo.png": true,
		"https://wiki.liquipedia.net/logo.png":           true,
		"http://liquipedia.net/logo.png":                 false,
		"https://example.com/logo.png":                   false,
		"https://notliquipedia.net/logo.png":             false,
	}
	for raw, want := range cases {
		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, want, allowedProxyHost(u), raw)
	}
}

// endregion

// region LogoProxyHandler tests

func TestLogoProxyHandler_MissingURL(t *testing.T) {
	s := &Server{store: newFakeStore()}
	r := httptest.NewRequest("GET", "http://feeds.example.net/proxy/logo", nil)
	w := httptest.NewRecorder()
	s.LogoProxyHandler(w, r)

	assert.Equal(t, 400, w.Code)
}

func TestLogoProxyHandler_DisallowedHost(t *testing.T) {
	s := &Server{store: newFakeStore()}
	r := httptest.NewRequest("GET", "http://feeds.example.net/proxy/logo?url=https://example.com/x.png", nil)
	w := httptest.NewRecorder()
	s.LogoProxyHandler(w, r)

	assert.Equal(t, 400, w.Code)
}

func TestLogoProxyHandler_WrongMethod(t *testing.T) {
	s := &Server{store: newFakeStore()}
	r := httptest.NewRequest("DELETE", "http://feeds.example.net/proxy/logo", nil)
	w := httptest.NewRecorder()
	s.LogoProxyHandler(w, r)

	assert.Equal(t, 405, w.Code)
}

// endregion
