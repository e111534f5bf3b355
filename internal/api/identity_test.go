package api

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

func newTestClient(t *testing.T, handler fasthttp.RequestHandler) *IdentityClient {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	go fasthttp.Serve(ln, handler) //nolint:errcheck
	t.Cleanup(func() { ln.Close() })

	return newIdentityClient("http://identity.test/", "sk_test", &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) { return ln.Dial() },
	})
}

func TestGetUser(t *testing.T) {
	client := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "/v1/users/user_123", string(ctx.Path()))
		assert.Equal(t, "Bearer sk_test", string(ctx.Request.Header.Peek("Authorization")))
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"id":"user_123","username":"","first_name":"Lea","last_name":"Pou","image_url":"https://img.test/lea.png"}`)
	})

	user, err := client.GetUser(context.Background(), "user_123")
	require.NoError(t, err)
	assert.Equal(t, "Lea Pou", user.DisplayName())
	assert.Equal(t, "https://img.test/lea.png", user.ImageURL)
	assert.True(t, client.Enabled())
}

func TestGetUserNotFound(t *testing.T) {
	client := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
	})

	_, err := client.GetUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestGetUserServerError(t *testing.T) {
	client := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusBadGateway)
	})

	_, err := client.GetUser(context.Background(), "user_123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIdentityNotFound)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		user     IdentityUser
		expected string
	}{
		{"should prefer username", IdentityUser{ID: "u", Username: "pou", FirstName: "Lea"}, "pou"},
		{"should fall back to names", IdentityUser{ID: "u", FirstName: "Lea"}, "Lea"},
		{"should fall back to id", IdentityUser{ID: "u"}, "u"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.user.DisplayName())
		})
	}
}

func TestEnabled(t *testing.T) {
	var nilClient *IdentityClient
	assert.False(t, nilClient.Enabled())
	assert.False(t, newIdentityClient("http://x", "", &fasthttp.Client{}).Enabled())
}
