package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocios-rp/internal/domain"
)

func newProviderServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *DiscordProvider) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewDiscordProvider(srv.URL, 2*time.Second)
}

func TestIntrospect_TokenValido(t *testing.T) {
	var gotAuth string
	_, provider := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, meEndpoint, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"111222333","username":"tuerca99","global_name":"El Tuerca","email":"tuerca@example.com","avatar":"a1b2"}`))
	})

	id, err := provider.Introspect(context.Background(), "abc-token")
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc-token", gotAuth)
	assert.Equal(t, "111222333", id.ID)
	assert.Equal(t, "tuerca99", id.Username)
	assert.Equal(t, "El Tuerca", id.Name)
	assert.Equal(t, "tuerca@example.com", id.Email)
}

func TestIntrospect_TokenRechazado(t *testing.T) {
	_, provider := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := provider.Introspect(context.Background(), "token-vencido")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestIntrospect_SinEmailRechazado(t *testing.T) {
	_, provider := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"111","username":"sin_email"}`))
	})

	_, err := provider.Introspect(context.Background(), "abc")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestIntrospect_ErrorDelProveedor(t *testing.T) {
	_, provider := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := provider.Introspect(context.Background(), "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized, "un 5xx no debe confundirse con credenciales inválidas")
}
