package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/bilingual-portfolio-backend/errs"
)

func newFakeTranslateServer(t *testing.T, handler http.HandlerFunc) *GoogleTranslator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGoogleTranslator(map[string]string{"TRANSLATE_BASE_URL": srv.URL})
}

func TestTranslateJoinsSentenceSegments(t *testing.T) {
	var gotQuery string
	tr := newFakeTranslateServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "/translate_a/single", r.URL.Path)
		assert.Equal(t, "gtx", r.URL.Query().Get("client"))
		assert.Equal(t, "ar", r.URL.Query().Get("sl"))
		assert.Equal(t, "en", r.URL.Query().Get("tl"))
		w.Write([]byte(`[[["Hello. ","مرحبا. ",null,null],["World.","عالم.",null,null]],null,"ar"]`))
	})

	out, err := tr.Translate(context.Background(), "مرحبا. عالم.", "ar", "en")
	require.NoError(t, err)
	assert.Equal(t, "Hello. World.", out)
	assert.Equal(t, "مرحبا. عالم.", gotQuery)
}

func TestTranslateEmptyInputSkipsNetworkCall(t *testing.T) {
	called := false
	tr := newFakeTranslateServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	out, err := tr.Translate(context.Background(), "   ", "ar", "en")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.False(t, called)
}

func TestTranslateUpstreamErrorStatus(t *testing.T) {
	tr := newFakeTranslateServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := tr.Translate(context.Background(), "مرحبا", "ar", "en")
	require.Error(t, err)
	assert.True(t, errs.IsTranslation(err))
}

func TestTranslateMalformedPayload(t *testing.T) {
	tr := newFakeTranslateServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	})

	_, err := tr.Translate(context.Background(), "مرحبا", "ar", "en")
	require.Error(t, err)
	assert.True(t, errs.IsTranslation(err))
}

func TestTranslateUnreachableEndpoint(t *testing.T) {
	tr := NewGoogleTranslator(map[string]string{"TRANSLATE_BASE_URL": "http://127.0.0.1:1"})

	_, err := tr.Translate(context.Background(), "مرحبا", "ar", "en")
	require.Error(t, err)
	assert.True(t, errs.IsTranslation(err))
}
