package libs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *GroqClient) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewGroqClientWith("test-key", "test-model", server.URL, server.Client())
	return server, client
}

func TestCompleteJSON(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "{\"summary\": \"ok\"}"}}]}`))
	})

	content, err := client.CompleteJSON(context.Background(), "system prompt", "user prompt")

	require.NoError(t, err)
	assert.Equal(t, `{"summary": "ok"}`, content)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])
	assert.Equal(t, float64(0), gotBody["temperature"])
	assert.Equal(t, map[string]interface{}{"type": "json_object"}, gotBody["response_format"])
}

func TestCompleteTextOmitsResponseFormat(t *testing.T) {
	var gotBody map[string]interface{}

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"choices": [{"message": {"content": "product"}}]}`))
	})

	content, err := client.CompleteText(context.Background(), "classify", "add a product")

	require.NoError(t, err)
	assert.Equal(t, "product", content)
	assert.NotContains(t, gotBody, "response_format")
}

func TestCompleteAPIError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit exceeded"}}`))
	})

	_, err := client.CompleteJSON(context.Background(), "system", "user")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestCompleteStatusErrorWithoutMessage(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	})

	_, err := client.CompleteJSON(context.Background(), "system", "user")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestCompleteMalformedResponse(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.CompleteJSON(context.Background(), "system", "user")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed model response")
}

func TestCompleteNoChoices(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	})

	_, err := client.CompleteJSON(context.Background(), "system", "user")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestCompleteMissingAPIKey(t *testing.T) {
	client := NewGroqClientWith("", "test-model", "http://localhost", nil)

	_, err := client.CompleteJSON(context.Background(), "system", "user")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}
