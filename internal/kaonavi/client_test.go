package kaonavi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"MemberDirectory_UnityProject/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientConfig{
		BaseURL:   server.URL,
		APIKey:    "test-key",
		APISecret: "test-secret",
		Timeout:   5 * time.Second,
	}, zap.NewNop())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClientTokenUsesClientCredentialsGrant(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/token", r.URL.Path)

		key, secret, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "test-key", key)
		assert.Equal(t, "test-secret", secret)

		writeJSON(w, http.StatusOK, map[string]string{"access_token": "token-123"})
	}))

	token, err := client.Token()
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)
}

func TestClientTokenRejectedIsAuthError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_client"})
	}))

	_, err := client.Token()
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
}

func TestClientTokenMissingFieldIsAuthError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"unexpected": "body"})
	}))

	_, err := client.Token()
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestClientMembersSendsTokenHeader(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/members", r.URL.Path)
		assert.Equal(t, "token-123", r.Header.Get("Kaonavi-Token"))

		writeJSON(w, http.StatusOK, models.MemberList{MemberData: []models.Member{
			{Code: "A0001", Name: "山田太郎"},
		}})
	}))

	members, err := client.Members("token-123")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "A0001", members[0].Code)
}

func TestClientMembersMalformedBodyIsUpstreamError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"unexpected": "body"})
	}))

	_, err := client.Members("token-123")
	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "members", upstreamErr.Op)
}

func TestClientMembersNon2xxCarriesUpstreamPayload(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string][]string{
			"errors": {"サーバーエラーが発生しました"},
		})
	}))

	_, err := client.Members("token-123")
	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusInternalServerError, upstreamErr.Status)
	assert.Equal(t, []string{"サーバーエラーが発生しました"}, upstreamErr.Errors)
}

func TestClientSheets(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sheets/20", r.URL.Path)
		assert.Equal(t, "token-123", r.Header.Get("Kaonavi-Token"))

		writeJSON(w, http.StatusOK, models.SheetCollection{MemberData: []models.SheetMember{
			{Code: "A0001", Records: []models.SheetRecord{{}}},
		}})
	}))

	sheets, err := client.Sheets("token-123", 20)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, "A0001", sheets[0].Code)
}

func TestClientAddSheetPostsToAddEndpoint(t *testing.T) {
	var gotPayload models.SheetCollection
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sheets/20/add", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		writeJSON(w, http.StatusOK, map[string]string{"task_id": "1"})
	}))

	payload := models.SheetCollection{MemberData: []models.SheetMember{{Code: "A0001"}}}
	require.NoError(t, client.AddSheet("token-123", 20, payload))
	assert.Equal(t, "A0001", gotPayload.MemberData[0].Code)
}

func TestClientUpdateSheetPatchesSheetEndpoint(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/sheets/20", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]string{"task_id": "2"})
	}))

	payload := models.SheetCollection{MemberData: []models.SheetMember{{Code: "A0001"}}}
	require.NoError(t, client.UpdateSheet("token-123", 20, payload))
}

func TestClientUpdateSheetRejectionKeepsErrorsVerbatim(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string][]string{
			"errors": {"codeは必須です"},
		})
	}))

	err := client.UpdateSheet("token-123", 20, models.SheetCollection{})
	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, []string{"codeは必須です"}, upstreamErr.Errors)
}
