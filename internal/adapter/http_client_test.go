package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anteater-game/server/internal/utils"
	"github.com/anteater-game/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedTokenFor issues a real JWT so the adapter can read the player id
// out of the subject claim.
func signedTokenFor(t *testing.T, playerID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("adapter-test", playerID, time.Hour, "test-key")
	require.NoError(t, err)
	return token.SignedString
}

func newAdapterForServer(srv *httptest.Server) GameServerAdapter {
	return NewHTTPServerAdapter(HTTPClientConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
}

func TestHTTPServerAdapter_SignUpStoresToken(t *testing.T) {
	signed := signedTokenFor(t, 7)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/signup", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "antonia", creds.Username)

		w.Header().Set("Authorization", "Bearer "+signed)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newAdapterForServer(srv)
	playerID, err := a.SignUp(context.Background(), models.Credentials{Username: "antonia", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), playerID)
	assert.Equal(t, signed, a.Token())
}

func TestHTTPServerAdapter_LoginConflictAndUnauthorized(t *testing.T) {
	status := http.StatusUnauthorized
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", status)
	}))
	defer srv.Close()

	a := newAdapterForServer(srv)

	_, err := a.Login(context.Background(), models.Credentials{Username: "antonia", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token(), "a failed login must not store a token")

	status = http.StatusConflict
	_, err = a.SignUp(context.Background(), models.Credentials{Username: "antonia", Password: "secret"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestHTTPServerAdapter_RecordScoreSendsBearer(t *testing.T) {
	signed := signedTokenFor(t, 7)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/scores", r.URL.Path)
		assert.Equal(t, "Bearer "+signed, r.Header.Get("Authorization"))

		var sub models.ScoreSubmission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
		assert.Equal(t, int64(1250), sub.Score)

		utils.WriteJSON(w, map[string]int64{"score_id": 42}, http.StatusCreated)
	}))
	defer srv.Close()

	a := newAdapterForServer(srv)
	a.SetToken(signed)

	scoreID, err := a.RecordScore(context.Background(), models.ScoreSubmission{Score: 1250, Level: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(42), scoreID)
}

func TestHTTPServerAdapter_TopScores(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/scores/top", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))

		utils.WriteJSON(w, []models.LeaderboardEntry{
			{Username: "bea", Score: 200, Level: 2},
			{Username: "ana", Score: 50, Level: 1},
		}, http.StatusOK)
	}))
	defer srv.Close()

	a := newAdapterForServer(srv)
	entries, err := a.TopScores(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "bea", entries[0].Username)
}

func TestHTTPServerAdapter_ProgressRoundTrip(t *testing.T) {
	signed := signedTokenFor(t, 7)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/progress":
			utils.WriteJSON(w, models.Progress{Level: 5, Achievements: []string{"first-blood"}}, http.StatusOK)
		case r.Method == http.MethodPut && r.URL.Path == "/api/progress/level":
			var update models.LevelUpdate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
			assert.Equal(t, int64(9), update.Level)
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPost && r.URL.Path == "/api/progress/achievements":
			var grant models.AchievementGrant
			require.NoError(t, json.NewDecoder(r.Body).Decode(&grant))
			assert.Equal(t, "ant-eater", grant.AchievementID)
			w.WriteHeader(http.StatusOK)
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newAdapterForServer(srv)
	a.SetToken(signed)

	progress, err := a.GetProgress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), progress.Level)

	require.NoError(t, a.SetLevel(context.Background(), 9))
	require.NoError(t, a.AddAchievement(context.Background(), "ant-eater"))
}

func TestHTTPServerAdapter_DeleteAccountClearsToken(t *testing.T) {
	signed := signedTokenFor(t, 7)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/players/me", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newAdapterForServer(srv)
	a.SetToken(signed)

	require.NoError(t, a.DeleteAccount(context.Background()))
	assert.Empty(t, a.Token())
}

func TestHTTPServerAdapter_NotFoundAndUnavailable(t *testing.T) {
	status := http.StatusNotFound
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", status)
	}))
	defer srv.Close()

	a := newAdapterForServer(srv)

	_, err := a.TopScores(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNotFound)

	status = http.StatusServiceUnavailable
	_, err = a.TopScores(context.Background(), 3)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}
