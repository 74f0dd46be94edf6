//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daily-pos-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/daily-pos-backend/internal/app"
	"github.com/heartmarshall/daily-pos-backend/internal/auth"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/middleware"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/rest"
)

const testSecret = "e2e-secret-that-is-at-least-32-characters"

type testServer struct {
	URL          string
	Client       *http.Client
	DefaultOwner uuid.UUID
	jwt          *auth.JWTManager
}

type envelopeBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"errors"`
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	owner := testhelper.SeedOwner(t, pool)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwt := auth.NewJWTManager(testSecret, "e2e", time.Hour)

	repos := app.NewRepos(pool)
	svc := app.NewServices(logger, repos, postgres.NewTxManager(pool))

	router := app.NewRouter(app.Handlers{
		Health:       rest.NewHealthHandler(pool, "e2e"),
		Today:        rest.NewTodayHandler(svc.Today, logger),
		Tasks:        rest.NewTaskHandler(svc.Tasks, logger),
		BetterItems:  rest.NewBetterItemHandler(svc.BetterItems, logger),
		Habits:       rest.NewHabitHandler(svc.Discipline, svc.Diet, logger),
		Deadlines:    rest.NewDeadlineHandler(svc.Deadlines, logger),
		Money:        rest.NewMoneyHandler(svc.Money, logger),
		Schedule:     rest.NewScheduleHandler(svc.Schedule, logger),
		WeeklyReview: rest.NewWeeklyReviewHandler(svc.WeeklyReview, logger),
		Seed:         rest.NewSeedHandler(svc.Seed, true, logger),
	}, app.RouterOptions{
		Version: "e2e",
		Identity: middleware.IdentityConfig{
			Validator:      jwt,
			Owners:         app.NewOwnerProvisioner(repos.Users),
			DefaultOwner:   owner.ID,
			AllowAnonymous: true,
		},
		Middleware: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID,
			middleware.Logger(logger),
		},
	}, logger)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), DefaultOwner: owner.ID, jwt: jwt}
}

// tokenFor issues a bearer token for an owner that exists in the database.
func (ts *testServer) tokenFor(t *testing.T, ownerID uuid.UUID) string {
	t.Helper()
	token, err := ts.jwt.GenerateAccessToken(ownerID)
	require.NoError(t, err)
	return token
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, envelopeBody) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelopeBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, env envelopeBody) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}
