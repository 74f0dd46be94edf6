package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
)

//go:generate moq -out better_item_service_mock_test.go -pkg rest . betterItemService
//go:generate moq -out deadline_service_mock_test.go -pkg rest . deadlineService
//go:generate moq -out diet_service_mock_test.go -pkg rest . dietService
//go:generate moq -out discipline_service_mock_test.go -pkg rest . disciplineService
//go:generate moq -out money_service_mock_test.go -pkg rest . moneyService
//go:generate moq -out schedule_service_mock_test.go -pkg rest . scheduleService
//go:generate moq -out seed_service_mock_test.go -pkg rest . seedService
//go:generate moq -out task_service_mock_test.go -pkg rest . taskService
//go:generate moq -out today_service_mock_test.go -pkg rest . todayService
//go:generate moq -out weekly_review_service_mock_test.go -pkg rest . weeklyReviewService

type testEnvelope struct {
	Success bool                  `json:"success"`
	Data    json.RawMessage       `json:"data"`
	Message string                `json:"message"`
	Errors  []envelope.FieldError `json:"errors"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return env
}

func decodeData(t *testing.T, env testEnvelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}
