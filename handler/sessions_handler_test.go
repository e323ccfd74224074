package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"main/middleware"
	"main/repository"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := usecase.NewScreenTimeService(usecase.ScreenTimeServiceConfig{
		Sessions:    repository.NewMemorySessionsRepo(),
		Goals:       repository.NewMemoryGoalsRepo(),
		DefaultGoal: 360,
	})

	sessionsHandler := NewSessionsHandler(service)
	goalsHandler := NewGoalsHandler(service)
	statsHandler := NewStatsHandler(service)
	achievementsHandler := NewAchievementsHandler(service)
	quotesHandler := NewQuotesHandler()

	router := gin.New()
	api := router.Group("/api")
	api.Use(middleware.IdentityMiddleware(1))
	{
		api.GET("/screen-time-sessions", sessionsHandler.GetSessions)
		api.GET("/screen-time-sessions/:date", sessionsHandler.GetSessionsByDate)
		api.POST("/screen-time-sessions", sessionsHandler.CreateSession)
		api.DELETE("/screen-time-sessions/:id", sessionsHandler.DeleteSession)
		api.GET("/daily-goal", goalsHandler.GetGoal)
		api.POST("/daily-goal", goalsHandler.SaveGoal)
		api.GET("/stats/summary", statsHandler.GetSummary)
		api.GET("/stats/weekly", statsHandler.GetWeekly)
		api.GET("/achievements", achievementsHandler.GetAchievements)
		api.GET("/quotes/daily", quotesHandler.GetDailyQuote)
		api.GET("/quotes/random", quotesHandler.GetRandomQuote)
	}
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return env
}

func TestSessionLifecycle(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "empty list before any logging",
			run: func(t *testing.T) {
				w := doRequest(router, http.MethodGet, "/api/screen-time-sessions", "")
				if w.Code != http.StatusOK {
					t.Fatalf("status = %d", w.Code)
				}
				var sessions []json.RawMessage
				if err := json.Unmarshal(decodeEnvelope(t, w).Data, &sessions); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if len(sessions) != 0 {
					t.Errorf("expected empty list, got %d entries", len(sessions))
				}
			},
		},
		{
			name: "logged session appears in the list",
			run: func(t *testing.T) {
				w := doRequest(router, http.MethodPost, "/api/screen-time-sessions",
					`{"category":"Work","duration":90,"notes":"deep work"}`)
				if w.Code != http.StatusCreated {
					t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
				}

				w = doRequest(router, http.MethodGet, "/api/screen-time-sessions", "")
				var sessions []struct {
					ID       int    `json:"id"`
					Category string `json:"category"`
					Duration int    `json:"duration"`
				}
				if err := json.Unmarshal(decodeEnvelope(t, w).Data, &sessions); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if len(sessions) != 1 {
					t.Fatalf("expected 1 session, got %d", len(sessions))
				}
				if sessions[0].Category != "Work" || sessions[0].Duration != 90 {
					t.Errorf("unexpected session: %+v", sessions[0])
				}
				if sessions[0].ID != 1 {
					t.Errorf("id = %d, want 1", sessions[0].ID)
				}
			},
		},
		{
			name: "date endpoint returns today's sessions",
			run: func(t *testing.T) {
				today := time.Now().Format("2006-01-02")
				w := doRequest(router, http.MethodGet, "/api/screen-time-sessions/"+today, "")
				if w.Code != http.StatusOK {
					t.Fatalf("status = %d", w.Code)
				}
				var sessions []json.RawMessage
				if err := json.Unmarshal(decodeEnvelope(t, w).Data, &sessions); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if len(sessions) != 1 {
					t.Errorf("expected 1 session today, got %d", len(sessions))
				}
			},
		},
		{
			name: "malformed date is a client error",
			run: func(t *testing.T) {
				w := doRequest(router, http.MethodGet, "/api/screen-time-sessions/not-a-date", "")
				if w.Code != http.StatusBadRequest {
					t.Errorf("status = %d, want 400", w.Code)
				}
			},
		},
		{
			name: "missing fields produce validation details",
			run: func(t *testing.T) {
				w := doRequest(router, http.MethodPost, "/api/screen-time-sessions", `{"notes":"oops"}`)
				if w.Code != http.StatusBadRequest {
					t.Fatalf("status = %d, want 400", w.Code)
				}
				env := decodeEnvelope(t, w)
				if env.Error == "" || len(env.Details) == 0 {
					t.Errorf("expected structured validation details, got %s", w.Body.String())
				}
			},
		},
		{
			name: "delete succeeds and unknown id is a no-op",
			run: func(t *testing.T) {
				w := doRequest(router, http.MethodDelete, "/api/screen-time-sessions/1", "")
				if w.Code != http.StatusOK {
					t.Fatalf("delete status = %d", w.Code)
				}
				var payload struct {
					Success bool `json:"success"`
				}
				if err := json.Unmarshal(decodeEnvelope(t, w).Data, &payload); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if !payload.Success {
					t.Errorf("expected success:true")
				}

				w = doRequest(router, http.MethodDelete, "/api/screen-time-sessions/424242", "")
				if w.Code != http.StatusOK {
					t.Errorf("deleting unknown id should not fail, status = %d", w.Code)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func TestGoalUpsert(t *testing.T) {
	router := setupTestRouter(t)

	// No goal yet: 200 with empty data.
	w := doRequest(router, http.MethodGet, "/api/daily-goal", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	w = doRequest(router, http.MethodPost, "/api/daily-goal",
		`{"totalGoal":300,"categoryLimits":"{\"Work\":480}","breakReminders":30}`)
	if w.Code != http.StatusOK {
		t.Fatalf("first upsert status = %d: %s", w.Code, w.Body.String())
	}

	var goal struct {
		ID              int    `json:"id"`
		TotalGoal       int    `json:"totalGoal"`
		EnableReminders string `json:"enableReminders"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &goal); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if goal.TotalGoal != 300 || goal.EnableReminders != "true" {
		t.Errorf("unexpected goal: %+v", goal)
	}
	firstID := goal.ID

	// Second upsert overwrites fields, id stays stable.
	w = doRequest(router, http.MethodPost, "/api/daily-goal",
		`{"totalGoal":240,"categoryLimits":"{}","breakReminders":45,"enableReminders":"false"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("second upsert status = %d", w.Code)
	}
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &goal); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if goal.ID != firstID {
		t.Errorf("goal id changed across upserts: %d vs %d", goal.ID, firstID)
	}
	if goal.TotalGoal != 240 || goal.EnableReminders != "false" {
		t.Errorf("fields not overwritten: %+v", goal)
	}

	w = doRequest(router, http.MethodGet, "/api/daily-goal", "")
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &goal); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if goal.TotalGoal != 240 {
		t.Errorf("stored totalGoal = %d, want 240", goal.TotalGoal)
	}
}

func TestStatsAndAchievementsEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	doRequest(router, http.MethodPost, "/api/screen-time-sessions",
		`{"category":"Work","duration":90}`)

	w := doRequest(router, http.MethodGet, "/api/stats/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("summary status = %d", w.Code)
	}
	var summary struct {
		TodayTotal       int `json:"todayTotal"`
		DailyGoalMinutes int `json:"dailyGoalMinutes"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if summary.TodayTotal != 90 {
		t.Errorf("todayTotal = %d, want 90", summary.TodayTotal)
	}
	if summary.DailyGoalMinutes != 360 {
		t.Errorf("default goal = %d, want 360", summary.DailyGoalMinutes)
	}

	w = doRequest(router, http.MethodGet, "/api/stats/weekly", "")
	if w.Code != http.StatusOK {
		t.Fatalf("weekly status = %d", w.Code)
	}
	var weekly struct {
		Days        []json.RawMessage `json:"days"`
		WeeklyTotal int               `json:"weeklyTotal"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &weekly); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(weekly.Days) != 7 || weekly.WeeklyTotal != 90 {
		t.Errorf("weekly: days=%d total=%d", len(weekly.Days), weekly.WeeklyTotal)
	}

	w = doRequest(router, http.MethodGet, "/api/achievements", "")
	if w.Code != http.StatusOK {
		t.Fatalf("achievements status = %d", w.Code)
	}
	var achievements struct {
		UnlockedCount int               `json:"unlockedCount"`
		TotalCount    int               `json:"totalCount"`
		Achievements  []json.RawMessage `json:"achievements"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &achievements); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if achievements.TotalCount != 6 || len(achievements.Achievements) != 6 {
		t.Errorf("achievement catalogue wrong size: %+v", achievements)
	}
	// 90m logged today under both limits: first_log, goal_keeper, break_champion.
	if achievements.UnlockedCount != 3 {
		t.Errorf("unlockedCount = %d, want 3", achievements.UnlockedCount)
	}
}

func TestQuoteEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/quotes/daily", "")
	if w.Code != http.StatusOK {
		t.Fatalf("daily quote status = %d", w.Code)
	}
	var quote struct {
		Text     string `json:"text"`
		Category string `json:"category"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &quote); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if quote.Text == "" {
		t.Errorf("empty daily quote")
	}

	// Deterministic within the same day.
	w2 := doRequest(router, http.MethodGet, "/api/quotes/daily", "")
	if w.Body.String() != w2.Body.String() {
		t.Errorf("daily quote changed between calls")
	}

	w = doRequest(router, http.MethodGet, "/api/quotes/random?category=focus", "")
	if w.Code != http.StatusOK {
		t.Fatalf("random quote status = %d", w.Code)
	}
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &quote); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if quote.Category != "focus" {
		t.Errorf("filtered quote category = %q", quote.Category)
	}

	w = doRequest(router, http.MethodGet, "/api/quotes/random?category=nonsense", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown category status = %d, want 400", w.Code)
	}
}

func TestIdentityHeader(t *testing.T) {
	router := setupTestRouter(t)

	// User 7 logs a session; the demo user must not see it.
	req := httptest.NewRequest(http.MethodPost, "/api/screen-time-sessions",
		strings.NewReader(`{"category":"Games","duration":30}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}

	w2 := doRequest(router, http.MethodGet, "/api/screen-time-sessions", "")
	var sessions []json.RawMessage
	if err := json.Unmarshal(decodeEnvelope(t, w2).Data, &sessions); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("demo user sees user 7's sessions")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/screen-time-sessions", nil)
	req.Header.Set("X-User-ID", "7")
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req)
	if err := json.Unmarshal(decodeEnvelope(t, w3).Data, &sessions); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("user 7 should see 1 session, got %d", len(sessions))
	}

	// Garbage header is rejected.
	req = httptest.NewRequest(http.MethodGet, "/api/screen-time-sessions", nil)
	req.Header.Set("X-User-ID", "abc")
	w4 := httptest.NewRecorder()
	router.ServeHTTP(w4, req)
	if w4.Code != http.StatusBadRequest {
		t.Errorf("invalid header status = %d, want 400", w4.Code)
	}
}
