package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"github.com/coinflows/frontdesk/utils"
)

// buildTestApp creates a minimal iris app with the calendar routes and the
// JWT verifier, mirroring the production wiring in main.go.
func buildTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	api := app.Party("/api", accessTokenVerifierMiddleware)
	{
		api.Get("/calendar/grid", GetCalendarGrid)
		api.Get("/calendar/timeline", GetCalendarTimeline)

		admin := api.Party("/admin", utils.AdminOnlyMiddleware)
		{
			admin.Get("/stats", AdminStats)
		}
	}
	app.Build()
	return app
}

func signTestToken(role string) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, _ := signer.Sign(utils.AccessToken{ID: 1, Role: role})
	return string(token)
}

func TestCalendarRoutesRequireToken(t *testing.T) {
	app := buildTestApp()

	for _, path := range []string{"/api/calendar/grid", "/api/calendar/timeline"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, req)
		if resp.Code == http.StatusOK {
			t.Errorf("%s: expected non-200 without token, got %d", path, resp.Code)
		}
	}
}

func TestCalendarRoutesRejectBadMonth(t *testing.T) {
	app := buildTestApp()
	token := signTestToken("admin")

	// month validation runs before any storage access
	tests := []string{
		"/api/calendar/grid?year=2023&month=13",
		"/api/calendar/grid?year=2023&month=0",
		"/api/calendar/timeline?year=2023&month=-1",
		"/api/calendar/timeline?year=0&month=12",
	}
	for _, path := range tests {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, req)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, resp.Code)
		}
	}
}

func TestAdminStatsRBAC(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken("user"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for user role, got %d", resp.Code)
	}
}
