package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whitelotus.com/wms/config"
	"whitelotus.com/wms/core"
	"whitelotus.com/wms/store"
)

func newTestRouter(t *testing.T) (*Endpoint, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	svc, err := core.NewService(fs)
	require.NoError(t, err)

	ep := &Endpoint{
		Svc: svc,
		Cfg: config.Config{
			JWTSecret:       base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef")),
			TokenTTLSeconds: 3600,
		},
	}
	r := gin.New()
	Register(r, ep)
	return ep, r
}

func doJSON(r *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/auth/admin/login", `{"username":"admin","password":"password"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestAdminLogin(t *testing.T) {
	_, r := newTestRouter(t)

	adminToken(t, r)

	w := doJSON(r, http.MethodPost, "/auth/admin/login", `{"username":"admin","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/admin/login", `{"username":"admin"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	_, r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/workers", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := adminToken(t, r)
	w = doJSON(r, http.MethodGet, "/api/workers", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWorkerLifecycleOverHTTP(t *testing.T) {
	_, r := newTestRouter(t)
	token := adminToken(t, r)

	w := doJSON(r, http.MethodPost, "/api/workers", `{"name":"Tanya McQuoid","role":"General Manager"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			Worker struct {
				ID     string `json:"id"`
				QRHash string `json:"qr_hash"`
			} `json:"worker"`
			QRToken string `json:"qr_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.QRToken)
	assert.NotContains(t, w.Body.String(), `"qr_token":"`+created.Data.Worker.QRHash)

	// The QR token authenticates the worker.
	w = doJSON(r, http.MethodPost, "/auth/worker/scan", `{"token":"`+created.Data.QRToken+`"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/worker/scan", `{"token":"bogus"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Self-service attendance with the token as credential.
	w = doJSON(r, http.MethodPost, "/worker/attendance", `{"token":"`+created.Data.QRToken+`","status":"PRESENT"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/attendance", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tanya McQuoid")
}

func TestManualRecordValidation(t *testing.T) {
	_, r := newTestRouter(t)
	token := adminToken(t, r)

	w := doJSON(r, http.MethodPost, "/api/attendance/manual", `{"workerId":"ghost","date":"2024-01-10","status":"PRESENT"}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/api/attendance/manual", `{"workerId":"ghost","date":"2024-01-10","status":"SLEEPING"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBriefingDegradesWithoutAdvisor(t *testing.T) {
	_, r := newTestRouter(t)
	token := adminToken(t, r)

	w := doJSON(r, http.MethodPost, "/api/dashboard/briefing", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AI Service is temporarily unavailable")

	w = doJSON(r, http.MethodPost, "/api/assistant/chat", `{"message":"hello"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unable to connect to the White Lotus neural network")
}

func TestUpdateSettingsClearsOnlyExplicitFields(t *testing.T) {
	_, r := newTestRouter(t)
	token := adminToken(t, r)

	w := doJSON(r, http.MethodPut, "/api/settings",
		`{"storageType":"EXCEL","organizationName":"White Lotus Corp","logoUrl":"data:image/png;base64,AAAA","adminUsername":"manager"}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Omitted fields keep their stored values.
	w = doJSON(r, http.MethodPut, "/api/settings",
		`{"storageType":"EXCEL","organizationName":"White Lotus Corp"}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/settings", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"logoUrl":"data:image/png;base64,AAAA"`)
	assert.Contains(t, w.Body.String(), `"adminUsername":"manager"`)

	// Explicit empty strings clear; a cleared username reads back as the
	// default.
	w = doJSON(r, http.MethodPut, "/api/settings",
		`{"storageType":"EXCEL","organizationName":"White Lotus Corp","logoUrl":"","adminUsername":""}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/settings", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "data:image/png")
	assert.Contains(t, w.Body.String(), `"adminUsername":"admin"`)
}

func TestExportCSVDownload(t *testing.T) {
	_, r := newTestRouter(t)
	token := adminToken(t, r)

	w := doJSON(r, http.MethodGet, "/api/attendance/export.csv", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attendance_logs.csv")
	assert.True(t, strings.HasPrefix(w.Body.String(), "ID,Worker Name,Date,Check In,Check Out,Status,Notes"))
}
