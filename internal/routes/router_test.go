package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Yashwanthgowda1/backend-server/internal/config"
	"github.com/Yashwanthgowda1/backend-server/internal/middleware"
	"github.com/Yashwanthgowda1/backend-server/internal/storage"
)

func setupRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))

	return NewRouter(db, cfg)
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	return body
}

func decodeList(t *testing.T, recorder *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	return body
}

func TestEndToEndAttendanceFlow(t *testing.T) {
	r := setupRouter(t, config.Config{})

	// register an employee
	resp := doJSON(r, http.MethodPost, "/employees", map[string]string{
		"emp_id": "E1",
		"name":   "Alice",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	body := decodeBody(t, resp)
	assert.Equal(t, "E1", body["emp_id"])

	resp = doJSON(r, http.MethodGet, "/employees", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	employees := decodeList(t, resp)
	require.Len(t, employees, 1)
	assert.Equal(t, "E1", employees[0]["emp_id"])
	assert.Equal(t, "Alice", employees[0]["name"])

	// first attendance write
	resp = doJSON(r, http.MethodPost, "/attendance", map[string]string{
		"emp_id":          "E1",
		"emp_name":        "Alice",
		"attendance_type": "WFO",
		"date":            "2024-01-10",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	firstID := decodeBody(t, resp)["id"]

	resp = doJSON(r, http.MethodGet, "/attendance/E1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	records := decodeList(t, resp)
	require.Len(t, records, 1)
	assert.Equal(t, "WFO", records[0]["attendance_type"])
	assert.Equal(t, "2024-01-10", records[0]["date"])

	// same employee and date again: overwrite, not a second row
	resp = doJSON(r, http.MethodPost, "/attendance", map[string]string{
		"emp_id":          "E1",
		"emp_name":        "Alice",
		"attendance_type": "WFH",
		"date":            "2024-01-10",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, firstID, decodeBody(t, resp)["id"])

	resp = doJSON(r, http.MethodGet, "/attendance/E1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	records = decodeList(t, resp)
	require.Len(t, records, 1)
	assert.Equal(t, "WFH", records[0]["attendance_type"])
}

func TestPostEmployeeMissingFields(t *testing.T) {
	r := setupRouter(t, config.Config{})

	resp := doJSON(r, http.MethodPost, "/employees", map[string]string{"emp_id": "E1"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NotEmpty(t, decodeBody(t, resp)["error"])
}

func TestPostAttendanceMissingFields(t *testing.T) {
	r := setupRouter(t, config.Config{})

	resp := doJSON(r, http.MethodPost, "/attendance", map[string]string{
		"emp_id": "E1",
		"date":   "2024-01-10",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestFilteredAttendanceQuery(t *testing.T) {
	r := setupRouter(t, config.Config{})

	seed := []map[string]string{
		{"emp_id": "E1", "emp_name": "Alice", "attendance_type": "WFO", "date": "2024-01-10"},
		{"emp_id": "E1", "emp_name": "Alice", "attendance_type": "WFH", "date": "2024-01-11"},
		{"emp_id": "E2", "emp_name": "Bob", "attendance_type": "WFO", "date": "2024-01-12"},
	}
	for _, s := range seed {
		resp := doJSON(r, http.MethodPost, "/attendance", s)
		require.Equal(t, http.StatusOK, resp.Code)
	}

	resp := doJSON(r, http.MethodGet, "/attendance", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decodeList(t, resp), 3)

	resp = doJSON(r, http.MethodGet, "/attendance?start_date=2024-01-10&end_date=2024-01-11&attendance_type=WFH", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	records := decodeList(t, resp)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-01-11", records[0]["date"])

	resp = doJSON(r, http.MethodGet, "/attendance-range/E1/2024-01-10/2024-01-11", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decodeList(t, resp), 2)
}

func TestDeleteAttendance(t *testing.T) {
	r := setupRouter(t, config.Config{})

	resp := doJSON(r, http.MethodPost, "/attendance", map[string]string{
		"emp_id":          "E1",
		"emp_name":        "Alice",
		"attendance_type": "WFO",
		"date":            "2024-01-10",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	id := decodeBody(t, resp)["id"].(float64)

	resp = doJSON(r, http.MethodDelete, fmt.Sprintf("/attendance/%d", int(id)), nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(r, http.MethodDelete, fmt.Sprintf("/attendance/%d", int(id)), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(r, http.MethodDelete, "/attendance/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestStatsEndpoint(t *testing.T) {
	r := setupRouter(t, config.Config{})

	for _, s := range []map[string]string{
		{"emp_id": "E1", "emp_name": "Alice", "attendance_type": "WFO", "date": "2024-01-10"},
		{"emp_id": "E2", "emp_name": "Bob", "attendance_type": "WFH", "date": "2024-01-10"},
	} {
		resp := doJSON(r, http.MethodPost, "/attendance", s)
		require.Equal(t, http.StatusOK, resp.Code)
	}

	resp := doJSON(r, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["total_employees"])
	assert.Equal(t, float64(2), body["total_records"])
	assert.Equal(t, float64(1), body["wfo_count"])
	assert.Equal(t, float64(1), body["wfh_count"])
	assert.Len(t, body["attendance_by_type"], 2)
}

func TestHealthEndpoint(t *testing.T) {
	r := setupRouter(t, config.Config{})

	resp := doJSON(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	body := decodeBody(t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "connected", body["database"])
}

func TestRootBanner(t *testing.T) {
	r := setupRouter(t, config.Config{})

	resp := doJSON(r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "running", decodeBody(t, resp)["status"])
}

func TestNoRouteListsEndpoints(t *testing.T) {
	r := setupRouter(t, config.Config{})

	resp := doJSON(r, http.MethodGet, "/nope", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	body := decodeBody(t, resp)
	assert.Equal(t, "route not found", body["error"])
	assert.NotEmpty(t, body["endpoints"])
}

func TestPathPrefixVariant(t *testing.T) {
	r := setupRouter(t, config.Config{PathPrefix: "/api"})

	resp := doJSON(r, http.MethodPost, "/api/employees", map[string]string{
		"emp_id": "E1",
		"name":   "Alice",
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	// unprefixed path is unknown in this deployment
	resp = doJSON(r, http.MethodGet, "/employees", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)

	endpoints := decodeBody(t, resp)["endpoints"].([]interface{})
	require.NotEmpty(t, endpoints)
	for _, endpoint := range endpoints {
		assert.Contains(t, endpoint.(string), " /api/")
	}
}

func TestRequestIDHeader(t *testing.T) {
	r := setupRouter(t, config.Config{})

	resp := doJSON(r, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, resp.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	assert.Equal(t, "abc-123", recorder.Header().Get(middleware.RequestIDHeader))
}

func TestExportEndpoint(t *testing.T) {
	r := setupRouter(t, config.Config{})

	resp := doJSON(r, http.MethodPost, "/attendance", map[string]string{
		"emp_id":          "E1",
		"emp_name":        "Alice",
		"attendance_type": "WFO",
		"date":            "2024-01-10",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(r, http.MethodGet, "/export", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "attachment")
	assert.NotZero(t, resp.Body.Len())
}
