package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCors(t *testing.T) {
	allowed := []string{"http://localhost:3000", " https://dashboard.example.com "}

	tests := []struct {
		name       string
		method     string
		origin     string
		wantOrigin string
		wantStatus int
	}{
		{name: "origem permitida", method: http.MethodGet, origin: "http://localhost:3000", wantOrigin: "http://localhost:3000", wantStatus: http.StatusOK},
		{name: "origem com espaços na configuração", method: http.MethodGet, origin: "https://dashboard.example.com", wantOrigin: "https://dashboard.example.com", wantStatus: http.StatusOK},
		{name: "origem não permitida", method: http.MethodGet, origin: "http://evil.example.com", wantOrigin: "", wantStatus: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, origin: "http://localhost:3000", wantOrigin: "http://localhost:3000", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/transactions", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()

			Cors(allowed)(okHandler).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCors_Wildcard(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://anything.local")
	rr := httptest.NewRecorder()

	Cors([]string{"*"})(okHandler).ServeHTTP(rr, req)

	assert.Equal(t, "http://anything.local", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/pie-chart", nil))

	require.NotEmpty(t, seenID)
	assert.Equal(t, seenID, rr.Header().Get(CorrelationIDHeader))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestLoggingResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	lrw := newLoggingResponseWriter(rr)

	_, err := lrw.Write([]byte("ok"))
	require.NoError(t, err)
	lrw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, lrw.statusCode)
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal server error","code":"SRV_001"}`, rr.Body.String())
}
