package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "validação", code: ErrMissingRequiredData, wantStatus: http.StatusBadRequest},
		{name: "banco de dados", code: ErrDatabaseOperation, wantStatus: http.StatusInternalServerError},
		{name: "rota inexistente", code: ErrRouteNotFound, wantStatus: http.StatusNotFound},
		{name: "serviço externo", code: ErrExternalService, wantStatus: http.StatusBadGateway},
		{name: "código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			WriteError(rr, tt.code, "something went wrong", nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, "something went wrong", body.Error)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}
