package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haleralex/epcqr/internal/adapters/http/handlers"
	"github.com/Haleralex/epcqr/internal/application/usecases/payload"
)

func newPayloadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handlers.SetupValidator()

	r := gin.New()
	h := handlers.NewPayloadHandler(payload.NewGeneratePayloadUseCase(), nil)
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestGeneratePayload_Success(t *testing.T) {
	r := newPayloadRouter()

	w := postJSON(t, r, "/api/v1/payloads", map[string]any{
		"beneficiary_name": "Codeberg e.V.",
		"iban":             "DE90 8306 5408 0004 1042 42",
		"amount":           "25.00",
		"purpose":          "CHAR",
		"remittance":       "Donation",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "002", data["version"])
	assert.Equal(t, "DE90830654080004104242", data["iban"])

	payloadText, ok := data["payload"].(string)
	require.True(t, ok)
	assert.Contains(t, payloadText, "BCD\n002\n1\nSCT")
	assert.Contains(t, payloadText, "EUR25.00")

	lines, ok := data["lines"].([]any)
	require.True(t, ok)
	assert.Len(t, lines, 12)
}

func TestGeneratePayload_BindingRejectsBadIBAN(t *testing.T) {
	r := newPayloadRouter()

	w := postJSON(t, r, "/api/v1/payloads", map[string]any{
		"beneficiary_name": "Codeberg e.V.",
		"iban":             "DE90830654080004104243",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])
}

func TestGeneratePayload_MissingName(t *testing.T) {
	r := newPayloadRouter()

	w := postJSON(t, r, "/api/v1/payloads", map[string]any{
		"iban": "DE90830654080004104242",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePayload_DomainErrorIs422(t *testing.T) {
	r := newPayloadRouter()

	// Both remittance kinds at once passes binding but fails the builder.
	w := postJSON(t, r, "/api/v1/payloads", map[string]any{
		"beneficiary_name": "Codeberg e.V.",
		"iban":             "DE90830654080004104242",
		"remittance":       "Donation",
		"reference":        "RF18539007547034",
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])

	apiErr, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INVALID_FORMAT", apiErr["code"])
}

func TestGenerateImage_ReturnsPNG(t *testing.T) {
	r := newPayloadRouter()

	w := postJSON(t, r, "/api/v1/payloads/image?size=128", map[string]any{
		"beneficiary_name": "Codeberg e.V.",
		"iban":             "DE90830654080004104242",
		"amount":           "25.00",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	// PNG signature.
	require.GreaterOrEqual(t, w.Body.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, w.Body.Bytes()[:4])
}

func TestGenerateImage_RejectsBadSize(t *testing.T) {
	r := newPayloadRouter()

	for _, size := range []string{"0", "63", "1025", "huge"} {
		w := postJSON(t, r, "/api/v1/payloads/image?size="+size, map[string]any{
			"beneficiary_name": "Codeberg e.V.",
			"iban":             "DE90830654080004104242",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "size=%s", size)
	}
}
