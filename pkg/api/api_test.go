package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samecodec/sameeas/pkg/archive"
	"github.com/samecodec/sameeas/pkg/assembler"
	"github.com/samecodec/sameeas/pkg/dictionary"
	"github.com/samecodec/sameeas/pkg/transcode"
)

const testArtifact = `{
	"ORGS": {"CIV": "The Civil Authorities have issued "},
	"EVENTS": {"ADR": "Administrative Message"},
	"SAME": {"20173": "Sedgwick, KS"},
	"SUBDIV": {"0": "All"}
}`

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	dict, err := dictionary.Load([]byte(testArtifact))
	require.NoError(t, err)

	dir := t.TempDir()
	tc := transcode.New("ffmpeg", dir)
	asm := assembler.New(tc, nil)

	arc, err := archive.Open(filepath.Join(dir, "test.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { arc.Close() })

	s, router := New(dict, asm, arc)
	return s, router
}

func TestHandleDecodeSuccess(t *testing.T) {
	_, router := newTestServer(t)

	body, _ := json.Marshal(map[string]string{"header": "ZCZC-CIV-ADR-020173+0100-3441707-ERN/LB-"})
	req := httptest.NewRequest(http.MethodPost, "/decode", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Administrative Message", resp["event"])
}

func TestHandleDecodeInvalidHeader(t *testing.T) {
	_, router := newTestServer(t)

	body, _ := json.Marshal(map[string]string{"header": "not-a-same-header"})
	req := httptest.NewRequest(http.MethodPost, "/decode", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleDecodeMissingBody(t *testing.T) {
	_, router := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/decode", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerateSuccess(t *testing.T) {
	_, router := newTestServer(t)
	dir := t.TempDir()

	body, _ := json.Marshal(map[string]interface{}{
		"zczc_message":   "ZCZC-TEST",
		"mode":           "DEFAULT",
		"attention_tone": false,
		"output_file":    filepath.Join(dir, "out.wav"),
	})
	req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	_, err := os.Stat(filepath.Join(dir, "out.wav"))
	assert.NoError(t, err)
}

func TestHandleGenerateInvalidMode(t *testing.T) {
	_, router := newTestServer(t)

	body, _ := json.Marshal(map[string]string{
		"zczc_message": "ZCZC-TEST",
		"mode":         "BOGUS",
	})
	req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHistoryEmpty(t *testing.T) {
	_, router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
