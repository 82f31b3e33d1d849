package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telluric-labs/matfeas/pkg/domain"
)

type stubEngine struct {
	result *domain.FeasibilityResult
	err    error
}

func (s stubEngine) Evaluate(_ context.Context, formula string) (*domain.FeasibilityResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	r := *s.result
	r.Formula = formula
	return &r, nil
}

func (s stubEngine) KnownSystems() []string {
	return []string{"Cl-Cu", "Cl-Na"}
}

func feasibleResult() *domain.FeasibilityResult {
	return &domain.FeasibilityResult{
		Verdict: domain.VerdictFeasible,
		Decisions: []domain.Decision{
			{Name: "Stoichiometry Veto", Passed: true, Justification: "Charge neutrality achievable via assignments: Cu(+1)×1, Cl(-1)×1."},
		},
		Details: domain.StabilityDetails{
			FormationEnergyPerAtom: domain.Float64(-0.9),
			EnergyAboveHull:        domain.Float64(0.05),
		},
	}
}

func newTestHandler(t *testing.T, engine Engine, opts ...Option) http.Handler {
	t.Helper()
	handler, err := NewHandler(engine, opts...)
	require.NoError(t, err)
	return handler
}

func postJSON(handler http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestEvaluateEndpoint(t *testing.T) {
	handler := newTestHandler(t, stubEngine{result: feasibleResult()})

	t.Run("valid request", func(t *testing.T) {
		rec := postJSON(handler, "/evaluate", `{"formula":"CuCl"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var result domain.FeasibilityResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "CuCl", result.Formula)
		assert.Equal(t, domain.VerdictFeasible, result.Verdict)
		require.NotNil(t, result.Details.EnergyAboveHull)
		assert.InDelta(t, 0.05, *result.Details.EnergyAboveHull, 1e-9)
	})

	t.Run("missing formula is rejected by the schema", func(t *testing.T) {
		rec := postJSON(handler, "/evaluate", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty formula is rejected by the schema", func(t *testing.T) {
		rec := postJSON(handler, "/evaluate", `{"formula":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := postJSON(handler, "/evaluate", `{"formula":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unparseable formula maps to 400", func(t *testing.T) {
		handler := newTestHandler(t, stubEngine{err: domain.ErrParse})

		rec := postJSON(handler, "/evaluate", `{"formula":"xyz"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "no recognizable element tokens")
	})

	t.Run("unexpected engine error maps to 500", func(t *testing.T) {
		handler := newTestHandler(t, stubEngine{err: assert.AnError})

		rec := postJSON(handler, "/evaluate", `{"formula":"CuCl"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestSystemsEndpoint(t *testing.T) {
	handler := newTestHandler(t, stubEngine{result: feasibleResult()})

	req := httptest.NewRequest(http.MethodGet, "/systems", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var systems []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &systems))
	assert.Equal(t, []string{"Cl-Cu", "Cl-Na"}, systems)
}

func TestHealthz(t *testing.T) {
	handler := newTestHandler(t, stubEngine{result: feasibleResult()})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestOpenAPIDocumentServed(t *testing.T) {
	handler := newTestHandler(t, stubEngine{result: feasibleResult()})

	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi:")
	assert.Contains(t, rec.Body.String(), "/evaluate")
}

func TestMetricsEndpoint(t *testing.T) {
	t.Run("mounted when a gatherer is provided", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		handler := newTestHandler(t, stubEngine{result: feasibleResult()}, WithMetrics(registry))

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("absent by default", func(t *testing.T) {
		handler := newTestHandler(t, stubEngine{result: feasibleResult()})

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
