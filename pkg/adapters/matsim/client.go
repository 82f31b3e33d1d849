// Package matsim is a thin HTTP client for a materials-simulation sidecar
// that hosts the ML structure-energy model and the phase-diagram solver.
// The sidecar speaks plain JSON; this package implements the
// ports.EnergyPredictor and ports.HullCalculator collaborator interfaces.
package matsim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/telluric-labs/matfeas/pkg/domain"
	"github.com/telluric-labs/matfeas/pkg/ports"
)

// Default endpoint paths on the sidecar.
const (
	energyPath = "/v1/energy"
	hullPath   = "/v1/hull"
)

// Client talks to one sidecar instance. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-call timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New creates a Client for the sidecar at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.EnergyPredictor = (*Client)(nil)
var _ ports.HullCalculator = (*Client)(nil)

type energyRequest struct {
	Structure domain.CandidateStructure `json:"structure"`
}

type energyResponse struct {
	EnergyPerAtom float64 `json:"energy_per_atom"`
}

// PredictEnergyPerAtom submits the candidate structure and returns the
// model's formation-energy estimate in eV/atom. Any transport, status or
// decoding problem is returned as an error; the pipeline absorbs it into
// a failed decision, so no retries happen here.
func (c *Client) PredictEnergyPerAtom(ctx context.Context, s domain.CandidateStructure) (float64, error) {
	var resp energyResponse
	if err := c.post(ctx, energyPath, energyRequest{Structure: s}, &resp); err != nil {
		return 0, fmt.Errorf("energy prediction: %w", err)
	}
	return resp.EnergyPerAtom, nil
}

type hullRequest struct {
	Candidate ports.PhaseEntry   `json:"candidate"`
	Competing []ports.PhaseEntry `json:"competing"`
}

type hullResponse struct {
	EnergyAboveHull float64 `json:"energy_above_hull"`
}

// EnergyAboveHull submits the candidate plus its competing phases and
// returns the candidate's distance above the convex hull in eV/atom.
func (c *Client) EnergyAboveHull(ctx context.Context, candidate ports.PhaseEntry, competing []ports.PhaseEntry) (float64, error) {
	req := hullRequest{Candidate: candidate, Competing: competing}
	var resp hullResponse
	if err := c.post(ctx, hullPath, req, &resp); err != nil {
		return 0, fmt.Errorf("hull placement: %w", err)
	}
	return resp.EnergyAboveHull, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sidecar returned %s: %s", resp.Status, bytes.TrimSpace(snippet))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
