package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/janus-tools/janus-sync/internal/config"
	"github.com/janus-tools/janus-sync/internal/logger"
	"github.com/janus-tools/janus-sync/internal/utils"
	"github.com/janus-tools/janus-sync/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.Address and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.Address is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetScriptNames implements [ServerAdapter]. It GETs /api/scripts and
// returns the decoded name list.
func (h *httpServerAdapter) GetScriptNames(ctx context.Context) ([]string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/scripts")
	if err != nil {
		return nil, fmt.Errorf("get script names request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var names models.ScriptNamesResponse
	if err = json.Unmarshal(resp.Body(), &names); err != nil {
		return nil, fmt.Errorf("decode script names: %w", err)
	}

	return names.Names, nil
}

// GetScriptStates implements [ServerAdapter]. It POSTs the name list to
// /api/scripts/states and returns the decoded state descriptors.
func (h *httpServerAdapter) GetScriptStates(ctx context.Context, names []string) ([]models.ScriptState, error) {
	req := models.ScriptStatesRequest{Names: names, Length: len(names)}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/scripts/states")
	if err != nil {
		return nil, fmt.Errorf("get script states request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var states models.ScriptStatesResponse
	if err = json.Unmarshal(resp.Body(), &states); err != nil {
		return nil, fmt.Errorf("decode script states: %w", err)
	}

	return states.States, nil
}

// DownloadScript implements [ServerAdapter]. It GETs
// /api/scripts/{name} and returns a [models.Script] carrying the
// server-side source text.
func (h *httpServerAdapter) DownloadScript(ctx context.Context, name string) (models.Script, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Get("/api/scripts/{name}")
	if err != nil {
		return models.Script{}, fmt.Errorf("download script %s request: %w", name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Script{}, err
	}

	var payload models.DownloadScriptResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.Script{}, fmt.Errorf("decode script %s: %w", name, err)
	}

	return models.Script{Name: payload.Name, SourceCode: payload.SourceCode}, nil
}

// UploadScript implements [ServerAdapter]. It PUTs the local source to
// /api/scripts/{name}.
func (h *httpServerAdapter) UploadScript(ctx context.Context, script *models.Script) error {
	req := models.UploadScriptRequest{Name: script.Name, SourceCode: script.SourceCode}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("name", script.Name).
		SetBody(req).
		Put("/api/scripts/{name}")
	if err != nil {
		return fmt.Errorf("upload script %s request: %w", script.Name, err)
	}

	return mapHTTPError(resp)
}

// RunScript implements [ServerAdapter]. It POSTs to
// /api/scripts/{name}/run and returns the decoded output.
func (h *httpServerAdapter) RunScript(ctx context.Context, name string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Post("/api/scripts/{name}/run")
	if err != nil {
		return "", fmt.Errorf("run script %s request: %w", name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var result models.RunScriptResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("decode run output for %s: %w", name, err)
	}

	return result.Output, nil
}
