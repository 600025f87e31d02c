/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package mapcache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"smudgy/clilog"
)

// HTTPBackend is the cloud mapping service's HTTP client: bearer-token
// auth, JSON bodies, every response wrapped as {"data": ...}.
type HTTPBackend struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewHTTPBackend builds an HTTPBackend against baseURL, trimming any
// trailing slash so path joins never produce a double slash.
func NewHTTPBackend(baseURL, apiKey string) *HTTPBackend {
	return &HTTPBackend{
		client:  &http.Client{},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

func (b *HTTPBackend) do(ctx context.Context, method, path string, body, out any) error {
	url := b.baseURL + path

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("mapcache: marshal %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("mapcache: build %s %s: %w", method, path, err)
	}
	req.Header.Set("authorization", "Bearer "+b.apiKey)
	if body != nil {
		req.Header.Set("content-type", "application/json")
	}

	logInfof("mapcache: %s %s", method, url)

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("mapcache: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("mapcache: read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logErrorf("mapcache: %s %s: HTTP %d: %s", method, url, resp.StatusCode, string(respBody))
		return fmt.Errorf("mapcache: %s %s: HTTP %d: %s", method, path, resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}

	var env dataEnvelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("mapcache: parse %s %s envelope: %w", method, path, err)
	}
	if env.Data == nil {
		return fmt.Errorf("mapcache: %s %s: missing data field in response", method, path)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("mapcache: parse %s %s data: %w", method, path, err)
	}
	return nil
}

func (b *HTTPBackend) ListAreas(ctx context.Context) ([]Area, error) {
	var out []Area
	err := b.do(ctx, http.MethodGet, "/areas", nil, &out)
	return out, err
}

func (b *HTTPBackend) GetArea(ctx context.Context, id AreaID) (AreaWithDetails, error) {
	var out AreaWithDetails
	err := b.do(ctx, http.MethodGet, fmt.Sprintf("/areas/%s", id), nil, &out)
	return out, err
}

func (b *HTTPBackend) CreateArea(ctx context.Context, req CreateAreaRequest) (Area, error) {
	var out Area
	err := b.do(ctx, http.MethodPost, "/areas", req, &out)
	return out, err
}

func (b *HTTPBackend) UpdateArea(ctx context.Context, id AreaID, updates AreaUpdates) error {
	return b.do(ctx, http.MethodPut, fmt.Sprintf("/areas/%s", id), updates, nil)
}

func (b *HTTPBackend) DeleteArea(ctx context.Context, id AreaID) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/areas/%s", id), nil, nil)
}

func (b *HTTPBackend) SetAreaProperty(ctx context.Context, id AreaID, name, value string) error {
	body := map[string]string{"value": value}
	return b.do(ctx, http.MethodPut, fmt.Sprintf("/areas/%s/properties/%s", id, name), body, nil)
}

func (b *HTTPBackend) DeleteAreaProperty(ctx context.Context, id AreaID, name string) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/areas/%s/properties/%s", id, name), nil, nil)
}

func (b *HTTPBackend) UpdateRoom(ctx context.Context, key RoomKey, updates RoomUpdates) error {
	return b.do(ctx, http.MethodPut, fmt.Sprintf("/areas/%s/rooms/%d", key.AreaID, key.RoomNumber), updates, nil)
}

func (b *HTTPBackend) DeleteRoom(ctx context.Context, key RoomKey) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/areas/%s/rooms/%d", key.AreaID, key.RoomNumber), nil, nil)
}

func (b *HTTPBackend) SetRoomProperty(ctx context.Context, key RoomKey, name, value string) error {
	body := map[string]string{"value": value}
	return b.do(ctx, http.MethodPut, fmt.Sprintf("/areas/%s/rooms/%d/properties/%s", key.AreaID, key.RoomNumber, name), body, nil)
}

func (b *HTTPBackend) DeleteRoomProperty(ctx context.Context, key RoomKey, name string) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/areas/%s/rooms/%d/properties/%s", key.AreaID, key.RoomNumber, name), nil, nil)
}

func (b *HTTPBackend) CreateExit(ctx context.Context, key RoomKey, args ExitArgs) (Exit, error) {
	var out Exit
	err := b.do(ctx, http.MethodPost, fmt.Sprintf("/areas/%s/rooms/%d/exits", key.AreaID, key.RoomNumber), args, &out)
	return out, err
}

func (b *HTTPBackend) UpdateExit(ctx context.Context, areaID AreaID, exitID ExitID, updates ExitUpdates) error {
	return b.do(ctx, http.MethodPut, fmt.Sprintf("/areas/%s/exits/%s", areaID, exitID), updates, nil)
}

func (b *HTTPBackend) DeleteExit(ctx context.Context, areaID AreaID, exitID ExitID) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/areas/%s/exits/%s", areaID, exitID), nil, nil)
}

func (b *HTTPBackend) CreateLabel(ctx context.Context, areaID AreaID, args LabelArgs) (Label, error) {
	var out Label
	err := b.do(ctx, http.MethodPost, fmt.Sprintf("/areas/%s/labels", areaID), args, &out)
	return out, err
}

func (b *HTTPBackend) UpdateLabel(ctx context.Context, areaID AreaID, labelID LabelID, updates LabelUpdates) error {
	return b.do(ctx, http.MethodPut, fmt.Sprintf("/areas/%s/labels/%s", areaID, labelID), updates, nil)
}

func (b *HTTPBackend) DeleteLabel(ctx context.Context, areaID AreaID, labelID LabelID) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/areas/%s/labels/%s", areaID, labelID), nil, nil)
}

func (b *HTTPBackend) CreateShape(ctx context.Context, areaID AreaID, args ShapeArgs) (Shape, error) {
	var out Shape
	err := b.do(ctx, http.MethodPost, fmt.Sprintf("/areas/%s/shapes", areaID), args, &out)
	return out, err
}

func (b *HTTPBackend) UpdateShape(ctx context.Context, areaID AreaID, shapeID ShapeID, updates ShapeUpdates) error {
	return b.do(ctx, http.MethodPut, fmt.Sprintf("/areas/%s/shapes/%s", areaID, shapeID), updates, nil)
}

func (b *HTTPBackend) DeleteShape(ctx context.Context, areaID AreaID, shapeID ShapeID) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/areas/%s/shapes/%s", areaID, shapeID), nil, nil)
}

func logInfof(format string, args ...any) {
	if clilog.Writer != nil {
		clilog.Writer.Infof(format, args...)
	}
}

func logErrorf(format string, args ...any) {
	if clilog.Writer != nil {
		clilog.Writer.Errorf(format, args...)
	}
}
