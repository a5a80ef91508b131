package service

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/atelierpx/orthograph/internal/archive"
	"github.com/atelierpx/orthograph/internal/config"
	"github.com/atelierpx/orthograph/pkg/projection"
	"github.com/atelierpx/orthograph/pkg/style"
)

const modelJSON = `{
  "designId": "dsg-svc",
  "name": "Svc House",
  "floors": [
    {
      "index": 0,
      "zBase": 0,
      "floorHeight": 2700,
      "slab": {"thickness": 200},
      "rooms": [
        {"name": "Studio", "polygon": [{"x":0,"y":0},{"x":6000,"y":0},{"x":6000,"y":4000},{"x":0,"y":4000}]}
      ],
      "walls": [
        {"id": "ext_S", "start": {"x":0,"y":0}, "end": {"x":6000,"y":0}, "type": "external", "thickness": 300, "facade": "S"},
        {"id": "ext_N", "start": {"x":6000,"y":4000}, "end": {"x":0,"y":4000}, "type": "external", "thickness": 300, "facade": "N"}
      ]
    }
  ],
  "envelope": {"footprint": [{"x":0,"y":0},{"x":6000,"y":0},{"x":6000,"y":4000},{"x":0,"y":4000}], "height": 2700},
  "roof": {"type": "gable", "ridgeHeight": 4200, "pitch": 30}
}`

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := archive.Open(filepath.Join(t.TempDir(), "svc.db"))
	if err != nil {
		t.Fatalf("Open archive: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{ReadTimeout: 15, WriteTimeout: 30}
	return New(cfg, store, style.NewRegistry())
}

func doRequest(t *testing.T, app *fiber.App, method, url, body string) (int, string) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, rd)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(b)
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/health/live", "")
	if status != http.StatusOK || !strings.Contains(body, "alive") {
		t.Errorf("live: status %d body %q", status, body)
	}

	status, body = doRequest(t, app, http.MethodGet, "/health/ready", "")
	if status != http.StatusOK || !strings.Contains(body, "ready") {
		t.Errorf("ready: status %d body %q", status, body)
	}
}

func TestRenderPlanSVG(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/render/plan?floor=0", strings.NewReader(modelJSON))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "image/svg+xml") {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	b, _ := io.ReadAll(resp.Body)
	body := string(b)
	if !strings.HasPrefix(body, "<?xml") {
		t.Errorf("body does not start with XML declaration: %.40q", body)
	}
	for _, want := range []string{"Floor Plan", "A-100", "</svg>"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestRenderPlanBadRequests(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name string
		url  string
		body string
		want string
	}{
		{"empty body", "/v1/render/plan", "", "empty body"},
		{"bad json", "/v1/render/plan", "{", "invalid model json"},
		{"bad floor", "/v1/render/plan?floor=two", modelJSON, "floor must be an integer"},
		{"bad scale", "/v1/render/plan?scale=big", modelJSON, "scale must be a number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doRequest(t, app, http.MethodPost, tc.url, tc.body)
			if status != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", status)
			}
			if !strings.Contains(body, tc.want) {
				t.Errorf("body = %q, want %q", body, tc.want)
			}
		})
	}
}

func TestRenderElevationFacadeParam(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		param string
		want  string
	}{
		{"north", "North Elevation"},
		{"N", "North Elevation"},
		{"w", "West Elevation"},
		{"East", "East Elevation"},
	}
	for _, tc := range cases {
		t.Run(tc.param, func(t *testing.T) {
			status, body := doRequest(t, app, http.MethodPost, "/v1/render/elevation?facade="+tc.param, modelJSON)
			if status != http.StatusOK {
				t.Fatalf("status = %d, want 200", status)
			}
			if !strings.Contains(body, tc.want) {
				t.Errorf("body missing %q", tc.want)
			}
		})
	}

	status, body := doRequest(t, app, http.MethodPost, "/v1/render/elevation?facade=Q", modelJSON)
	if status != http.StatusBadRequest || !strings.Contains(body, "unknown facade") {
		t.Errorf("facade=Q: status %d body %q", status, body)
	}
}

func TestRenderSectionKinds(t *testing.T) {
	app := newTestApp(t)

	status, body := doRequest(t, app, http.MethodPost, "/v1/render/section", modelJSON)
	if status != http.StatusOK || !strings.Contains(body, "A-300") {
		t.Errorf("default kind: status %d, want longitudinal sheet", status)
	}

	status, body = doRequest(t, app, http.MethodPost, "/v1/render/section?kind=transverse", modelJSON)
	if status != http.StatusOK || !strings.Contains(body, "A-301") {
		t.Errorf("transverse: status %d, want transverse sheet", status)
	}

	status, body = doRequest(t, app, http.MethodPost, "/v1/render/section?kind=diagonal", modelJSON)
	if status != http.StatusBadRequest || !strings.Contains(body, "kind must be") {
		t.Errorf("diagonal: status %d body %q", status, body)
	}
}

func TestRenderAllAndArchive(t *testing.T) {
	app := newTestApp(t)

	status, body := doRequest(t, app, http.MethodPost, "/v1/render/all?save=1", modelJSON)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", status, body)
	}

	var got struct {
		Documents map[string]string   `json:"documents"`
		Metadata  projection.Metadata `json:"metadata"`
		ProjectID string              `json:"projectId"`
	}
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	// One storey: 2 plan keys (primary + legacy alias), 4 elevations, 2 sections.
	if len(got.Documents) != 8 {
		t.Errorf("len(documents) = %d, want 8", len(got.Documents))
	}
	if got.Metadata.DesignID != "dsg-svc" {
		t.Errorf("DesignID = %q, want dsg-svc", got.Metadata.DesignID)
	}
	if got.ProjectID == "" {
		t.Fatal("projectId missing from saved render")
	}

	status, body = doRequest(t, app, http.MethodGet, "/v1/projects/"+got.ProjectID, "")
	if status != http.StatusOK {
		t.Fatalf("get project: status = %d, want 200", status)
	}
	var rec archive.Record
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	if rec.DesignID != "dsg-svc" {
		t.Errorf("record DesignID = %q, want dsg-svc", rec.DesignID)
	}
	if len(rec.Documents) != 8 {
		t.Errorf("record documents = %d, want 8", len(rec.Documents))
	}

	status, body = doRequest(t, app, http.MethodGet, "/v1/projects", "")
	if status != http.StatusOK || !strings.Contains(body, `"count":1`) {
		t.Errorf("list: status %d body %.120q", status, body)
	}
}

func TestRenderAllWithoutSave(t *testing.T) {
	app := newTestApp(t)

	status, body := doRequest(t, app, http.MethodPost, "/v1/render/all", modelJSON)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var got map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := got["projectId"]; ok {
		t.Error("unsaved render carries projectId")
	}
	if _, ok := got["documents"]; !ok {
		t.Error("response missing documents")
	}
}

func TestGetProjectNotFound(t *testing.T) {
	app := newTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/v1/projects/nope", "")
	if status != http.StatusNotFound || !strings.Contains(body, "project not found") {
		t.Errorf("status %d body %q", status, body)
	}
}
