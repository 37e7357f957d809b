package request

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-pos/internal/models"
)

func newTestServer(t *testing.T, repo *fakeRepo, tables *fakeTables) (*httptest.Server, *recordingDispatcher) {
	t.Helper()
	dispatcher := &recordingDispatcher{}
	svc := newTestService(repo, tables, dispatcher)
	handler := NewHandler(svc, svc.logger)
	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)
	return server, dispatcher
}

func TestHandler_Create(t *testing.T) {
	repo := newFakeRepo()
	server, dispatcher := newTestServer(t, repo, &fakeTables{tables: map[int64]*models.Table{
		7: {ID: 7, TableNumber: "Masa 7"},
	}})

	body := `{"table_id":7,"request_type":"GARSON_CAĞIR"}`
	resp, err := http.Post(server.URL+"/", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	var tr models.TableRequest
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if tr.Status != models.RequestStatusPending {
		t.Errorf("status = %s, want %s", tr.Status, models.RequestStatusPending)
	}
	if len(dispatcher.published) != 1 {
		t.Errorf("publishes = %d, want 1", len(dispatcher.published))
	}
}

func TestHandler_Create_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"missing type", `{"table_id":7}`, http.StatusBadRequest},
		{"unknown table", `{"table_id":99,"request_type":"YARDIM"}`, http.StatusNotFound},
		{"malformed json", `{"table_id":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			server, _ := newTestServer(t, repo, &fakeTables{tables: map[int64]*models.Table{
				7: {ID: 7, TableNumber: "Masa 7"},
			}})

			resp, err := http.Post(server.URL+"/", "application/json", bytes.NewBufferString(tt.body))
			if err != nil {
				t.Fatalf("POST error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var payload struct {
				Message string `json:"message"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
				t.Fatalf("decode error payload: %v", err)
			}
			if payload.Message == "" {
				t.Error("expected non-empty error message")
			}
			if len(repo.requests) != 0 {
				t.Errorf("requests persisted = %d, want 0", len(repo.requests))
			}
		})
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	repo := newFakeRepo()
	server, _ := newTestServer(t, repo, &fakeTables{tables: map[int64]*models.Table{
		7: {ID: 7, TableNumber: "Masa 7"},
	}})

	createBody := `{"table_id":7,"request_type":"ŞİKAYET","message":"Yemek soğuk"}`
	createResp, err := http.Post(server.URL+"/", "application/json", bytes.NewBufferString(createBody))
	if err != nil {
		t.Fatalf("POST error = %v", err)
	}
	createResp.Body.Close()

	req, err := http.NewRequest(http.MethodPut, server.URL+"/1/status",
		bytes.NewBufferString(`{"status":"RESOLVED"}`))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var tr models.TableRequest
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if tr.Status != models.RequestStatusResolved {
		t.Errorf("status = %s, want %s", tr.Status, models.RequestStatusResolved)
	}
	if tr.ResolvedAt == nil {
		t.Error("expected resolved_at in response")
	}
}

func TestHandler_GetByID_NotFound(t *testing.T) {
	server, _ := newTestServer(t, newFakeRepo(), &fakeTables{tables: map[int64]*models.Table{}})

	resp, err := http.Get(server.URL + "/42")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}
