// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/registry"
	"github.com/canonical/tenant-isolation-service/internal/types"
)

func newTestAPI(service ServiceInterface) (*API, *chi.Mux) {
	api := NewAPI(service, logging.NewNoopLogger())
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return api, mux
}

func TestAPI_Onboard(t *testing.T) {
	validBody := `{"company_name":"Acme Corp","admin_email":"admin@acme.test","tier":"premium","isolation_model":"bridge"}`

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "accepted",
			body: validBody,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().Onboard(gomock.Any(), gomock.Any()).Return(&types.Tenant{
					ID: "tenant-1", Status: types.StatusRequested,
				}, nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "malformed body",
			body:           `{"company_name":`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing company name",
			body:           `{"admin_email":"admin@acme.test","tier":"basic","isolation_model":"pool"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid email",
			body:           `{"company_name":"Acme","admin_email":"not-an-email","tier":"basic","isolation_model":"pool"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown tier",
			body:           `{"company_name":"Acme","admin_email":"admin@acme.test","tier":"platinum","isolation_model":"pool"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown isolation model",
			body:           `{"company_name":"Acme","admin_email":"admin@acme.test","tier":"basic","isolation_model":"hybrid"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate admin email",
			body: validBody,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().Onboard(gomock.Any(), gomock.Any()).Return(nil, registry.ErrDuplicateTenant)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			_, mux := newTestAPI(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.expectedStatus, rec.Body.String())
			}

			if tc.expectedStatus == http.StatusAccepted {
				var resp onboardResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("invalid response body: %v", err)
				}
				if resp.TenantID != "tenant-1" || resp.Status != types.StatusRequested {
					t.Errorf("response = %+v", resp)
				}
			}
		})
	}
}

func TestAPI_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().GetStatus(gomock.Any(), "tenant-1").Return(&TenantStatus{
		TenantID:       "tenant-1",
		Status:         types.StatusFailed,
		IsolationModel: types.ModelSilo,
		FailedStep:     "allocate_network",
		LastError:      "network allocation refused",
	}, nil)

	_, mux := newTestAPI(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1/status", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var status TenantStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if status.FailedStep != "allocate_network" {
		t.Errorf("FailedStep = %q", status.FailedStep)
	}
}

func TestAPI_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().ListTenants(gomock.Any(), int64(3), int64(25)).Return([]*TenantStatus{
		{TenantID: "tenant-1", Status: types.StatusActive, IsolationModel: types.ModelPool},
	}, nil)

	_, mux := newTestAPI(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants?page=3&size=25", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var statuses []TenantStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &statuses); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(statuses) != 1 || statuses[0].TenantID != "tenant-1" {
		t.Errorf("unexpected body: %+v", statuses)
	}
}

func TestAPI_Status_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().GetStatus(gomock.Any(), "ghost").Return(nil, registry.ErrNotFound)

	_, mux := newTestAPI(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/ghost/status", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestAPI_Lifecycle(t *testing.T) {
	testCases := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "suspend",
			method: http.MethodPost,
			path:   "/api/v0/tenants/tenant-1/suspend",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().Suspend(gomock.Any(), "tenant-1").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "suspend a non-active tenant",
			method: http.MethodPost,
			path:   "/api/v0/tenants/tenant-1/suspend",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().Suspend(gomock.Any(), "tenant-1").Return(registry.ErrInvalidTransition)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "reactivate",
			method: http.MethodPost,
			path:   "/api/v0/tenants/tenant-1/reactivate",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().Reactivate(gomock.Any(), "tenant-1").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "change tier",
			method: http.MethodPatch,
			path:   "/api/v0/tenants/tenant-1/tier",
			body:   `{"tier":"enterprise"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().ChangeTier(gomock.Any(), "tenant-1", types.TierEnterprise).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "change tier rejects unknown tier",
			method:         http.MethodPatch,
			path:           "/api/v0/tenants/tenant-1/tier",
			body:           `{"tier":"platinum"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "offboard",
			method: http.MethodDelete,
			path:   "/api/v0/tenants/tenant-1",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().Offboard(gomock.Any(), "tenant-1").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "offboard twice",
			method: http.MethodDelete,
			path:   "/api/v0/tenants/tenant-1",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().Offboard(gomock.Any(), "tenant-1").Return(registry.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			_, mux := newTestAPI(mockService)

			var body *strings.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tc.method, tc.path, body)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.expectedStatus, rec.Body.String())
			}
		})
	}
}
