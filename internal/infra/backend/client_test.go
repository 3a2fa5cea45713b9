package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mutant-admin/internal/delivery/context"
	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	query  map[string][]string
	auth   string
	body   map[string]any
}

// newTestBackend starts a backend double that records every request and answers with respond.
func newTestBackend(t *testing.T, respond func(w http.ResponseWriter, r *http.Request)) (*Client, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			auth:   r.Header.Get("Authorization"),
		}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.body)
		}
		requests = append(requests, rec)
		respond(w, r)
	}))
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newClient(server.URL+"/", 0, logger, metrics.Noop()), &requests
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func authed(token string) context.Context {
	return deliverycontext.WithBackendToken(context.Background(), token)
}

func TestKYCList_PendingFilterWithServerPagination(t *testing.T) {
	client, requests := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":[{"_id":"k1","userId":"u1","status":"pending"},{"_id":"k2","userId":{"_id":"u2","firstName":"Ada"},"status":"pending"}],"totalPages":3}`)
	})
	repo := NewKYCRepository(client)

	page, err := repo.List(authed("tok-1"), entity.ListQuery{Status: entity.FilterPending, Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	got := (*requests)[0]
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/api/admin/kyc", got.path)
	assert.Equal(t, []string{"pending"}, got.query["status"])
	assert.Equal(t, []string{"1"}, got.query["page"])
	assert.Equal(t, []string{"10"}, got.query["limit"])
	assert.Equal(t, "Bearer tok-1", got.auth)

	assert.Equal(t, 3, page.TotalPagesOrDerived())
	require.Len(t, page.Items, 2)
	assert.Equal(t, "u1", page.Items[0].SubjectID())
	assert.Equal(t, "u2", page.Items[1].SubjectID())
	assert.True(t, page.Items[1].User.IsPopulated())
}

func TestKYCList_AllFilterOmitsStatus(t *testing.T) {
	client, requests := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[]}`)
	})
	repo := NewKYCRepository(client)

	_, err := repo.List(authed("tok"), entity.ListQuery{Status: entity.FilterAll, Page: 2, Limit: 10})
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	_, present := (*requests)[0].query["status"]
	assert.False(t, present)
	assert.Equal(t, []string{"2"}, (*requests)[0].query["page"])
}

func TestKYCList_NestedPaginationIsUsedAsFallback(t *testing.T) {
	client, _ := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[{"_id":"k1","status":"approved"}],"pagination":{"page":"2","limit":5,"total":11}}`)
	})

	page, err := NewKYCRepository(client).List(authed("tok"), entity.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 11, page.Total)
	assert.Equal(t, 3, page.TotalPagesOrDerived())
}

func TestKYCList_MalformedEnvelopeIsUnexpectedFormat(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "data is an object", body: `{"data":{"items":[]}}`},
		{name: "data missing", body: `{"success":true}`},
		{name: "not json", body: `<html>oops</html>`},
		{name: "empty", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			})

			page, err := NewKYCRepository(client).List(authed("tok"), entity.ListQuery{})
			assert.Nil(t, page)
			assert.True(t, errors.Is(err, domainerrors.ErrUnexpectedFormat), "got %v", err)
		})
	}
}

func TestKYCVerify_SendsDecisionBody(t *testing.T) {
	client, requests := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"message":"KYC approved"}`)
	})

	record, err := NewKYCRepository(client).Verify(authed("tok"), "user/1", repository.KYCVerification{
		Status:  entity.StatusRejected,
		Reason:  "blurry document",
		AdminID: "admin-1",
	})
	require.NoError(t, err)
	assert.Nil(t, record)

	require.Len(t, *requests, 1)
	got := (*requests)[0]
	assert.Equal(t, http.MethodPatch, got.method)
	assert.Equal(t, "/api/admin/kyc/verify/user/1", got.path)
	assert.Equal(t, map[string]any{"status": "rejected", "reason": "blurry document", "adminId": "admin-1"}, got.body)
}

func TestClient_BackendErrorSurfacesStatusAndMessage(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "message field", status: http.StatusConflict, body: `{"success":false,"message":"Already reviewed"}`, message: "Already reviewed"},
		{name: "error string", status: http.StatusBadRequest, body: `{"error":"Reason too short"}`, message: "Reason too short"},
		{name: "nested error", status: http.StatusNotFound, body: `{"error":{"message":"Refund not found"}}`, message: "Refund not found"},
		{name: "no body", status: http.StatusServiceUnavailable, body: ``, message: "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := NewRefundRepository(client).Reject(authed("tok"), "r1", repository.RefundDecision{Reason: "x"})
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.status, appErr.HTTPCode())
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}

func TestClient_UnauthorizedIsRecognized(t *testing.T) {
	client, requests := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"jwt expired"}`)
	})

	err := NewMissionRepository(client).Delete(context.Background(), "m1")
	assert.True(t, domainerrors.IsUnauthorized(err))

	require.Len(t, *requests, 1)
	assert.Empty(t, (*requests)[0].auth, "anonymous calls carry no bearer")
}

func TestRefund_ApproveAndRejectPaths(t *testing.T) {
	client, requests := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"_id":"r9","status":"approved"}}`)
	})
	repo := NewRefundRepository(client)

	refund, err := repo.Approve(authed("tok"), "r9", repository.RefundDecision{AdminID: "admin-1"})
	require.NoError(t, err)
	require.NotNil(t, refund)
	assert.Equal(t, entity.StatusApproved, refund.Status)

	_, err = repo.Reject(authed("tok"), "r9", repository.RefundDecision{Reason: "duplicate", AdminID: "admin-1"})
	require.NoError(t, err)

	require.Len(t, *requests, 2)
	assert.Equal(t, "/api/admin/payment/refund/r9/approve", (*requests)[0].path)
	assert.Equal(t, http.MethodPut, (*requests)[0].method)
	assert.Equal(t, "/api/admin/payment/refund/r9/reject", (*requests)[1].path)
	assert.Equal(t, "duplicate", (*requests)[1].body["reason"])
}

func TestMission_SetPublishedSendsFlag(t *testing.T) {
	client, requests := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"_id":"m1","title":"Go","isPublished":true}}`)
	})

	mission, err := NewMissionRepository(client).SetPublished(authed("tok"), "m1", true)
	require.NoError(t, err)
	require.NotNil(t, mission)
	assert.Equal(t, entity.PublicationPublished, mission.Publication)

	require.Len(t, *requests, 1)
	assert.Equal(t, "/api/admin/missions/m1/publish", (*requests)[0].path)
	assert.Equal(t, map[string]any{"isPublished": true}, (*requests)[0].body)
}

func TestUsers_ListByCollection(t *testing.T) {
	client, requests := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[{"_id":"i1","firstName":"Grace"}]`)
	})

	page, err := NewUserRepository(client).List(authed("tok"), entity.CollectionInstructors, entity.ListQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "i1", page.Items[0].ID)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "/api/admin/users/instructors", (*requests)[0].path)
}

func TestUsers_FindByIDRequiresData(t *testing.T) {
	client, _ := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true}`)
	})

	user, err := NewUserRepository(client).FindByID(authed("tok"), entity.CollectionStudents, "s1")
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnexpectedFormat))
}

func TestEarnings_PerEarnerIsNotImplemented(t *testing.T) {
	client, requests := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":{"totalEarnings":1000,"currency":"NGN"}}`)
	})
	repo := NewEarningsRepository(client)

	summary, err := repo.Platform(authed("tok"))
	require.NoError(t, err)
	assert.Equal(t, entity.SourceBackend, summary.Source)
	assert.Equal(t, 1000.0, summary.TotalEarnings)

	_, err = repo.Instructor(authed("tok"), "i1")
	assert.True(t, errors.Is(err, domainerrors.ErrNotImplemented))
	_, err = repo.Affiliate(authed("tok"), "a1")
	assert.True(t, errors.Is(err, domainerrors.ErrNotImplemented))

	assert.Len(t, *requests, 1)
}

func TestAuthGateway_LoginAcceptsNestedTokens(t *testing.T) {
	client, requests := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"accessToken":"backend-tok","refreshToken":"ref","user":{"_id":"a1","email":"admin@mutant.test","role":"admin"}}}`)
	})

	login, err := NewAuthGateway(client).Login(context.Background(), "admin@mutant.test", "secret")
	require.NoError(t, err)
	assert.Equal(t, "backend-tok", login.Token)
	assert.Equal(t, "ref", login.RefreshToken)
	require.NotNil(t, login.User)
	assert.Equal(t, entity.RoleAdmin, login.User.Role)

	assert.Equal(t, map[string]any{"email": "admin@mutant.test", "password": "secret"}, (*requests)[0].body)
}

func TestAuthGateway_LoginWithoutTokenIsUnexpected(t *testing.T) {
	client, _ := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true}`)
	})

	_, err := NewAuthGateway(client).Login(context.Background(), "a", "b")
	assert.True(t, errors.Is(err, domainerrors.ErrUnexpectedFormat))
}

func TestCoupon_ValidateWithoutDataIsValid(t *testing.T) {
	client, requests := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"message":"Coupon is valid"}`)
	})

	result, err := NewCouponRepository(client).Validate(authed("tok"), repository.CouponValidationRequest{Code: "WELCOME10"})
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "WELCOME10", result.Code)
	assert.Equal(t, "/api/coupon/validate", (*requests)[0].path)
}
