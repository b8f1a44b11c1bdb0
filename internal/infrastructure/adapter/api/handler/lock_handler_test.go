package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	"github.com/amirhossein-jamali/document-lock/internal/domain/usecase/lock"
	"github.com/amirhossein-jamali/document-lock/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/id"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/memory"
	timeadapter "github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/time"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router      *gin.Engine
	coordinator *lock.Coordinator
}

func newTestServer(t *testing.T, store Pinger) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	clock := timeadapter.NewRealTimeProvider()
	uow := memory.NewUnitOfWork(memory.NewStore(), log)
	ids := id.NewUUIDGenerator()
	tm := transaction.NewTransactionManager(uow, ids, log)
	coordinator := lock.NewCoordinator(uow, tm, lock.NewRegistry(), ids, clock, log, nil, lock.DefaultConfig())

	h := NewLockHandler(coordinator, clock, log)
	health := NewHealthHandler(store, "memory", coordinator.Registry().Len, log)

	router := gin.New()
	router.GET("/health", health.Health)
	router.GET("/locks", h.List)
	router.POST("/locks", h.Acquire)
	router.POST("/locks/conflicts", h.Conflicts)
	router.GET("/locks/:id", h.Get)
	router.DELETE("/locks/:id", h.Release)

	return &testServer{router: router, coordinator: coordinator}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func acquireBody(holder string, ids ...string) dto.AcquireLockRequest {
	req := dto.AcquireLockRequest{Holder: holder, Reason: "editing"}
	for _, id := range ids {
		req.Entries = append(req.Entries, dto.LockEntryDTO{DocumentID: id, DocumentType: "description"})
	}
	return req
}

func TestLockHandler_AcquireAndConflict(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/locks", acquireBody("konrad", "DESC-1"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.LockResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "konrad", created.Holder)
	assert.Equal(t, "manual", created.Kind)
	assert.NotEmpty(t, created.ID)

	w = s.do(t, http.MethodPost, "/locks", acquireBody("michael", "DESC-1"))
	require.Equal(t, http.StatusConflict, w.Code)

	var conflict dto.ConflictErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conflict))
	assert.Equal(t, domainerr.CodeLockConflict, conflict.Code)
	require.Len(t, conflict.Conflicts, 1)
	assert.Equal(t, created.ID, conflict.Conflicts[0].ID)
	assert.Equal(t, "konrad", conflict.Conflicts[0].Holder)
	assert.Contains(t, conflict.Message, "konrad")
}

func TestLockHandler_AcquireValidation(t *testing.T) {
	s := newTestServer(t, nil)

	testCases := []struct {
		name string
		body any
		code int
	}{
		{"Missing entries", dto.AcquireLockRequest{Holder: "konrad"}, domainerr.CodeInvalidRequest},
		{"Missing holder", acquireBody("", "DESC-1"), domainerr.CodeInvalidRequest},
		{"Blank holder", acquireBody("   ", "DESC-1"), domainerr.CodeInvalidHolder},
		{"Blank document id", acquireBody("konrad", "  "), domainerr.CodeInvalidLockEntry},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/locks", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.code, resp.Code)
		})
	}
}

func TestLockHandler_ListGetRelease(t *testing.T) {
	s := newTestServer(t, nil)
	ctx := context.Background()

	held, err := s.coordinator.Acquire(ctx, entity.Holder{Name: "konrad"}, entity.LockKindManual, "editing",
		[]entity.LockEntry{{DocumentID: "DESC-1", DocumentType: entity.DocumentTypeDescription}})
	require.NoError(t, err)
	_, err = s.coordinator.Acquire(ctx, entity.Holder{Name: "michael"}, entity.LockKindManual, "editing",
		[]entity.LockEntry{{DocumentID: "DESC-2", DocumentType: entity.DocumentTypeDescription}})
	require.NoError(t, err)

	w := s.do(t, http.MethodGet, "/locks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list dto.LockListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Count)

	w = s.do(t, http.MethodGet, "/locks?holder=konrad", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, held.ID, list.Locks[0].ID)

	w = s.do(t, http.MethodGet, "/locks/"+held.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, "/locks/"+held.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var released dto.ReleaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &released))
	assert.True(t, released.Released)

	w = s.do(t, http.MethodDelete, "/locks/"+held.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &released))
	assert.False(t, released.Released, "second release is a no-op")

	w = s.do(t, http.MethodGet, "/locks/"+held.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var notFound dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notFound))
	assert.Equal(t, domainerr.CodeLockNotFound, notFound.Code)
}

func TestLockHandler_Conflicts(t *testing.T) {
	s := newTestServer(t, nil)
	ctx := context.Background()

	_, err := s.coordinator.Acquire(ctx, entity.Holder{Name: "konrad"}, entity.LockKindManual, "editing",
		[]entity.LockEntry{{DocumentID: "DESC-1", DocumentType: entity.DocumentTypeDescription}})
	require.NoError(t, err)

	entries := []dto.LockEntryDTO{{DocumentID: "DESC-1", DocumentType: "description"}}

	w := s.do(t, http.MethodPost, "/locks/conflicts", dto.ConflictQueryRequest{Holder: "michael", Entries: entries})
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ConflictsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Conflicts, 1)

	w = s.do(t, http.MethodPost, "/locks/conflicts", dto.ConflictQueryRequest{Holder: "konrad", Entries: entries})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Conflicts)

	w = s.do(t, http.MethodPost, "/locks/conflicts", dto.ConflictQueryRequest{TransactionID: "tx-1", Entries: entries})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Conflicts, "manual locks do not conflict with transactions")

	w = s.do(t, http.MethodPost, "/locks/conflicts", dto.ConflictQueryRequest{Holder: "a", TransactionID: "b", Entries: entries})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 0, health.ArmedAdapters)

	down := newTestServer(t, pingerFunc(func(context.Context) error {
		return errors.New("connection refused")
	}))
	w = down.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLockResponse_Since(t *testing.T) {
	now := time.Now()
	resp := dto.FromLock(&entity.Lock{
		ID:        "x",
		Kind:      entity.LockKindManual,
		Holder:    entity.Holder{Name: "konrad"},
		StartedAt: now.Add(-2 * time.Hour),
	}, now)
	assert.Equal(t, "2 hours ago", resp.Since)
}
