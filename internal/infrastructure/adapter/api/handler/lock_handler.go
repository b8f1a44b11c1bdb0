package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/document-lock/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/document-lock/internal/domain/usecase/lock"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// LockHandler handles lock diagnostics and operator requests
type LockHandler struct {
	locks  usecase.LockUseCase
	clock  coreport.TimeProvider
	logger coreport.Logger
}

// NewLockHandler creates a new lock handler instance
func NewLockHandler(
	locks usecase.LockUseCase,
	clock coreport.TimeProvider,
	logger coreport.Logger,
) *LockHandler {
	return &LockHandler{
		locks:  locks,
		clock:  clock,
		logger: logger,
	}
}

// List handles GET /locks, optionally filtered by ?holder=
func (h *LockHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		locks []*entity.Lock
		err   error
	)
	if holder, ok := c.GetQuery("holder"); ok {
		locks, err = h.locks.FindByHolder(ctx, holder)
	} else {
		locks, err = h.locks.FindAll(ctx)
	}
	if err != nil {
		h.writeError(c, err, "Error listing locks")
		return
	}

	c.JSON(http.StatusOK, dto.LockListResponse{
		Locks: dto.FromLocks(locks, h.clock.Now()),
		Count: len(locks),
	})
}

// Get handles GET /locks/:id
func (h *LockHandler) Get(c *gin.Context) {
	l, err := h.locks.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Error loading lock")
		return
	}
	c.JSON(http.StatusOK, dto.FromLock(l, h.clock.Now()))
}

// Acquire handles POST /locks. Only manual locks can be taken over HTTP;
// transaction-scoped locks need a transaction in the calling process.
func (h *LockHandler) Acquire(c *gin.Context) {
	var req dto.AcquireLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	holder, err := entity.NewHolder(req.Holder)
	if err != nil {
		h.writeError(c, err, "Invalid lock holder")
		return
	}
	entries, err := dto.ToEntries(req.Entries)
	if err != nil {
		h.writeError(c, err, "Invalid lock entries")
		return
	}

	l, err := h.locks.Acquire(c.Request.Context(), holder, entity.LockKindManual, req.Reason, entries)
	if err != nil {
		h.writeError(c, err, "Error acquiring lock")
		return
	}

	c.JSON(http.StatusCreated, dto.FromLock(l, h.clock.Now()))
}

// Release handles DELETE /locks/:id
func (h *LockHandler) Release(c *gin.Context) {
	released := h.locks.ReleaseByID(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, dto.ReleaseResponse{Released: released})
}

// Conflicts handles POST /locks/conflicts
func (h *LockHandler) Conflicts(c *gin.Context) {
	var req dto.ConflictQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	holder := strings.TrimSpace(req.Holder)
	txID := strings.TrimSpace(req.TransactionID)
	if (holder == "") == (txID == "") {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Exactly one of holder and transactionId is required",
		})
		return
	}

	scope := entity.ManualScope(holder)
	if txID != "" {
		scope = entity.TransactionScope(txID)
	}

	entries, err := dto.ToEntries(req.Entries)
	if err != nil {
		h.writeError(c, err, "Invalid lock entries")
		return
	}

	conflicts, err := h.locks.FindConflicts(c.Request.Context(), scope, entries)
	if err != nil {
		h.writeError(c, err, "Error finding conflicts")
		return
	}

	c.JSON(http.StatusOK, dto.ConflictsResponse{
		Conflicts: dto.FromLocks(conflicts, h.clock.Now()),
	})
}

// writeError maps domain errors to HTTP responses
func (h *LockHandler) writeError(c *gin.Context, err error, logMessage string) {
	var conflict *lock.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, dto.ConflictErrorResponse{
			Code:      domainerr.ErrorCode(err),
			Message:   conflict.Error(),
			Conflicts: dto.FromLocks(conflict.Conflicts, h.clock.Now()),
		})
		return
	}

	statusCode := http.StatusInternalServerError
	errorMessage := "Internal server error"

	switch {
	case domainerr.IsValidationError(err):
		statusCode = http.StatusBadRequest
		errorMessage = err.Error()
	case domainerr.IsLockNotFoundError(err):
		statusCode = http.StatusNotFound
		errorMessage = "Lock not found"
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		statusCode = http.StatusServiceUnavailable
		errorMessage = "Lock store unavailable"
	}

	fields := map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	}
	if statusCode >= http.StatusInternalServerError {
		h.logger.Error(logMessage, fields)
	} else {
		h.logger.Debug(logMessage, fields)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: errorMessage,
	})
}
