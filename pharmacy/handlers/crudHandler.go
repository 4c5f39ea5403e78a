package handlers

import (
	"Ensurance/middlewares"
	"Ensurance/pharmacy/repositories"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CrudStore is the storage surface a CRUD handler needs.
type CrudStore[T any] interface {
	Create(ctx context.Context, record *T) error
	GetByID(ctx context.Context, id int64) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id int64, record *T) error
	Delete(ctx context.Context, id int64) error
}

// CrudHandler serves a whole resource on a single path: GET returns the
// collection, GET?id= one record, POST creates, PUT replaces and DELETE
// (when enabled) removes by id.
type CrudHandler[T any] struct {
	store       CrudStore[T]
	idOf        func(*T) int64
	allowDelete bool
}

func NewCrudHandler[T any](store CrudStore[T], idOf func(*T) int64) *CrudHandler[T] {
	return &CrudHandler[T]{store: store, idOf: idOf}
}

// WithDelete enables the DELETE method for this resource.
func (h *CrudHandler[T]) WithDelete() *CrudHandler[T] {
	h.allowDelete = true
	return h
}

// Register wires the handler's methods onto the given path.
func (h *CrudHandler[T]) Register(router gin.IRoutes, path string) {
	router.GET(path, h.Get)
	router.POST(path, h.Create)
	router.PUT(path, h.Update)
	if h.allowDelete {
		router.DELETE(path, h.Delete)
	}
}

func (h *CrudHandler[T]) Get(c *gin.Context) {
	rawID, present := c.GetQuery("id")
	if !present {
		records, err := h.store.GetAll(c.Request.Context())
		if err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	record, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *CrudHandler[T]) Create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.Create(c.Request.Context(), &record); err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *CrudHandler[T]) Update(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := h.idOf(&record)
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing record id"})
		return
	}
	if err := h.store.Update(c.Request.Context(), id, &record); err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *CrudHandler[T]) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		writeStorageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeStorageError maps repository error kinds to status codes. Not
// found is a bodiless 404, conflicts are client errors, anything else is
// logged and reported as 500.
func writeStorageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, repositories.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		middlewares.HttpError(c, "storage operation failed", http.StatusInternalServerError, err)
	}
}
