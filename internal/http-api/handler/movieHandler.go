package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"streamhub/internal/http-api/dto"
	"streamhub/internal/http-api/repository"
	"streamhub/internal/http-api/service"
)

type MovieHandler struct {
	svc service.MovieService
}

func NewMovieHandler(svc service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// RegisterRoutes registers the public catalog routes. Admin write routes
// are registered separately so the auth middleware only wraps those.
func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/featured/", h.Featured)
	rg.GET("/recent/", h.Recent)
	rg.GET("/:slug/", h.Get)
}

func (h *MovieHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Create)
	rg.PUT("/:slug/", h.Update)
	rg.DELETE("/:slug/", h.Delete)
}

func (h *MovieHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	f := repository.MovieFilter{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Page:     1,
		PageSize: 20,
	}

	if g := c.Query("genre"); g != "" {
		f.Genre = &g
	}
	if y := c.Query("release_year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid release_year"})
			return
		}
		f.ReleaseYear = &year
	}
	if a := c.Query("is_available"); a != "" {
		avail, err := strconv.ParseBool(a)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_available"})
			return
		}
		f.IsAvailable = &avail
	}
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			f.Page = parsed
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if parsed, err := strconv.Atoi(ps); err == nil && parsed > 0 && parsed <= 100 {
			f.PageSize = parsed
		}
	}

	list, total, err := h.svc.List(ctx, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": list,
		"pagination": gin.H{
			"page":        f.Page,
			"page_size":   f.PageSize,
			"total":       total,
			"total_pages": (total + int64(f.PageSize) - 1) / int64(f.PageSize),
		},
	})
}

func (h *MovieHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m, err := h.svc.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MovieHandler) Featured(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	movies, err := h.svc.Featured(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) Recent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	movies, err := h.svc.Recent(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) Create(c *gin.Context) {
	var in dto.CreateMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	model := in.ToModel()
	if err := h.svc.Create(ctx, &model); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, model)
}

func (h *MovieHandler) Update(c *gin.Context) {
	var in dto.UpdateMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.svc.Update(ctx, c.Param("slug"), in.ApplyTo)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *MovieHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("slug")); err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "movie deleted"})
}
