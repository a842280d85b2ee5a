package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"streamhub/internal/http-api/dto"
	"streamhub/internal/http-api/service"
)

type MediaHandler struct {
	svc service.MediaService
}

func NewMediaHandler(svc service.MediaService) *MediaHandler {
	return &MediaHandler{svc: svc}
}

func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
}

func (h *MediaHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Create)
	rg.DELETE("/:id/", h.Delete)
}

// List supports ?movie= and ?episode= filters.
func (h *MediaHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var movieID *int64
	var episode *int

	if m := c.Query("movie"); m != "" {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
			return
		}
		movieID = &id
	}
	if e := c.Query("episode"); e != "" {
		ep, err := strconv.Atoi(e)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid episode"})
			return
		}
		episode = &ep
	}

	list, err := h.svc.List(ctx, movieID, episode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *MediaHandler) Create(c *gin.Context) {
	var in dto.CreateMediaDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	model := in.ToModel()
	if err := h.svc.Create(ctx, &model); err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, model)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "media deleted"})
}
