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

type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// RegisterPlanRoutes: the plan catalog is public reference data.
func (h *SubscriptionHandler) RegisterPlanRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.ListPlans)
	rg.GET("/:id/", h.GetPlan)
}

func (h *SubscriptionHandler) RegisterPlanAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.CreatePlan)
	rg.PUT("/:id/", h.UpdatePlan)
	rg.DELETE("/:id/", h.DeletePlan)
}

func (h *SubscriptionHandler) RegisterSubscriptionRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.ListSubscriptions)
	rg.POST("/", h.Subscribe)
}

func (h *SubscriptionHandler) RegisterBillingRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.ListBilling)
}

func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	plans, err := h.subscriptionService.ListPlans(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *SubscriptionHandler) GetPlan(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	plan, err := h.subscriptionService.GetPlan(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "subscription plan not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *SubscriptionHandler) CreatePlan(c *gin.Context) {
	var in dto.CreatePlanDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	plan := in.ToModel()
	if err := h.subscriptionService.CreatePlan(ctx, &plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *SubscriptionHandler) UpdatePlan(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	var in dto.UpdatePlanDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	plan, err := h.subscriptionService.GetPlan(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "subscription plan not found"})
		return
	}

	in.ApplyTo(plan)
	if err := h.subscriptionService.UpdatePlan(ctx, plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *SubscriptionHandler) DeletePlan(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.subscriptionService.DeletePlan(ctx, id); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan deleted"})
}

// ListSubscriptions returns only the caller's subscriptions.
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	subs, err := h.subscriptionService.ListSubscriptions(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateSubscriptionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	sub, err := h.subscriptionService.Subscribe(ctx, userID, req.PlanID, req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// ListBilling returns billing rows owned transitively by the caller.
func (h *SubscriptionHandler) ListBilling(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	bills, err := h.subscriptionService.ListBilling(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bills)
}
