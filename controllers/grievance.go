package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grievance-api/config"
	"grievance-api/models"
	"grievance-api/services"
	"grievance-api/utils"
)

// GetGrievances lists all grievances, newest first. Optional query params
// `status` (enumeration value or "all") and `search` (free text) narrow the
// result in memory after the fetch, matching the dashboard's filter bar.
func GetGrievances(c *gin.Context) {
	store := services.NewGrievanceStore(config.DB)

	grievances, err := store.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	statusFilter := c.DefaultQuery("status", utils.StatusFilterAll)
	searchTerm := c.Query("search")
	filtered := utils.FilterGrievances(grievances, statusFilter, searchTerm)

	c.JSON(http.StatusOK, gin.H{
		"grievances": filtered,
		"total":      len(filtered),
	})
}

// GetGrievance returns one grievance with its attachments
func GetGrievance(c *gin.Context) {
	store := services.NewGrievanceStore(config.DB)

	grievance, err := store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"grievance": grievance,
	})
}

// UpdateGrievanceStatus is the explicit admin override: any enumeration value
// may be set, forward or backward.
func UpdateGrievanceStatus(c *gin.Context) {
	type StatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, ok := currentAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	store := services.NewGrievanceStore(config.DB)
	workflow := services.NewWorkflowService(store, services.NewReplyStore(config.DB), nil)

	id := c.Param("id")
	if err := workflow.SetStatusAsAdmin(c.Request.Context(), id, req.Status, admin); err != nil {
		respondServiceError(c, err)
		return
	}

	grievance, err := store.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Status updated successfully",
		"grievance": grievance,
	})
}

// SubmitGrievance accepts a new grievance from the public submission form.
// Attachments are pre-uploaded URLs; this API never handles file content.
func SubmitGrievance(c *gin.Context) {
	type AttachmentRequest struct {
		URL  string `json:"url" binding:"required"`
		Name string `json:"name"`
	}
	type SubmitRequest struct {
		Name        string              `json:"name" binding:"required"`
		Email       string              `json:"email" binding:"required,email"`
		Phone       *string             `json:"phone"`
		Category    string              `json:"category" binding:"required"`
		Description string              `json:"description" binding:"required"`
		Attachments []AttachmentRequest `json:"attachments"`
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.CreateGrievanceInput{
		Name:        utils.SanitizeInput(req.Name),
		Email:       utils.SanitizeInput(req.Email),
		Phone:       req.Phone,
		Category:    utils.SanitizeInput(req.Category),
		Description: utils.SanitizeInput(req.Description),
	}
	for _, att := range req.Attachments {
		input.Attachments = append(input.Attachments, models.GrievanceAttachment{
			URL:  att.URL,
			Name: att.Name,
		})
	}

	store := services.NewGrievanceStore(config.DB)
	grievance, err := store.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Grievance submitted successfully",
		"grievance": grievance,
	})
}
