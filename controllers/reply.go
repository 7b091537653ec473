package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"grievance-api/config"
	"grievance-api/models"
	"grievance-api/services"
	"grievance-api/utils"
)

// GetReplies returns the communication thread for a grievance, oldest first.
func GetReplies(c *gin.Context) {
	grievanceID := c.Param("id")

	// 404 for a nonexistent grievance rather than an empty thread
	grievanceStore := services.NewGrievanceStore(config.DB)
	if _, err := grievanceStore.Get(c.Request.Context(), grievanceID); err != nil {
		respondServiceError(c, err)
		return
	}

	replyStore := services.NewReplyStore(config.DB)
	replies, err := replyStore.ListFor(c.Request.Context(), grievanceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"replies": replies,
		"total":   len(replies),
	})
}

// CreateReply appends an admin reply and applies the workflow side effect
// (Pending grievances move to In Progress). A reply that persists while the
// status update fails is reported as partial success, never as either full
// success or plain failure.
func CreateReply(c *gin.Context) {
	type ReplyRequest struct {
		Message string `json:"message" binding:"required"`
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, ok := currentAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	workflow := services.NewWorkflowService(
		services.NewGrievanceStore(config.DB),
		services.NewReplyStore(config.DB),
		services.NewMailNotifier(),
	)

	outcome, err := workflow.ReplyAsAdmin(c.Request.Context(), c.Param("id"), req.Message, admin)
	if err != nil {
		var partial *services.PartialSuccessError
		if errors.As(err, &partial) {
			c.JSON(http.StatusBadGateway, gin.H{
				"message":              "Reply saved, but the grievance status could not be updated",
				"reply":                partial.Reply,
				"status_update_failed": true,
			})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Reply sent successfully",
		"reply":          outcome.Reply,
		"status":         outcome.Status,
		"status_changed": outcome.StatusChanged,
	})
}

// CreateSubmitterReply appends a reply from the submitter side of the thread.
// Submitter replies carry no workflow side effect; only admin replies move a
// Pending grievance forward.
func CreateSubmitterReply(c *gin.Context) {
	type SubmitterReplyRequest struct {
		Message     string `json:"message" binding:"required"`
		SenderName  string `json:"sender_name" binding:"required"`
		SenderEmail string `json:"sender_email" binding:"required,email"`
	}

	var req SubmitterReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.ValidateEmail(req.SenderEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sender email"})
		return
	}

	store := services.NewReplyStore(config.DB)
	reply, err := store.Append(
		c.Request.Context(),
		c.Param("id"),
		req.Message,
		utils.SanitizeInput(req.SenderName),
		utils.SanitizeInput(req.SenderEmail),
		models.RoleSubmitter,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Reply sent successfully",
		"reply":   reply,
	})
}
