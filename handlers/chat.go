package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"schedula/models"
	"schedula/services/assistant"
	"schedula/utils"
)

// ChatHandler processes one natural-language scheduling message.
func ChatHandler(svc assistant.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		resp, err := svc.ProcessMessage(c.Request.Context(), req)
		if err != nil {
			logger := utils.GetLogger()
			logger.Error("failed to process chat message", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to process message",
				"An unexpected error occurred. Please try again later.")
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
