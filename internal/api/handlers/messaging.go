package handlers

import (
	"errors"
	"net/http"

	apperrors "agent-distribution-backend/internal/errors"
	"agent-distribution-backend/internal/messaging"
	"agent-distribution-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MessagingHandler handles HTTP requests for the messaging channel
type MessagingHandler struct {
	dispatcher       messaging.Dispatcher
	messagingService service.MessagingServiceInterface
}

// NewMessagingHandler creates a new messaging handler
func NewMessagingHandler(dispatcher messaging.Dispatcher, messagingService service.MessagingServiceInterface) *MessagingHandler {
	return &MessagingHandler{
		dispatcher:       dispatcher,
		messagingService: messagingService,
	}
}

// Connect handles POST /whatsapp/connect
// @Summary Start the messaging session
// @Tags whatsapp
// @Produce json
// @Success 200 {object} messaging.ConnectResult
// @Security BearerAuth
// @Router /whatsapp/connect [post]
func (h *MessagingHandler) Connect(c *gin.Context) {
	result, err := h.dispatcher.Connect(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to connect", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Status handles GET /whatsapp/status
// @Summary Messaging session status
// @Tags whatsapp
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /whatsapp/status [get]
func (h *MessagingHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": h.dispatcher.Status()})
}

// Disconnect handles POST /whatsapp/disconnect
// @Summary Stop the messaging session
// @Tags whatsapp
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /whatsapp/disconnect [post]
func (h *MessagingHandler) Disconnect(c *gin.Context) {
	if err := h.dispatcher.Disconnect(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disconnect", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": messaging.StatusDisconnected})
}

type sendRequest struct {
	AgentID string `json:"agent_id" binding:"required"`
	ListID  string `json:"list_id" binding:"required"`
}

// Send handles POST /whatsapp/send
// @Summary Forward an agent's share of a list
// @Description Sends a text message and the agent's items as a CSV attachment
// @Tags whatsapp
// @Accept json
// @Produce json
// @Param request body sendRequest true "Agent and list"
// @Success 200 {object} service.SendResult
// @Failure 400 {object} map[string]interface{} "Not connected or invalid phone"
// @Failure 404 {object} map[string]interface{} "Agent or list not found"
// @Security BearerAuth
// @Router /whatsapp/send [post]
func (h *MessagingHandler) Send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agentID, err := uuid.Parse(req.AgentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID"})
		return
	}
	listID, err := uuid.Parse(req.ListID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID"})
		return
	}

	result, err := h.messagingService.SendListToAgent(c.Request.Context(), agentID, listID)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDispatcherNotConnected),
			errors.Is(err, apperrors.ErrInvalidPhoneNumber):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send data", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Data sent successfully", "data": result})
}
