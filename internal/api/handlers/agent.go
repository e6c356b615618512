package handlers

import (
	"net/http"

	"agent-distribution-backend/internal/auth"
	apperrors "agent-distribution-backend/internal/errors"
	"agent-distribution-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AgentHandler handles HTTP requests for agent operations
type AgentHandler struct {
	agentService service.AgentServiceInterface
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentService service.AgentServiceInterface) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

// CreateAgent handles POST /agents
// @Summary Create an agent
// @Tags agents
// @Accept json
// @Produce json
// @Param request body service.CreateAgentRequest true "Agent details"
// @Success 201 {object} service.AgentResponse
// @Failure 400 {object} map[string]interface{} "Validation error or duplicate email"
// @Security BearerAuth
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	operatorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agent, err := h.agentService.Create(&req, operatorID)
	if err != nil {
		if apperrors.IsAlreadyExists(err) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create agent"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": agent})
}

// ListAgents handles GET /agents
// @Summary List all agents
// @Tags agents
// @Produce json
// @Success 200 {array} service.AgentResponse
// @Security BearerAuth
// @Router /agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	agents, err := h.agentService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get agents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(agents), "data": agents})
}

// GetAgent handles GET /agents/:id
// @Summary Get an agent with its assigned items
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} service.AgentDetailResponse
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Security BearerAuth
// @Router /agents/{id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID"})
		return
	}

	agent, err := h.agentService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get agent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": agent})
}

// UpdateAgent handles PUT /agents/:id
// @Summary Update an agent
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param request body service.UpdateAgentRequest true "Fields to update"
// @Success 200 {object} service.AgentResponse
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Security BearerAuth
// @Router /agents/{id} [put]
func (h *AgentHandler) UpdateAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID"})
		return
	}

	var req service.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agent, err := h.agentService.Update(id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update agent"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": agent})
}

// DeleteAgent handles DELETE /agents/:id
// @Summary Delete an agent, clearing its item assignments
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Security BearerAuth
// @Router /agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID"})
		return
	}

	if err := h.agentService.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete agent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

// GetAgentItems handles GET /agents/:id/items
// @Summary List the items assigned to an agent
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {array} service.ItemResponse
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Security BearerAuth
// @Router /agents/{id}/items [get]
func (h *AgentHandler) GetAgentItems(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID"})
		return
	}

	items, err := h.agentService.GetItems(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get agent items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(items), "data": items})
}
