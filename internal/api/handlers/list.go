package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"agent-distribution-backend/internal/auth"
	apperrors "agent-distribution-backend/internal/errors"
	"agent-distribution-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// allowed upload extensions, matched case-insensitively
var allowedExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// ListHandler handles HTTP requests for list uploads and records
type ListHandler struct {
	uploadService service.UploadServiceInterface
	maxBytes      int64
}

// NewListHandler creates a new list handler
func NewListHandler(uploadService service.UploadServiceInterface, maxBytes int64) *ListHandler {
	return &ListHandler{
		uploadService: uploadService,
		maxBytes:      maxBytes,
	}
}

// UploadList handles POST /lists/upload
// @Summary Upload and distribute a contact list
// @Description Accepts one CSV/XLSX/XLS file part named "file", parses it and splits the rows across active agents
// @Tags lists
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Contact list"
// @Success 200 {object} service.UploadResult
// @Failure 400 {object} map[string]interface{} "Missing file, wrong type or too large"
// @Failure 500 {object} map[string]interface{} "Processing failure; the batch is left in failed state"
// @Security BearerAuth
// @Router /lists/upload [post]
func (h *ListHandler) UploadList(c *gin.Context) {
	operatorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingFile.Error()})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrUnsupportedFileType.Error()})
		return
	}
	if fileHeader.Size > h.maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrFileTooLarge.Error()})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer src.Close()

	// The size cap was checked above, the limit here guards a lying
	// Content-Length.
	data, err := io.ReadAll(io.LimitReader(src, h.maxBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	if int64(len(data)) > h.maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrFileTooLarge.Error()})
		return
	}

	storedName := fmt.Sprintf("file-%s%s", uuid.New(), ext)
	result, err := h.uploadService.ProcessUpload(storedName, fileHeader.Filename, data, ext, operatorID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperrors.ErrNoValidItems) || errors.Is(err, apperrors.ErrInsufficientAgents) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"uploadId":   result.UploadID,
			"itemCount":  result.ItemCount,
			"agentCount": result.AgentCount,
		},
	})
}

// ListRecords handles GET /lists
// @Summary List all upload records
// @Tags lists
// @Produce json
// @Success 200 {array} service.UploadRecordResponse
// @Security BearerAuth
// @Router /lists [get]
func (h *ListHandler) ListRecords(c *gin.Context) {
	records, err := h.uploadService.GetRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get upload records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(records), "data": records})
}

// UploadHistory handles GET /lists/uploads
// @Summary Upload history, newest first
// @Tags lists
// @Produce json
// @Success 200 {array} service.UploadRecordResponse
// @Security BearerAuth
// @Router /lists/uploads [get]
func (h *ListHandler) UploadHistory(c *gin.Context) {
	uploads, err := h.uploadService.GetRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get upload history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(uploads), "data": uploads})
}

// GetRecord handles GET /lists/:id
// @Summary Get one upload record
// @Tags lists
// @Produce json
// @Param id path string true "Upload ID"
// @Success 200 {object} service.UploadRecordResponse
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Security BearerAuth
// @Router /lists/{id} [get]
func (h *ListHandler) GetRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload ID"})
		return
	}

	record, err := h.uploadService.GetRecordByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get upload record"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

// GetRecordItems handles GET /lists/:id/items
// @Summary List the items of an upload record
// @Tags lists
// @Produce json
// @Param id path string true "Upload ID"
// @Success 200 {array} service.ItemResponse
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Security BearerAuth
// @Router /lists/{id}/items [get]
func (h *ListHandler) GetRecordItems(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload ID"})
		return
	}

	items, err := h.uploadService.GetItems(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(items), "data": items})
}

// GetSummary handles GET /lists/summary
// @Summary Condensed upload history
// @Tags lists
// @Produce json
// @Success 200 {array} service.SummaryEntry
// @Security BearerAuth
// @Router /lists/summary [get]
func (h *ListHandler) GetSummary(c *gin.Context) {
	summary, err := h.uploadService.GetSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(summary), "data": summary})
}

// DownloadList handles GET /lists/download/:id
// @Summary Download a batch as a spreadsheet
// @Description Regenerates an xlsx with columns First Name, Phone, Notes, Assigned To
// @Tags lists
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Upload ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Security BearerAuth
// @Router /lists/download/{id} [get]
func (h *ListHandler) DownloadList(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload ID"})
		return
	}

	download, err := h.uploadService.BuildDownload(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build download"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.FileName))
	c.Data(http.StatusOK, download.ContentType, download.Data)
}
