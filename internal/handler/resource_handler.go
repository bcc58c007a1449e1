package handler

import (
	"net/http"

	"orgsite-backend/internal/services"
	"orgsite-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ResourceHandler handles the resources endpoints: multipart create and
// update with per-file retain semantics, plus list/get/delete.
type ResourceHandler struct {
	service *services.AttachmentService
}

func NewResourceHandler(service *services.AttachmentService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

func (h *ResourceHandler) List(c *gin.Context) {
	items, err := h.service.ListResources(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]httpdto.ResourceDTO, 0, len(items))
	for _, r := range items {
		out = append(out, httpdto.NewResourceDTO(r))
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(out))
}

func (h *ResourceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid resource id", "INVALID_REQUEST"))
		return
	}
	res, err := h.service.GetResource(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.NewResourceDTO(res)))
}

// Create accepts multipart form data: name, description, category and
// one or more blobs under "files".
func (h *ResourceHandler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid multipart form", "INVALID_REQUEST"))
		return
	}

	files, cleanup, err := openUploads(form.File["files"])
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("unreadable file in request", "INVALID_REQUEST"))
		return
	}
	defer cleanup()

	res, err := h.service.CreateResourceWithFiles(c.Request.Context(), services.CreateResourceInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
	}, files)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(httpdto.NewResourceWithFilesDTO(res)))
}

// Update accepts the same multipart shape plus "existing_files": the
// ids of attached files to keep. Files not listed there are deleted.
func (h *ResourceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid resource id", "INVALID_REQUEST"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid multipart form", "INVALID_REQUEST"))
		return
	}

	files, cleanup, err := openUploads(form.File["files"])
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("unreadable file in request", "INVALID_REQUEST"))
		return
	}
	defer cleanup()

	// Ids that fail to parse are dropped, like ids that match nothing.
	var retain []uuid.UUID
	for _, raw := range form.Value["existing_files"] {
		if fid, err := uuid.Parse(raw); err == nil {
			retain = append(retain, fid)
		}
	}

	res, err := h.service.UpdateResourceFiles(c.Request.Context(), id, services.UpdateResourceInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
	}, files, retain)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.NewResourceWithFilesDTO(res)))
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid resource id", "INVALID_REQUEST"))
		return
	}
	if err := h.service.DeleteResource(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "resource deleted"}))
}
