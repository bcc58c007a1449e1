package handler

import (
	"net/http"
	"strconv"

	"orgsite-backend/internal/services"
	"orgsite-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublicationHandler handles the publications endpoints. Create and
// update accept multipart form data with an optional "pdf" file.
type PublicationHandler struct {
	service *services.PublicationService
}

func NewPublicationHandler(service *services.PublicationService) *PublicationHandler {
	return &PublicationHandler{service: service}
}

func (h *PublicationHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.NewPublicationDTOs(items)))
}

func (h *PublicationHandler) Create(c *gin.Context) {
	in, pdf, cleanup, ok := h.bindForm(c)
	if !ok {
		return
	}
	defer cleanup()

	p, err := h.service.Create(c.Request.Context(), in, pdf)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(httpdto.NewPublicationDTO(p)))
}

func (h *PublicationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid publication id", "INVALID_REQUEST"))
		return
	}

	in, pdf, cleanup, ok := h.bindForm(c)
	if !ok {
		return
	}
	defer cleanup()

	p, err := h.service.Update(c.Request.Context(), id, in, pdf)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.NewPublicationDTO(p)))
}

func (h *PublicationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid publication id", "INVALID_REQUEST"))
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "publication deleted"}))
}

func (h *PublicationHandler) bindForm(c *gin.Context) (services.PublicationInput, *services.UploadedFile, func(), bool) {
	year, _ := strconv.Atoi(c.PostForm("year"))
	in := services.PublicationInput{
		Title:   c.PostForm("title"),
		Authors: c.PostForm("authors"),
		Year:    year,
	}

	fh, err := c.FormFile("pdf")
	if err != nil {
		// Absent file is fine; only a malformed part is an error.
		fh = nil
	}
	pdf, cleanup, err := openSingleUpload(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("unreadable file in request", "INVALID_REQUEST"))
		return services.PublicationInput{}, nil, func() {}, false
	}
	return in, pdf, cleanup, true
}
