package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/licensehub/client-admin/internal/api/metrics"
	"github.com/licensehub/client-admin/internal/core/ports"
)

// AssetHandler handles the standalone image upload and retrieval endpoints.
type AssetHandler struct {
	service ports.ClientService
	store   ports.AssetStore
}

func NewAssetHandler(service ports.ClientService, store ports.AssetStore) *AssetHandler {
	return &AssetHandler{service: service, store: store}
}

// Upload handles POST /api/upload-image. The optional oldImage form field
// names a previously stored asset to delete after the new one is persisted.
//
// @Summary      Upload a client image
// @Tags         assets
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        image     formData  file    true   "Image file (jpg, jpeg, png, gif)"
// @Param        oldImage  formData  string  false  "Stored name of the image being replaced"
// @Success      200       {object}  uploadResponse
// @Failure      400       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /api/upload-image [post]
func (h *AssetHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "no image file provided")
	}

	src, err := fh.Open()
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable image file")
	}
	defer src.Close()

	name, err := h.service.ReplaceImage(c.Request().Context(),
		ports.ImageUpload{Content: src, Filename: fh.Filename},
		c.FormValue("oldImage"),
	)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.UploadsTotal.WithLabelValues("stored").Inc()
	return c.JSON(http.StatusOK, uploadResponse{
		Message:       "image uploaded successfully",
		ImageFileName: name,
	})
}

// GetImage handles GET /api/client-image/:imageFileName. Public: client
// installations fetch their own branding image by name.
//
// @Summary      Serve a stored client image
// @Tags         assets
// @Produce      octet-stream
// @Param        imageFileName  path  string  true  "Stored image name"
// @Success      200  {file}    file
// @Failure      404  {object}  map[string]string
// @Router       /api/client-image/{imageFileName} [get]
func (h *AssetHandler) GetImage(c echo.Context) error {
	data, err := h.store.Retrieve(c.Request().Context(), c.Param("imageFileName"))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, http.DetectContentType(data), data)
}
