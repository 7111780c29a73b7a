package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/licensehub/client-admin/internal/api/metrics"
	"github.com/licensehub/client-admin/internal/core/domain"
	"github.com/licensehub/client-admin/internal/core/ports"
)

// ClientHandler handles HTTP requests for client record operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /api/clients.
//
// @Summary      List all clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Client
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Status handles GET /api/client_status/:client_name. Public: the endpoint
// exists so client installations can poll their own record by name.
//
// @Summary      Look up clients by name fragment
// @Tags         clients
// @Produce      json
// @Param        client_name  path      string  true  "Case-insensitive name fragment"
// @Success      200          {object}  searchResponse
// @Failure      404          {object}  searchResponse
// @Failure      500          {object}  map[string]string
// @Router       /api/client_status/{client_name} [get]
func (h *ClientHandler) Status(c echo.Context) error {
	fragment := c.Param("client_name")

	clients, err := h.service.SearchByName(c.Request().Context(), fragment)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, searchResponse{Success: false, Data: []domain.Client{}})
		}
		return err
	}

	return c.JSON(http.StatusOK, searchResponse{Success: true, Data: clients})
}

// Create handles POST /api/add_client.
//
// @Summary      Add a client
// @Tags         clients
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  false  "Client image (jpg, jpeg, png, gif)"
// @Success      201    {object}  clientWriteResponse
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/add_client [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientFormRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	image, closeImage, err := formImage(c)
	if err != nil {
		return err
	}
	defer closeImage()

	id, imageName, err := h.service.Create(c.Request().Context(), req.toInput(), image)
	if err != nil {
		return err
	}

	metrics.ClientWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, clientWriteResponse{
		Message:       "client added successfully",
		ClientID:      id,
		ImageFileName: imageName,
	})
}

// Update handles PUT /api/update_client.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  false  "Replacement image (jpg, jpeg, png, gif)"
// @Success      200    {object}  clientWriteResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/update_client [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	image, closeImage, err := formImage(c)
	if err != nil {
		return err
	}
	defer closeImage()

	imageName, err := h.service.Update(c.Request().Context(), *req.ClientID, req.toInput(), image)
	if err != nil {
		return err
	}

	metrics.ClientWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, clientWriteResponse{
		Message:       "client updated successfully",
		ClientID:      *req.ClientID,
		ImageFileName: imageName,
	})
}

// GetAppUpdate handles GET /api/app_update/:client_id.
//
// @Summary      Read a client's app-update flag and download link
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  path      int  true  "Client id"
// @Success      200        {object}  appUpdateResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/app_update/{client_id} [get]
func (h *ClientHandler) GetAppUpdate(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("client_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "client_id must be numeric")
	}

	info, err := h.service.GetAppUpdate(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, appUpdateResponse{
		Message:      "app update info",
		ClientID:     info.ClientID,
		AppUpdate:    info.AppUpdate,
		DownloadLink: info.DownloadLink,
	})
}

// SetAppUpdate handles POST /api/app_update.
//
// @Summary      Set a client's app-update flag and download link
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      appUpdateRequest  true  "All fields mandatory"
// @Success      200   {object}  appUpdateResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/app_update [post]
func (h *ClientHandler) SetAppUpdate(c echo.Context) error {
	var req appUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.SetAppUpdate(c.Request().Context(), *req.ClientID, *req.AppUpdate, *req.DownloadLink); err != nil {
		return err
	}

	metrics.ClientWritesTotal.WithLabelValues("app_update").Inc()
	return c.JSON(http.StatusOK, appUpdateResponse{
		Message:      "app update info saved",
		ClientID:     *req.ClientID,
		AppUpdate:    *req.AppUpdate,
		DownloadLink: *req.DownloadLink,
	})
}

// formImage extracts the optional "image" multipart file. Plain JSON requests
// and forms without the field yield a nil upload.
func formImage(c echo.Context) (*ports.ImageUpload, func(), error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, func() {}, nil
	}

	src, err := fh.Open()
	if err != nil {
		return nil, func() {}, echo.NewHTTPError(http.StatusBadRequest, "unreadable image file")
	}

	return &ports.ImageUpload{Content: src, Filename: fh.Filename}, func() { _ = src.Close() }, nil
}
