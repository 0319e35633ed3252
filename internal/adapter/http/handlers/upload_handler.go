package handlers

import (
	"errors"
	"io"
	"net/http"

	response "swiftprints/internal/adapter/http/dto/response"
	"swiftprints/internal/stl"
	"swiftprints/internal/usecase"
	"swiftprints/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingFile = pkg.NewDomainErrorSimple("MISSING_FILE", "Multipart field 'file' is required", http.StatusBadRequest)

// UploadHandler accepts STL files for analysis.

type UploadHandler struct {
	usecase usecase.IUploadUseCase
}

func NewUploadHandler(uc usecase.IUploadUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

func (h *UploadHandler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingFile.HTTPStatus, errMissingFile.ToHTTPError())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("UPLOAD_READ_FAILED", "Could not read uploaded file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, stl.MaxFileSize+1))
	if err != nil {
		appErr := pkg.NewDomainError("UPLOAD_READ_FAILED", "Could not read uploaded file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	upload, err := h.usecase.Analyze(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUpload(upload))
}

func (h *UploadHandler) Get(c *gin.Context) {
	upload, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUpload(upload))
}

func mapUploadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFilename):
		return pkg.NewDomainErrorSimple("INVALID_FILENAME", "Only .stl files are accepted", http.StatusBadRequest)
	case errors.Is(err, stl.ErrFileTooLarge):
		return pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "STL file exceeds the size limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, stl.ErrFileTooSmall),
		errors.Is(err, stl.ErrNoTriangles),
		errors.Is(err, stl.ErrTooManyTriangles),
		errors.Is(err, stl.ErrMalformed):
		return pkg.NewDomainError("INVALID_STL", "STL file failed validation", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUploadNotFound):
		return pkg.NewDomainErrorSimple("UPLOAD_NOT_FOUND", "Upload not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("UPLOAD_FAILED", "Upload processing failed", err, http.StatusInternalServerError)
	}
}
