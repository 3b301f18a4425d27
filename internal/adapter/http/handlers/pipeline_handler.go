package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"medpipeline/internal/adapter/export"
	request "medpipeline/internal/adapter/http/dto/request"
	response "medpipeline/internal/adapter/http/dto/response"
	"medpipeline/internal/usecase"
	"medpipeline/pkg"
)

var (
	errInvalidRecordPayload = pkg.NewDomainErrorSimple("INVALID_RECORD_INPUT", "Invalid record payload", http.StatusBadRequest)
	errInvalidRecordID      = pkg.NewDomainErrorSimple("INVALID_RECORD_ID", "Invalid record id", http.StatusBadRequest)
)

// PipelineHandler handles HTTP requests for pipeline records: CRUD against
// the snapshot, snapshot refresh and the Excel export.

type PipelineHandler struct {
	usecase usecase.IPipelineUseCase
}

func NewPipelineHandler(uc usecase.IPipelineUseCase) *PipelineHandler {
	return &PipelineHandler{usecase: uc}
}

// ListRecords returns the snapshot, optionally narrowed by filters and a
// free-text search term.
func (h *PipelineHandler) ListRecords(c *gin.Context) {
	f := usecase.Filter{
		Stage:       c.Query("stage"),
		Hospital:    c.Query("hospital"),
		Product:     c.Query("product"),
		Distributor: c.Query("distributor"),
		SalesPerson: c.Query("salesPerson"),
		Query:       c.Query("q"),
	}
	records := h.usecase.List(c.Request.Context(), f)
	c.JSON(http.StatusOK, response.FromOpportunities(records))
}

func (h *PipelineHandler) GetRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidRecordID.HTTPStatus, errInvalidRecordID.ToHTTPError())
		return
	}

	record, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOpportunity(record))
}

func (h *PipelineHandler) CreateRecord(c *gin.Context) {
	var payload request.OpportunityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	record, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOpportunity(record))
}

func (h *PipelineHandler) UpdateRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidRecordID.HTTPStatus, errInvalidRecordID.ToHTTPError())
		return
	}

	var payload request.OpportunityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	record, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOpportunity(record))
}

func (h *PipelineHandler) DeleteRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidRecordID.HTTPStatus, errInvalidRecordID.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// RefreshRecords re-fetches the full record set. When the store is down the
// snapshot holds the sample fallback, and the client is told so.
func (h *PipelineHandler) RefreshRecords(c *gin.Context) {
	if err := h.usecase.Refresh(c.Request.Context()); err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": len(h.usecase.Snapshot())})
}

// ExportRecords streams the snapshot as an Excel workbook.
func (h *PipelineHandler) ExportRecords(c *gin.Context) {
	filename := "pipeline-" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := export.WriteOpportunities(c.Writer, h.usecase.Snapshot()); err != nil {
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Failed to export records", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func mapPipelineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordID),
		errors.Is(err, usecase.ErrInvalidStage),
		errors.Is(err, usecase.ErrInvalidPotentialValue),
		errors.Is(err, usecase.ErrInvalidPercentage),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidMonth):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreRejected):
		return pkg.NewDomainErrorSimple("STORE_REJECTED", "Record store rejected the change", http.StatusConflict)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return pkg.NewDomainErrorSimple("STORE_UNAVAILABLE", "Record store unavailable, sample data loaded", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
