// Package residence serves the block, apartment and resident endpoints.
package residence

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sitedesk/sitedesk/internal/application/residence/usecases"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/constants"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

// UseCases groups the executors the handler delegates to.
type UseCases struct {
	ResolveSite     usecases.ResolveSiteExecutor
	ListBlocks      usecases.ListBlocksExecutor
	CreateBlock     usecases.CreateBlockExecutor
	UpdateBlock     usecases.UpdateBlockExecutor
	DeleteBlock     usecases.DeleteBlockExecutor
	ListApartments  usecases.ListApartmentsExecutor
	DeleteApartment usecases.DeleteApartmentExecutor
	ListResidents   usecases.ListResidentsExecutor
	GetResident     usecases.GetResidentExecutor
	CreateResident  usecases.CreateResidentExecutor
	UpdateResident  usecases.UpdateResidentExecutor
	DeleteResident  usecases.DeleteResidentExecutor
	ExportResidents usecases.ExportResidentsExecutor
}

type Handler struct {
	ucs    UseCases
	logger logger.Interface
}

func NewHandler(ucs UseCases, logger logger.Interface) *Handler {
	return &Handler{
		ucs:    ucs,
		logger: logger,
	}
}

// siteID resolves the :siteId path parameter, code or numeric id.
func (h *Handler) siteID(c *gin.Context) (uint, bool) {
	id, err := h.ucs.ResolveSite.Execute(c.Request.Context(), c.Param("siteId"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, false
	}
	return id, true
}

// optionalSiteID resolves the ?site= query parameter; zero when absent.
func (h *Handler) optionalSiteID(c *gin.Context) (uint, bool) {
	ref := strings.TrimSpace(c.Query("site"))
	if ref == "" {
		return 0, true
	}
	id, err := h.ucs.ResolveSite.Execute(c.Request.Context(), ref)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, false
	}
	return id, true
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := utils.ParseUintParam(c, name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, false
	}
	return v, true
}

// ListBlocks handles GET /sites/:siteId/blocks
func (h *Handler) ListBlocks(c *gin.Context) {
	siteID, ok := h.siteID(c)
	if !ok {
		return
	}

	result, err := h.ucs.ListBlocks.Execute(c.Request.Context(), siteID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateBlock handles POST /sites/:siteId/blocks
func (h *Handler) CreateBlock(c *gin.Context) {
	siteID, ok := h.siteID(c)
	if !ok {
		return
	}

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create block", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.ucs.CreateBlock.Execute(c.Request.Context(), req.ToCommand(siteID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Blok oluşturuldu")
}

// UpdateBlock handles PUT /blocks/:blockId
func (h *Handler) UpdateBlock(c *gin.Context) {
	blockID, ok := uintParam(c, "blockId")
	if !ok {
		return
	}
	siteID, ok := h.optionalSiteID(c)
	if !ok {
		return
	}

	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update block", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.ucs.UpdateBlock.Execute(c.Request.Context(), req.ToCommand(blockID, siteID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Blok güncellendi", result)
}

// DeleteBlock handles DELETE /blocks/:blockId
func (h *Handler) DeleteBlock(c *gin.Context) {
	blockID, ok := uintParam(c, "blockId")
	if !ok {
		return
	}
	siteID, ok := h.optionalSiteID(c)
	if !ok {
		return
	}

	cmd := usecases.DeleteBlockCommand{BlockID: blockID, SiteID: siteID}
	if err := h.ucs.DeleteBlock.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Blok silindi", nil)
}

// ListApartments handles GET /sites/:siteId/blocks/:blockId/apartments
func (h *Handler) ListApartments(c *gin.Context) {
	siteID, ok := h.siteID(c)
	if !ok {
		return
	}
	blockID, ok := uintParam(c, "blockId")
	if !ok {
		return
	}

	query := usecases.ListApartmentsQuery{SiteID: siteID, BlockID: blockID}
	result, err := h.ucs.ListApartments.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteApartment handles DELETE /sites/:siteId/apartments/:blockId/:apartmentNo
func (h *Handler) DeleteApartment(c *gin.Context) {
	siteID, ok := h.siteID(c)
	if !ok {
		return
	}
	blockID, ok := uintParam(c, "blockId")
	if !ok {
		return
	}

	cmd := usecases.DeleteApartmentCommand{
		SiteID:      siteID,
		BlockID:     blockID,
		ApartmentNo: c.Param("apartmentNo"),
	}
	if err := h.ucs.DeleteApartment.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Daire silindi", nil)
}

// ListResidents handles GET /sites/:siteId/residents
func (h *Handler) ListResidents(c *gin.Context) {
	siteID, ok := h.siteID(c)
	if !ok {
		return
	}

	result, err := h.ucs.ListResidents.Execute(c.Request.Context(), siteID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportResidents handles GET /sites/:siteId/residents/export
func (h *Handler) ExportResidents(c *gin.Context) {
	siteID, ok := h.siteID(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.ucs.ExportResidents.Execute(c.Request.Context(), siteID, &buf); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := fmt.Sprintf("sakinler-%d-%s.xlsx", siteID, biztime.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, constants.ContentTypeXLSX, buf.Bytes())
}

// CreateResident handles POST /sites/:siteId/residents
func (h *Handler) CreateResident(c *gin.Context) {
	siteID, ok := h.siteID(c)
	if !ok {
		return
	}

	var req CreateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create resident", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.ucs.CreateResident.Execute(c.Request.Context(), req.ToCommand(siteID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Sakin oluşturuldu")
}

// UpdateResident handles PUT /sites/:siteId/residents/:userId
func (h *Handler) UpdateResident(c *gin.Context) {
	siteID, ok := h.siteID(c)
	if !ok {
		return
	}
	residentID, ok := uintParam(c, "userId")
	if !ok {
		return
	}

	var req UpdateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update resident", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.ucs.UpdateResident.Execute(c.Request.Context(), req.ToCommand(siteID, residentID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Sakin güncellendi", result)
}

// GetResident handles GET /users/:userId
func (h *Handler) GetResident(c *gin.Context) {
	residentID, ok := uintParam(c, "userId")
	if !ok {
		return
	}

	result, err := h.ucs.GetResident.Execute(c.Request.Context(), residentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteResident handles DELETE /residents/:id
func (h *Handler) DeleteResident(c *gin.Context) {
	residentID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.ucs.DeleteResident.Execute(c.Request.Context(), residentID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Sakin silindi", nil)
}
