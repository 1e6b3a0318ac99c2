package payroll

import (
	"encoding/json"
	"net/http"
	"strconv"

	"erp-payroll/internal/shared/apperror"
	"erp-payroll/internal/shared/period"
	"erp-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	cache   *ViewCache
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithCache(service Service, cache *ViewCache) *Handler {
	return &Handler{service: service, cache: cache}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}
	return page, pageSize
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	var filterReq GetPayrollsFilterRequest
	if err := c.ShouldBindQuery(&filterReq); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	page, pageSize := pageParams(c)
	cacheKey := ListKey(filterReq.Period, filterReq.Status, page, pageSize)

	if payload, ok := h.cache.Get(ctx, cacheKey); ok {
		c.Data(http.StatusOK, "application/json", payload)
		return
	}

	resp, err := h.service.GetAll(ctx, filterReq)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	envelope := response.ApiEnvelope{Ok: true, Data: resp[start:end], Meta: &meta}
	if payload, marshalErr := json.Marshal(envelope); marshalErr == nil {
		h.cache.Set(ctx, cacheKey, payload)
	}

	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	ctx := c.Request.Context()
	targetID := c.Param("id")

	resp, err := h.service.GetByID(ctx, targetID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateAmounts(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req UpdatePayrollAmountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateAmounts(ctx, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	_ = h.cache.Invalidate(ctx)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkPaid(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	resp, err := h.service.MarkPaid(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	_ = h.cache.Invalidate(ctx)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) PayAllPending(c *gin.Context) {
	ctx := c.Request.Context()

	var req PayAllPendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	p, err := period.Parse(req.Period)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	count, err := h.service.PayAllPending(ctx, p)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	_ = h.cache.Invalidate(ctx)
	response.Success(c, http.StatusOK, PayAllPendingResponse{
		Period:    p.String(),
		PaidCount: count,
	}, nil)
}
