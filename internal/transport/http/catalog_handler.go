package http

import (
	"net/http"

	"smartmenu-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	svc service.CatalogService
	log *zap.Logger
}

func NewCatalogHandler(svc service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: log}
}

// Menu handles GET /menu, the public nested catalog.
func (h *CatalogHandler) Menu(c *gin.Context) {
	categories, err := h.svc.Menu(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]categoryResponse, len(categories))
	for i := range categories {
		out[i] = toCategoryResponse(&categories[i])
	}
	c.JSON(http.StatusOK, out)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

type categoryRequest struct {
	Name         string `json:"name" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	cat, err := h.svc.CreateCategory(c.Request.Context(), service.CategoryInput{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, toCategoryResponse(cat))
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cat, err := h.svc.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(cat))
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	list, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]categoryResponse, len(list))
	for i := range list {
		out[i] = toCategoryResponse(&list[i])
	}
	c.JSON(http.StatusOK, out)
}

type categoryPatchRequest struct {
	Name         *string `json:"name"`
	DisplayOrder *int    `json:"display_order"`
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req categoryPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	cat, err := h.svc.UpdateCategory(c.Request.Context(), id, service.CategoryPatch{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(cat))
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type productRequest struct {
	CategoryID   uuid.UUID `json:"category_id" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Description  string    `json:"description"`
	BasePrice    int64     `json:"base_price" binding:"min=0"`
	ImageURL     string    `json:"image_url"`
	IsBestSeller bool      `json:"is_best_seller"`
	IsOutOfStock bool      `json:"is_out_of_stock"`
	DisplayOrder int       `json:"display_order"`
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	p, err := h.svc.CreateProduct(c.Request.Context(), service.ProductInput{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		ImageURL:     req.ImageURL,
		IsBestSeller: req.IsBestSeller,
		IsOutOfStock: req.IsOutOfStock,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(p))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	list, err := h.svc.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]productResponse, len(list))
	for i := range list {
		out[i] = toProductResponse(&list[i])
	}
	c.JSON(http.StatusOK, out)
}

type productPatchRequest struct {
	CategoryID   *uuid.UUID `json:"category_id"`
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	BasePrice    *int64     `json:"base_price"`
	ImageURL     *string    `json:"image_url"`
	IsBestSeller *bool      `json:"is_best_seller"`
	IsOutOfStock *bool      `json:"is_out_of_stock"`
	DisplayOrder *int       `json:"display_order"`
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req productPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	p, err := h.svc.UpdateProduct(c.Request.Context(), id, service.ProductPatch{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		ImageURL:     req.ImageURL,
		IsBestSeller: req.IsBestSeller,
		IsOutOfStock: req.IsOutOfStock,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type linkOptionsRequest struct {
	OptionGroupIDs []uuid.UUID `json:"option_group_ids"`
}

func (h *CatalogHandler) LinkProductOptions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req linkOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	p, err := h.svc.LinkProductOptionGroups(c.Request.Context(), id, req.OptionGroupIDs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

type optionGroupRequest struct {
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type"`
	DisplayOrder int    `json:"display_order"`
}

func (h *CatalogHandler) CreateOptionGroup(c *gin.Context) {
	var req optionGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	in := service.OptionGroupInput{Name: req.Name, DisplayOrder: req.DisplayOrder}
	if req.Type != "" {
		typ, ok := parseSelectionType(req.Type)
		if !ok {
			badRequest(c, "type must be single_choice or multi_choice")
			return
		}
		in.Type = typ
	}
	g, err := h.svc.CreateOptionGroup(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, toOptionGroupResponse(g))
}

func (h *CatalogHandler) GetOptionGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	g, err := h.svc.GetOptionGroup(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOptionGroupResponse(g))
}

func (h *CatalogHandler) ListOptionGroups(c *gin.Context) {
	list, err := h.svc.ListOptionGroups(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]optionGroupResponse, len(list))
	for i := range list {
		out[i] = toOptionGroupResponse(&list[i])
	}
	c.JSON(http.StatusOK, out)
}

type optionGroupPatchRequest struct {
	Name         *string `json:"name"`
	Type         *string `json:"type"`
	DisplayOrder *int    `json:"display_order"`
}

func (h *CatalogHandler) UpdateOptionGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req optionGroupPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	patch := service.OptionGroupPatch{Name: req.Name, DisplayOrder: req.DisplayOrder}
	if req.Type != nil {
		typ, ok := parseSelectionType(*req.Type)
		if !ok {
			badRequest(c, "type must be single_choice or multi_choice")
			return
		}
		patch.Type = &typ
	}
	g, err := h.svc.UpdateOptionGroup(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOptionGroupResponse(g))
}

func (h *CatalogHandler) DeleteOptionGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteOptionGroup(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type optionValueRequest struct {
	Name            string `json:"name" binding:"required"`
	PriceAdjustment int64  `json:"price_adjustment"`
	IsOutOfStock    bool   `json:"is_out_of_stock"`
}

func (h *CatalogHandler) CreateOptionValue(c *gin.Context) {
	groupID, ok := pathID(c)
	if !ok {
		return
	}
	var req optionValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	v, err := h.svc.CreateOptionValue(c.Request.Context(), groupID, service.OptionValueInput{
		Name:            req.Name,
		PriceAdjustment: req.PriceAdjustment,
		IsOutOfStock:    req.IsOutOfStock,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, toOptionValueResponse(v))
}

func (h *CatalogHandler) GetOptionValue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	v, err := h.svc.GetOptionValue(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOptionValueResponse(v))
}

type optionValuePatchRequest struct {
	Name            *string `json:"name"`
	PriceAdjustment *int64  `json:"price_adjustment"`
	IsOutOfStock    *bool   `json:"is_out_of_stock"`
}

func (h *CatalogHandler) UpdateOptionValue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req optionValuePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	v, err := h.svc.UpdateOptionValue(c.Request.Context(), id, service.OptionValuePatch{
		Name:            req.Name,
		PriceAdjustment: req.PriceAdjustment,
		IsOutOfStock:    req.IsOutOfStock,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOptionValueResponse(v))
}

func (h *CatalogHandler) DeleteOptionValue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteOptionValue(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type voucherRequest struct {
	Code          string `json:"code" binding:"required"`
	Description   string `json:"description"`
	Type          string `json:"type" binding:"required"`
	Value         int64  `json:"value" binding:"min=0"`
	MinOrderValue int64  `json:"min_order_value"`
	MaxDiscount   *int64 `json:"max_discount"`
	IsActive      *bool  `json:"is_active"`
}

func (h *CatalogHandler) CreateVoucher(c *gin.Context) {
	var req voucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	typ, ok := parseVoucherType(req.Type)
	if !ok {
		badRequest(c, "type must be percentage or fixed")
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	v, err := h.svc.CreateVoucher(c.Request.Context(), service.VoucherInput{
		Code:          req.Code,
		Description:   req.Description,
		Type:          typ,
		Value:         req.Value,
		MinOrderValue: req.MinOrderValue,
		MaxDiscount:   req.MaxDiscount,
		IsActive:      active,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, toVoucherResponse(v))
}

func (h *CatalogHandler) GetVoucher(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	v, err := h.svc.GetVoucher(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toVoucherResponse(v))
}

func (h *CatalogHandler) ListVouchers(c *gin.Context) {
	list, err := h.svc.ListVouchers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]voucherResponse, len(list))
	for i := range list {
		out[i] = toVoucherResponse(&list[i])
	}
	c.JSON(http.StatusOK, out)
}

type voucherPatchRequest struct {
	Description   *string `json:"description"`
	Type          *string `json:"type"`
	Value         *int64  `json:"value"`
	MinOrderValue *int64  `json:"min_order_value"`
	MaxDiscount   *int64  `json:"max_discount"`
	IsActive      *bool   `json:"is_active"`
}

func (h *CatalogHandler) UpdateVoucher(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req voucherPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	patch := service.VoucherPatch{
		Description:   req.Description,
		Value:         req.Value,
		MinOrderValue: req.MinOrderValue,
		MaxDiscount:   req.MaxDiscount,
		IsActive:      req.IsActive,
	}
	if req.Type != nil {
		typ, ok := parseVoucherType(*req.Type)
		if !ok {
			badRequest(c, "type must be percentage or fixed")
			return
		}
		patch.Type = &typ
	}
	v, err := h.svc.UpdateVoucher(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toVoucherResponse(v))
}

func (h *CatalogHandler) DeleteVoucher(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteVoucher(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
