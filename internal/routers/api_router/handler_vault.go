package api_router

import (
	"context"

	"github.com/wilove/vaulten-sync-service/internal/app"
	"github.com/wilove/vaulten-sync-service/internal/dto"
	"github.com/wilove/vaulten-sync-service/internal/middleware"
	pkgapp "github.com/wilove/vaulten-sync-service/pkg/app"
	"github.com/wilove/vaulten-sync-service/pkg/code"
	"github.com/wilove/vaulten-sync-service/pkg/convert"
	apperrors "github.com/wilove/vaulten-sync-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VaultHandler vault entry API router handler
// VaultHandler 保险库条目 API 路由处理器
// Uses App Container to inject dependencies, supports unified error handling
// 使用 App Container 注入依赖，支持统一错误处理
type VaultHandler struct {
	*Handler
}

// NewVaultHandler creates VaultHandler instance
// NewVaultHandler 创建 VaultHandler 实例
func NewVaultHandler(a *app.App) *VaultHandler {
	return &VaultHandler{
		Handler: NewHandler(a),
	}
}

// uid 解析当前认证用户，uid=0 视为认证失败
func (h *VaultHandler) uid(c *gin.Context, response *pkgapp.Response, method string) (int64, bool) {
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error(method + " err uid=0")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return 0, false
	}
	return uid, true
}

// entryID 解析路径中的条目 ID
func (h *VaultHandler) entryID(c *gin.Context, response *pkgapp.Response) (int64, bool) {
	id := convert.StrTo(c.Param("id")).MustInt64()
	if id <= 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid entry id"))
		return 0, false
	}
	return id, true
}

// Create creates a vault entry
// @Summary Create vault entry
// @Description Create a vault entry for the current user, secret fields are encrypted at rest.
// @Description 为当前用户创建保险库条目，敏感字段静态加密。
// @Tags Vault
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Accept json
// @Produce json
// @Param params body dto.EntryCreateRequest true "Create Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.EntryDTO} "Success"
// @Failure 400 {object} pkgapp.Res "Invalid Parameters"
// @Failure 401 {object} pkgapp.Res "Unauthorized"
// @Router /api/vault [post]
func (h *VaultHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntryCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("VaultHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid, ok := h.uid(c, response, "VaultHandler.Create")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	entryDTO, err := h.App.VaultService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "VaultHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(entryDTO))
}

// List lists vault entries
// @Summary List vault entries
// @Description List all vault entries of the current user with secret fields decrypted.
// @Description 列出当前用户的全部保险库条目，敏感字段已解密。
// @Tags Vault
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Produce json
// @Success 200 {object} pkgapp.Res{data=[]dto.EntryDTO} "Success"
// @Failure 401 {object} pkgapp.Res "Unauthorized"
// @Router /api/vault [get]
func (h *VaultHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid, ok := h.uid(c, response, "VaultHandler.List")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	list, err := h.App.VaultService.List(ctx, uid)
	if err != nil {
		h.logError(ctx, "VaultHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(list))
}

// Sync incremental sync
// @Summary Incremental sync
// @Description Return entries modified after the given watermark plus a fresh server watermark.
// @Description 返回给定水位之后修改的条目以及新的服务器水位。
// @Tags Vault
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Param since query int false "Last sync watermark, unix ms"
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.EntrySyncDTO} "Success"
// @Failure 401 {object} pkgapp.Res "Unauthorized"
// @Router /api/vault/sync [get]
func (h *VaultHandler) Sync(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntrySyncRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("VaultHandler.Sync.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid, ok := h.uid(c, response, "VaultHandler.Sync")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	syncDTO, err := h.App.VaultService.SyncSince(ctx, uid, params.Since)
	if err != nil {
		h.logError(ctx, "VaultHandler.Sync", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(syncDTO))
}

// Get retrieves a vault entry
// @Summary Get vault entry
// @Description Get one vault entry of the current user with secret fields decrypted.
// @Description 获取当前用户的单个保险库条目，敏感字段已解密。
// @Tags Vault
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Param id path int true "Entry ID"
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.EntryDTO} "Success"
// @Failure 401 {object} pkgapp.Res "Unauthorized / Access Denied"
// @Failure 404 {object} pkgapp.Res "Not Found"
// @Router /api/vault/{id} [get]
func (h *VaultHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid, ok := h.uid(c, response, "VaultHandler.Get")
	if !ok {
		return
	}

	id, ok := h.entryID(c, response)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	entryDTO, err := h.App.VaultService.Get(ctx, id, uid)
	if err != nil {
		h.logError(ctx, "VaultHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(entryDTO))
}

// Update updates a vault entry
// @Summary Update vault entry
// @Description Replace all mutable fields of one vault entry of the current user.
// @Description 全量替换当前用户单个保险库条目的可变字段。
// @Tags Vault
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Param id path int true "Entry ID"
// @Accept json
// @Produce json
// @Param params body dto.EntryUpdateRequest true "Update Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.EntryDTO} "Success"
// @Failure 400 {object} pkgapp.Res "Invalid Parameters"
// @Failure 401 {object} pkgapp.Res "Unauthorized / Access Denied"
// @Failure 404 {object} pkgapp.Res "Not Found"
// @Router /api/vault/{id} [put]
func (h *VaultHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntryUpdateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("VaultHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid, ok := h.uid(c, response, "VaultHandler.Update")
	if !ok {
		return
	}

	id, ok := h.entryID(c, response)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	entryDTO, err := h.App.VaultService.Update(ctx, id, uid, params)
	if err != nil {
		h.logError(ctx, "VaultHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(entryDTO))
}

// Delete deletes a vault entry
// @Summary Delete vault entry
// @Description Physically delete one vault entry of the current user.
// @Description 物理删除当前用户的单个保险库条目。
// @Tags Vault
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Param id path int true "Entry ID"
// @Produce json
// @Success 200 {object} pkgapp.Res "Success"
// @Failure 401 {object} pkgapp.Res "Unauthorized / Access Denied"
// @Failure 404 {object} pkgapp.Res "Not Found"
// @Router /api/vault/{id} [delete]
func (h *VaultHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid, ok := h.uid(c, response, "VaultHandler.Delete")
	if !ok {
		return
	}

	id, ok := h.entryID(c, response)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if err := h.App.VaultService.Delete(ctx, id, uid); err != nil {
		h.logError(ctx, "VaultHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}

// logError records error log, including Trace ID
// logError 记录错误日志，包含 Trace ID
func (h *VaultHandler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}
