package handler

import (
	"net/http"

	"travel-planner/internal/model/requestresponse"
	"travel-planner/internal/ports"
)

type AdminHandler struct {
	ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService}
}

// RemoveUser godoc
// @Summary Удаление пользователя
// @Tags Admin
// @Produce json
// @Param user_id path string true "UUID пользователя"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/admin/remove/{user_id} [delete]
func (h *AdminHandler) RemoveUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "user_id")
	if !ok {
		return
	}

	if err := h.AdminService.RemoveUser(r.Context(), userID); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: "user removed successfully"})
}

// UpdateUserStatus godoc
// @Summary Активация и деактивация пользователя
// @Tags Admin
// @Accept json
// @Produce json
// @Param user_id path string true "UUID пользователя"
// @Param body body requestresponse.UpdateUserStatusRequest true "Новый статус"
// @Success 200 {object} model.User
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/admin/update/{user_id} [put]
func (h *AdminHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "user_id")
	if !ok {
		return
	}

	var req requestresponse.UpdateUserStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if req.IsActive == nil {
		sendErrorResponse(w, http.StatusBadRequest, "is_active is required")
		return
	}

	user, err := h.AdminService.SetUserActive(r.Context(), userID, *req.IsActive)
	respond(w, r, user, err)
}

// UpdateScopes godoc
// @Summary Изменение уровней доступа пользователя
// @Description Список заменяет текущие scopes. Допустимы user, planner и admin
// @Tags Admin
// @Accept json
// @Produce json
// @Param user_id path string true "UUID пользователя"
// @Param body body requestresponse.UpdateScopesRequest true "Новые scopes"
// @Success 200 {object} model.User
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/admin/scopes/{user_id} [put]
func (h *AdminHandler) UpdateScopes(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "user_id")
	if !ok {
		return
	}

	var req requestresponse.UpdateScopesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.AdminService.UpdateScopes(r.Context(), userID, req.Scopes)
	respond(w, r, user, err)
}

// ListUsers godoc
// @Summary Все пользователи
// @Tags Admin
// @Produce json
// @Success 200 {array} model.User
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/admin/all-users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.AdminService.ListUsers(r.Context())
	respond(w, r, users, err)
}
