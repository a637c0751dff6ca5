package handler

import (
	"mime"
	"net/http"
	"strings"

	"travel-planner/internal/model/requestresponse"
	"travel-planner/internal/ports"
)

const refreshTokenHeader = "refresh-token"

type AuthenticationHandler struct {
	ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// SignIn godoc
// @Summary Аутентификация пользователя
// @Description Выдает access и refresh токены. Принимает форму OAuth2 password (username, password, scope через пробел) или JSON с теми же полями
// @Tags Authentication
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param username formData string true "Имя пользователя"
// @Param password formData string true "Пароль"
// @Param scope formData string true "Запрашиваемые scopes через пробел" default(user)
// @Success 200 {object} model.TokensPair
// @Failure 400 {object} requestresponse.ErrorResponse "Пустые поля или некорректное тело"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный логин, пароль или scopes"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /v1/user/sign-in [post]
func (h *AuthenticationHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	req, ok := readSignIn(w, r)
	if !ok {
		return
	}

	if req.Username == "" || req.Password == "" {
		sendErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	tokens, err := h.AuthenticationService.Login(r.Context(), req.Username, req.Password, strings.Fields(req.Scope))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}

// NewAccessToken godoc
// @Summary Новый access токен
// @Description Выпускает новый access токен по refresh токену из заголовка refresh-token
// @Tags Authentication
// @Produce json
// @Param refresh-token header string true "Refresh токен"
// @Success 200 {object} requestresponse.AccessTokenResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный или отозванный токен"
// @Failure 401 {object} requestresponse.ErrorResponse "Токен истек или scopes отозваны"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /v1/user/new-access-token [post]
func (h *AuthenticationHandler) NewAccessToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := r.Header.Get(refreshTokenHeader)
	if refreshToken == "" {
		sendErrorResponse(w, http.StatusBadRequest, "refresh-token header is required")
		return
	}

	tokens, err := h.AuthenticationService.Refresh(r.Context(), refreshToken)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.AccessTokenResponse{
		TokenType:   tokens.TokenType,
		AccessToken: tokens.AccessToken,
	})
}

// Logout godoc
// @Summary Выход
// @Description Отзывает refresh токен из заголовка refresh-token до конца его срока жизни
// @Tags Authentication
// @Produce json
// @Param refresh-token header string true "Refresh токен"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный или уже отозванный токен"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /v1/user/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := r.Header.Get(refreshTokenHeader)
	if refreshToken == "" {
		sendErrorResponse(w, http.StatusBadRequest, "refresh-token header is required")
		return
	}

	if err := h.AuthenticationService.Logout(r.Context(), refreshToken); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: "logged out successfully"})
}

// readSignIn : форма OAuth2 или JSON, в зависимости от Content-Type
func readSignIn(w http.ResponseWriter, r *http.Request) (requestresponse.SignInRequest, bool) {
	var req requestresponse.SignInRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := decodeJSON(w, r, &req); err != nil {
			return req, false
		}
		return req, true
	}

	if err := r.ParseForm(); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid form body")
		return req, false
	}
	req.Username = r.PostForm.Get("username")
	req.Password = r.PostForm.Get("password")
	req.Scope = r.PostForm.Get("scope")
	return req, true
}
