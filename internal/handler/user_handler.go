package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"travel-planner/internal/apperror"
	"travel-planner/internal/logging"
	"travel-planner/internal/model"
	"travel-planner/internal/model/requestresponse"
	"travel-planner/internal/ports"
	"travel-planner/internal/security"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxMultipartMemory : остаток формы сверх лимита пишется во временные файлы
const maxMultipartMemory = 16 << 20

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// SignUp godoc
// @Summary Регистрация нового пользователя
// @Description Создает активного пользователя со scope user и отправляет приветственное письмо
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.SignUpRequest true "Тело запроса"
// @Success 201 {object} requestresponse.SignUpResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректные поля или пользователь уже существует"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /v1/user/sign-up [post]
func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.SignUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.UserService.SignUp(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, requestresponse.SignUpResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// UpdateName godoc
// @Summary Смена имени пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.UpdateNameRequest true "Новое имя"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/user/update-name [patch]
func (h *UserHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UpdateNameRequest
	h.withUserBody(w, r, &req, func(user *model.User) error {
		return h.UserService.UpdateUsername(r.Context(), user, req.Username)
	}, "username updated successfully")
}

// UpdatePassword godoc
// @Summary Смена пароля
// @Description Пароль не короче 6 символов, с цифрой и заглавной буквой
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.UpdatePasswordRequest true "Новый пароль"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/user/update-password [patch]
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UpdatePasswordRequest
	h.withUserBody(w, r, &req, func(user *model.User) error {
		return h.UserService.UpdatePassword(r.Context(), user, req.Password, req.ConfirmPassword)
	}, "password updated successfully")
}

// UpdateEmail godoc
// @Summary Смена email
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.UpdateEmailRequest true "Новый email"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/user/update-email [patch]
func (h *UserHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UpdateEmailRequest
	h.withUserBody(w, r, &req, func(user *model.User) error {
		return h.UserService.UpdateEmail(r.Context(), user, req.Email)
	}, "email updated successfully")
}

// UpdatePhoneNumber godoc
// @Summary Смена номера телефона
// @Description Номер в формате E.164
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.UpdatePhoneNumberRequest true "Новый номер"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/user/update-phone-number [patch]
func (h *UserHandler) UpdatePhoneNumber(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UpdatePhoneNumberRequest
	h.withUserBody(w, r, &req, func(user *model.User) error {
		return h.UserService.UpdatePhoneNumber(r.Context(), user, req.PhoneNumber)
	}, "phone number updated successfully")
}

// UpdateDateOfBirth godoc
// @Summary Смена даты рождения
// @Description Дата в формате YYYY-MM-DD
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.UpdateDateOfBirthRequest true "Дата рождения"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/user/update-date-of-birth [patch]
func (h *UserHandler) UpdateDateOfBirth(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UpdateDateOfBirthRequest
	h.withUserBody(w, r, &req, func(user *model.User) error {
		return h.UserService.UpdateDateOfBirth(r.Context(), user, req.DateOfBirth)
	}, "date of birth updated successfully")
}

// UpdateProfilePicture godoc
// @Summary Загрузка фото профиля
// @Description jpeg, jpg или png, без двойного расширения. Старое фото удаляется
// @Tags Users
// @Accept mpfd
// @Produce json
// @Param file formData file true "Изображение"
// @Success 200 {object} requestresponse.ProfilePictureResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/user/update-profile-picture [patch]
func (h *UserHandler) UpdateProfilePicture(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		sendErrorResponse(w, http.StatusBadRequest, "file is required")
		return
	}

	upload, err := readUpload(files[0])
	if err != nil {
		respondError(w, r, err)
		return
	}

	url, err := h.UserService.UpdateProfilePicture(r.Context(), user, upload)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.ProfilePictureResponse{ProfilePicture: url})
}

// DeleteProfilePicture godoc
// @Summary Удаление фото профиля
// @Tags Users
// @Produce json
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Фото профиля не загружено"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/user/delete-profile-picture [delete]
func (h *UserHandler) DeleteProfilePicture(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, func(user *model.User) error {
		return h.UserService.DeleteProfilePicture(r.Context(), user)
	}, "profile picture deleted successfully")
}

// Profile godoc
// @Summary Профиль текущего пользователя
// @Description Ссылка на фото профиля подписана и действует ограниченное время
// @Tags Users
// @Produce json
// @Success 200 {object} requestresponse.ProfileResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/user/profile [get]
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.UserService.Profile(r.Context(), user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// ProfileImage godoc
// @Summary Фото профиля
// @Description Отдает изображение из хранилища потоком
// @Tags Users
// @Produce png,jpeg
// @Success 200 {file} binary
// @Failure 400 {object} requestresponse.ErrorResponse "Фото профиля не загружено"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/user/profile-image [get]
func (h *UserHandler) ProfileImage(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	image, err := h.UserService.ProfileImage(r.Context(), user)
	if err != nil {
		respondError(w, r, err)
		return
	}
	defer image.Body.Close()

	w.Header().Set("Content-Type", image.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, image.Body); err != nil {
		logging.FromContext(r.Context()).Warn("[UserHandler] обрыв передачи изображения", "error", err)
	}
}

// Deactivate godoc
// @Summary Деактивация аккаунта
// @Tags Users
// @Produce json
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Аккаунт уже неактивен"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/user/deactivate [patch]
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, func(user *model.User) error {
		return h.UserService.Deactivate(r.Context(), user)
	}, "account deactivated successfully")
}

// Reactivate godoc
// @Summary Повторная активация аккаунта
// @Description Доступна неактивным пользователям
// @Tags Users
// @Produce json
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Аккаунт уже активен"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/user/reactivate [patch]
func (h *UserHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, func(user *model.User) error {
		return h.UserService.Reactivate(r.Context(), user)
	}, "account reactivated successfully")
}

// JoinTrip godoc
// @Summary Запись на поездку
// @Tags Users
// @Produce json
// @Param trip_id path string true "UUID поездки"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Уже записан"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Поездка не найдена"
// @Security OAuth2Password
// @Router /v1/user/trips/{trip_id}/enroll [post]
func (h *UserHandler) JoinTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "trip_id")
	if !ok {
		return
	}
	h.withUser(w, r, func(user *model.User) error {
		return h.UserService.JoinTrip(r.Context(), user, tripID)
	}, "enrolled in trip successfully")
}

// LeaveTrip godoc
// @Summary Отказ от поездки
// @Tags Users
// @Produce json
// @Param trip_id path string true "UUID поездки"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Не записан на поездку"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Поездка не найдена"
// @Security OAuth2Password
// @Router /v1/user/trips/{trip_id}/enroll [delete]
func (h *UserHandler) LeaveTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "trip_id")
	if !ok {
		return
	}
	h.withUser(w, r, func(user *model.User) error {
		return h.UserService.LeaveTrip(r.Context(), user, tripID)
	}, "left trip successfully")
}

func (h *UserHandler) withUser(w http.ResponseWriter, r *http.Request, action func(user *model.User) error, message string) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	if err := action(user); err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: message})
}

func (h *UserHandler) withUserBody(w http.ResponseWriter, r *http.Request, target interface{}, action func(user *model.User) error, message string) {
	if err := decodeJSON(w, r, target); err != nil {
		return
	}
	h.withUser(w, r, action, message)
}

func currentUser(w http.ResponseWriter, r *http.Request) (*model.User, bool) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, apperror.ErrUnauthenticated.Message)
		return nil, false
	}
	return user, true
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func readUpload(header *multipart.FileHeader) (ports.Upload, error) {
	file, err := header.Open()
	if err != nil {
		return ports.Upload{}, apperror.Wrap(apperror.KindInvalid, "could not read uploaded file", err)
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		return ports.Upload{}, apperror.Wrap(apperror.KindInvalid, "could not read uploaded file", err)
	}

	return ports.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return err
	}
	return nil
}

// respondError : статус по apperror.Kind, внутренние ошибки логируются и скрываются от клиента
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperror.HTTPStatus(err)
	log := logging.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("ошибка обработки запроса", "error", err)
	} else {
		log.Debug("запрос отклонен", "status", status, "error", err)
	}
	sendErrorResponse(w, status, apperror.PublicMessage(err))
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("ошибка кодирования ответа", "error", err)
	}
}

func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}
