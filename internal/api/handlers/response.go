package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/keystone-front/internal/validation"
)

const (
	msgInternalError = "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	msgBadGateway    = "서버와 통신 중 오류가 발생했습니다. 다시 시도해주세요."

	// Ограничение тела запроса
	maxBodyBytes = 1 << 20
)

// ErrEmptyBody тело запроса пустое
var ErrEmptyBody = errors.New("request body is empty")

// ErrorResponse единый формат ошибки: одно сообщение для пользователя
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON пишет ответ в JSON. data == nil означает пустое тело.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError пишет ошибку с сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondBadGateway бэкенд недоступен; запрос можно безопасно повторить
func RespondBadGateway(w http.ResponseWriter, message string) {
	if message == "" {
		message = msgBadGateway
	}
	RespondError(w, http.StatusBadGateway, message)
}

// RespondInternalError внутренние детали наружу не отдаются
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON читает JSON-тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// RespondValidation отвечает 400 с сообщением, если err ошибка проверки формы
func RespondValidation(w http.ResponseWriter, err error) bool {
	msg, ok := validation.UserMessage(err)
	if !ok {
		return false
	}
	RespondBadRequest(w, msg)
	return true
}
