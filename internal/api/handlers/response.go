package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// Машиночитаемые коды ошибок, кроме кодов отказов domain.RejectionCode
const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
	CodeNotFound              = "NOT_FOUND"
	CodeConflict              = "CONFLICT"
	CodeInvalidTransition     = "INVALID_TRANSITION"
	CodeNotPayable            = "NOT_PAYABLE"
	CodeNotDisputed           = "NOT_DISPUTED"
	CodeRefundExceedsCaptured = "REFUND_EXCEEDS_CAPTURED"
	CodeBusy                  = "BUSY"
	CodePaymentProvider       = "PAYMENT_PROVIDER_ERROR"
	CodeRateLimited           = "RATE_LIMITED"
	CodeInternal              = "INTERNAL_ERROR"
)

const (
	msgInternalError     = "внутренняя ошибка сервера"
	msgBusy              = "резервация изменяется параллельно, повторите запрос"
	msgPaymentProvider   = "платёжный сервис недоступен, резервация не изменена"
	msgInvalidTransition = "переход недоступен из текущего статуса"
	msgForbiddenActor    = "роль не может выполнить этот переход"
)

// ErrorResponse тело любого ответа с ошибкой
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondNoContent отправляет 204
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError отправляет ошибку с кодом
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeValidation, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, CodeForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, CodeConflict, message)
}

func RespondBusy(w http.ResponseWriter) {
	w.Header().Set("Retry-After", "1")
	RespondError(w, http.StatusServiceUnavailable, CodeBusy, msgBusy)
}

func RespondPaymentProviderError(w http.ResponseWriter) {
	RespondError(w, http.StatusBadGateway, CodePaymentProvider, msgPaymentProvider)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, msgInternalError)
}

// RespondRejection отправляет бизнес-отказ резервации.
// Пересечение - 409, остальные отказы по вместимости и правилам - 422
func RespondRejection(w http.ResponseWriter, rej *domain.RejectionError) {
	status := http.StatusUnprocessableEntity
	if rej.Code == domain.CodeConflictDetected {
		status = http.StatusConflict
	}
	message := rej.Message
	if message == "" {
		message = string(rej.Code)
	}
	RespondError(w, status, string(rej.Code), message)
}

// RespondDomainError обрабатывает отказы, общие для всех резерваций.
// Возвращает false, если ошибка не доменная и её нужно разобрать в обработчике
func RespondDomainError(w http.ResponseWriter, err error) bool {
	if rej, ok := domain.AsRejection(err); ok {
		RespondRejection(w, rej)
		return true
	}

	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		RespondError(w, http.StatusConflict, CodeInvalidTransition, msgInvalidTransition)
	case errors.Is(err, domain.ErrForbiddenActor):
		RespondForbidden(w, msgForbiddenActor)
	default:
		return false
	}
	return true
}

// DecodeJSON декодирует тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// PathID разбирает положительный int64 из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
