// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON-ответов HTTP-обработчиков. Пакет упрощает возврат
// успешных ответов, ошибок и сообщений валидации в едином формате.
package response

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/car-inventory/internal/lib/validation"
)

// Response описывает стандартную структуру JSON-ответа сервера.
// Status принимает значения "OK" или "Error". Error и Fields заполняются при неуспехе,
// Data при успехе.
type Response struct {
	Status string              `json:"status"`
	Error  string              `json:"error,omitempty"`
	Fields map[string][]string `json:"fields,omitempty"`
	Data   any                 `json:"data,omitempty"`
}

// ErrorResponse структура ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

// ValidationErrorResponse структура ошибки валидации для Swagger-документации.
type ValidationErrorResponse struct {
	Status string              `json:"status" example:"Error"`
	Error  string              `json:"error" example:"validation failed"`
	Fields map[string][]string `json:"fields"`
}

const (
	// StatusOK значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// Сообщения об ошибках, общие для обработчиков.
const (
	MsgDecodeFailed = "failed to decode request"
	MsgValidation   = "validation failed"
	MsgNotFound     = "not found"
	MsgInternal     = "internal server error"
	MsgUnauthorized = "unauthorized"
)

// StatusOKWithData возвращает успешный Response с переданными данными.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError формирует Response со статусом Error и ошибками по полям.
func ValidationError(errs validation.FieldErrors) Response {
	return Response{
		Status: StatusError,
		Error:  MsgValidation,
		Fields: errs,
	}
}

// Render пишет resp с кодом status.
func Render(w http.ResponseWriter, r *http.Request, status int, resp Response) {
	render.Status(r, status)
	render.JSON(w, r, resp)
}
