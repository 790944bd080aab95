package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

type Err struct {
	HTTPStatusCode int               `json:"-"`
	Status         string            `json:"status" example:"Not Found"`
	Detail         string            `json:"detail" example:"Recinto no encontrado"`
	Fields         map[string]string `json:"fields,omitempty"`

	err error
}

func (e *Err) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.Detail
}

func (e *Err) Unwrap() error {
	return e.err
}

type Message struct {
	Detail string `json:"detail" example:"Recinto eliminado satisfactoriamente"`
}

type Welcome struct {
	Message       string `json:"message" example:"Bienvenido a la API de EventMaster"`
	Documentation string `json:"documentacion" example:"/docs"`
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.err),
		)
	}
	if e.err != nil {
		_ = ctx.Error(e.err)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

// ErrValidation reports malformed or out-of-range input. ozzo field errors
// are listed per field.
func ErrValidation(err error) *Err {
	e := &Err{
		HTTPStatusCode: http.StatusUnprocessableEntity,
		Status:         http.StatusText(http.StatusUnprocessableEntity),
		Detail:         err.Error(),
		err:            err,
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		e.Fields = make(map[string]string, len(fieldErrs))
		for field, fieldErr := range fieldErrs {
			e.Fields[field] = fieldErr.Error()
		}
	}

	return e
}

func ErrBadRequest(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Status:         http.StatusText(http.StatusBadRequest),
		Detail:         err.Error(),
		err:            err,
	}
}

func ErrNotFound(detail string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Status:         http.StatusText(http.StatusNotFound),
		Detail:         detail,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		Status:         http.StatusText(http.StatusInternalServerError),
		Detail:         "Error interno del servidor",
		err:            err,
	}
}
