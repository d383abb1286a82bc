package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"pricewatch/internal/apierror"
	"pricewatch/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("bad_request", "JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// paramID parses a numeric path parameter. Returns 0 and writes the error
// response when the value is not a positive integer.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("bad_request", "ID inválido"))
		return 0, false
	}
	return uint(id), true
}

// writeServiceError maps the service sentinels onto HTTP statuses. Unknown
// errors are attached to the context for the ErrorHandler middleware, which
// logs them and answers 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("not_found", err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, apierror.New("conflict", err.Error()))
	case errors.Is(err, service.ErrInvalidValue):
		c.JSON(http.StatusUnprocessableEntity, apierror.New("invalid_argument", err.Error()))
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, apierror.New("unauthorized", err.Error()))
	default:
		_ = c.Error(err)
	}
}
