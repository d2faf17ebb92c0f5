package usersserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/Apurer/go-users-api/internal/shared/errors"
	userapp "github.com/Apurer/go-users-api/internal/users/application"
	userports "github.com/Apurer/go-users-api/internal/users/ports"
)

// respondUserError is the single service-error dispatch used by every
// handler. Storage failures collapse to a generic 500 problem; the
// underlying error text is logged by the service decorator, never echoed
// to the caller.
func respondUserError(c *gin.Context, err error, id any) {
	switch {
	case errors.Is(err, userports.ErrNotFound):
		apierrors.DefaultResponder.NotFound(c, "User", id)
	case errors.Is(err, userapp.ErrInvalidInput):
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail(trimClassifier(err, userapp.ErrInvalidInput)))
	default:
		apierrors.DefaultResponder.InternalError(c)
	}
}

// respondBindingError maps gin binding failures: validator errors become a
// 422 problem with field-level details, anything else a 400.
func respondBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
		apierrors.DefaultResponder.ValidationFailed(c, fields)
		return
	}
	apierrors.DefaultResponder.BadRequest(c, "invalid request body")
}

// trimClassifier drops the classification prefix so the response carries
// only the human-readable invariant message.
func trimClassifier(err, classifier error) string {
	msg := err.Error()
	prefix := classifier.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
