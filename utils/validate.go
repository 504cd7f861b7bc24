package utils

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kelydev/apiCitas/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// report json field names instead of Go field names
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks v against its validate tags and returns the offending fields.
func Validate(v any) ([]string, error) {
	err := validate.Struct(v)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	campos := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		campos = append(campos, fe.Field())
	}
	return campos, nil
}

// ValidationError writes a 400 naming the invalid fields.
func ValidationError(w http.ResponseWriter, campos []string) {
	JSON(w, http.StatusBadRequest, models.ErrorRespuesta{
		Error:  "datos inválidos: " + strings.Join(campos, ", "),
		Campos: campos,
	})
}
