package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// DecodeJSONBody strictly decodes and validates a JSON request body.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fe.Field()+" "+validationMessage(fe))
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "latitude":
		return "must be a valid latitude"
	case "longitude":
		return "must be a valid longitude"
	}
	return "is invalid"
}

type registerRequest struct {
	ID            string  `json:"id"`
	Name          string  `json:"name" validate:"required"`
	BatchNumber   string  `json:"batch_number"`
	Manufacturer  string  `json:"manufacturer" validate:"required"`
	Distributor   string  `json:"distributor"`
	Retailer      string  `json:"retailer"`
	AssignedActor string  `json:"assigned_actor"`
	Lat           float64 `json:"lat" validate:"latitude"`
	Lon           float64 `json:"lon" validate:"longitude"`
}

type scanRequest struct {
	Token string `json:"token" validate:"required"`
}

type updateRequest struct {
	Token  string `json:"token" validate:"required"`
	Status string `json:"status" validate:"required"`
	Actor  string `json:"actor" validate:"required"`
}

type flagRequest struct {
	Actor string `json:"actor" validate:"required"`
}
