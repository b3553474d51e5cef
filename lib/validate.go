package lib

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

var Validate *validator.Validate = NewValidator()

func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("mongouri", func(fl validator.FieldLevel) bool {
		return IsMongoURI(fl.Field().String())
	})

	return v
}

// IsMongoURI returns true if s is connection string accepted by mongo driver
func IsMongoURI(s string) bool {
	_, err := connstring.ParseAndValidate(s)
	return err == nil
}
