package config

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	gpioerrors "github.com/gbfwtest/gpiocert/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	chipLabelPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("chip_label", func(fl validator.FieldLevel) bool {
			return chipLabelPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the configuration against its declared constraints.
func Validate(cfg *Config) error {
	if cfg == nil {
		return gpioerrors.NewParseError("", 0, fmt.Errorf("configuration is nil"))
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return gpioerrors.NewParseError(first.Namespace(), 0,
				fmt.Errorf("field %s failed %q validation", first.Field(), first.Tag()))
		}
		return gpioerrors.NewParseError("", 0, err)
	}

	return nil
}
