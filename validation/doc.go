// Package validation validates utl configuration and command input.
//
// It supports struct tag validation (using go-playground/validator) for
// configuration structs and programmatic validation with error collection
// for command flags. Both report failures as *errors.AppError.
//
// # Struct Tag Validation
//
//	type StringsConfig struct {
//	    DefaultMatch string `mapstructure:"default_match" validate:"required,ascii"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("pattern", pattern).OneOf("output", output, []string{"text", "json"})
//	if err := v.Validate(); err != nil { ... }
package validation
