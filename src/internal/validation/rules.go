package validation

import (
	"net"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/spp-ctl/src/internal/errors"
	"github.com/maksimkurb/spp-ctl/src/internal/spp"
)

// Body is a decoded JSON request body.
type Body map[string]any

// Rule checks one aspect of a body and returns a domain error on violation.
// Rules that take a destination store the checked value there.
type Rule func(Body) error

var validate *validator.Validate

func init() {
	validate = validator.New()

	// mac48 accepts EUI-48 addresses only; the built-in mac tag also takes
	// 64-bit and InfiniBand forms.
	_ = validate.RegisterValidation("mac48", func(fl validator.FieldLevel) bool {
		hw, err := net.ParseMAC(fl.Field().String())
		return err == nil && len(hw) == 6
	})
}

// Check evaluates rules in order and returns the first violation.
func Check(body Body, rules ...Rule) error {
	for _, rule := range rules {
		if err := rule(body); err != nil {
			return err
		}
	}
	return nil
}

// Require reports the first key that is absent from the body.
func Require(keys ...string) Rule {
	return func(b Body) error {
		for _, key := range keys {
			if _, ok := b[key]; !ok {
				return errors.MissingKey(key)
			}
		}
		return nil
	}
}

// String requires the value of key to be a JSON string.
func String(key string, dst *string) Rule {
	return func(b Body) error {
		s, ok := b[key].(string)
		if !ok {
			return errors.InvalidValue(key, b[key])
		}
		*dst = s
		return nil
	}
}

// Integer requires the value of key to be a JSON integer.
func Integer(key string, dst *int) Rule {
	return func(b Body) error {
		n, ok := spp.IsInteger(b[key])
		if !ok {
			return errors.InvalidValue(key, b[key])
		}
		*dst = n
		return nil
	}
}

// IntegerParseable requires the value of key to be an integer or a string
// holding one. An absent key is reported as an invalid null value.
func IntegerParseable(key string, dst *int) Rule {
	return func(b Body) error {
		n, ok := spp.ParseInt(b[key])
		if !ok {
			return errors.InvalidValue(key, b[key])
		}
		*dst = n
		return nil
	}
}

// OneOf requires the value of key to be one of the given strings.
func OneOf(key string, dst *string, values ...string) Rule {
	tag := "oneof=" + strings.Join(values, " ")
	return func(b Body) error {
		s, ok := b[key].(string)
		if !ok || validate.Var(s, tag) != nil {
			return errors.InvalidValue(key, b[key])
		}
		*dst = s
		return nil
	}
}

// Port requires the value of key to follow the port identifier grammar.
// Violations are reported under the "port" key whatever key holds the port.
func Port(key string, dst *spp.Port) Rule {
	return func(b Body) error {
		p, err := spp.ParsePortValue(b[key])
		if err != nil {
			return err
		}
		*dst = p
		return nil
	}
}

// MAC requires the value of key to be a 48-bit MAC address.
func MAC(key string, dst *string) Rule {
	return func(b Body) error {
		s, ok := b[key].(string)
		if !ok || validate.Var(s, "required,mac48") != nil {
			return errors.InvalidValue(key, b[key])
		}
		*dst = s
		return nil
	}
}

// Vlan requires the value of key to be a valid VLAN operation object.
func Vlan(key string, dst *spp.VlanOp) Rule {
	return func(b Body) error {
		op, err := spp.ParseVlanOp(b[key])
		if err != nil {
			return err
		}
		*dst = op
		return nil
	}
}

// When applies rules only if cond holds for the body.
func When(cond func(Body) bool, rules ...Rule) Rule {
	return func(b Body) error {
		if !cond(b) {
			return nil
		}
		return Check(b, rules...)
	}
}

// Equals is a When condition matching a string value.
func Equals(key, value string) func(Body) bool {
	return func(b Body) bool {
		s, _ := b[key].(string)
		return s == value
	}
}
