package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string `validate:"required,email"`
	Kind  string `validate:"required,oneof=stay rental"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(sample{Email: "a@b.co", Kind: "stay"}))

	errs := Validate(sample{Email: "nope", Kind: "boat"})
	assert.Equal(t, map[string]string{"Email": "email", "Kind": "oneof"}, errs)
}
