package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type loginInput struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password,omitempty" binding:"required"`
	Note     string `binding:"max=3"`
}

func TestFromBindError(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")

	in := loginInput{Email: "not-an-email", Note: "toolong"}
	errs := FromBindError(v.Struct(&in), &in)

	want := FieldErrors{
		"email":    "Informe um e-mail válido.",
		"password": "Este campo é obrigatório.",
		"note":     "Máximo de 3 caracteres.",
	}
	for k, msg := range want {
		if errs[k] != msg {
			t.Errorf("errs[%q] = %q, want %q", k, errs[k], msg)
		}
	}
}

func TestFromBindErrorNonValidation(t *testing.T) {
	errs := FromBindError(errors.New("http: request body too large"), &loginInput{})
	if errs[FormKey] == "" {
		t.Errorf("want form-level message, got %v", errs)
	}
}
