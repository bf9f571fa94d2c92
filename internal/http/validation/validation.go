package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to a user-facing message.
// The "_" key holds a form-level message.
type FieldErrors map[string]string

const FormKey = "_"

var messages = map[string]string{
	"required": "Este campo é obrigatório.",
	"email":    "Informe um e-mail válido.",
}

// FromBindError maps a gin bind error to field -> message, keyed by the
// struct's form tags. dst is the struct pointer that was bound.
func FromBindError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		// type mismatch, oversized body, malformed multipart
		out[FormKey] = "Dados do formulário inválidos."
		return out
	}
	for _, fe := range ve {
		key := formName(dst, fe.StructField())
		if _, seen := out[key]; seen {
			continue
		}
		out[key] = message(fe.Tag(), fe.Param())
	}
	return out
}

func message(tag, param string) string {
	if m, ok := messages[tag]; ok {
		return m
	}
	switch tag {
	case "max":
		return "Máximo de " + param + " caracteres."
	case "min":
		return "Mínimo de " + param + " caracteres."
	}
	return "Valor inválido."
}

func formName(dst any, structField string) string {
	fallback := strings.ToLower(structField)

	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fallback
	}
	f, ok := t.FieldByName(structField)
	if !ok {
		return fallback
	}
	name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
	if name == "" || name == "-" {
		return fallback
	}
	return name
}
