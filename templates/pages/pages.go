// Package pages holds the server-rendered screens. Markup lives in the
// *.templ files; run `mage gen` after editing them.
package pages

import (
	"github.com/a-h/templ"

	"github.com/gabrielcoffee/mba-fullstack-frontend/pkg/view"
)

// Base carries what the shared layout needs.
type Base struct {
	Title      string
	Flash      *view.Flash
	ShowLogout bool
}

type LoginVM struct {
	Base
	ReturnTo string
	Form     view.LoginForm
	Errors   map[string]string
	Error    string
}

type ProductsIndexVM struct {
	Base
	Products       []view.ProductCard
	Error          string
	TooltipDelayMS int64
	StatusFilters  []string
}

type ProductsNewVM struct {
	Base
	Form           view.ProductForm
	Errors         map[string]string
	Error          string
	Success        bool
	RefreshContent string // meta refresh value, e.g. "2;url=/produtos"
}

type ErrorVM struct {
	Base
	Status    int
	Message   string
	RequestID string
}

func Login(vm LoginVM) templ.Component {
	if vm.Title == "" {
		vm.Title = "Acesse sua conta"
	}
	return login(vm)
}

func ProductsIndex(vm ProductsIndexVM) templ.Component {
	if vm.Title == "" {
		vm.Title = "Seus produtos"
	}
	if vm.StatusFilters == nil {
		vm.StatusFilters = view.StatusFilters
	}
	return productsIndex(vm)
}

func ProductsNew(vm ProductsNewVM) templ.Component {
	if vm.Title == "" {
		vm.Title = "Cadastrar produto"
	}
	return productsNew(vm)
}

func Error(vm ErrorVM) templ.Component {
	if vm.Title == "" {
		vm.Title = "Erro"
	}
	return errorPage(vm)
}
