package view

type LoginForm struct {
	Email string
}

// ProductForm echoes the creation form back after a failed submit.
type ProductForm struct {
	Title       string
	Description string
	Category    string
	Price       string
}
