package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string // message safe to show to the user
	Err       error  // internal cause, logged only
}
