package config

// Validator interface for configurations that need validation.
type Validator interface {
	Validate() error
}

// Defaulter interface for configurations that fill unset fields
// before validation.
type Defaulter interface {
	ApplyDefaults()
}
