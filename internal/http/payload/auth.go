package payload

import (
	"gotodo/internal/core"

	"github.com/jellydator/validation"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r RegisterRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: r.Username,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Username, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: l.Username,
		Password: l.Password,
	}
}
