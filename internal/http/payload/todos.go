package payload

import (
	"strings"

	"gotodo/internal/core"

	"github.com/jellydator/validation"
)

var errBlankTitle = validation.NewError("validation_blank_title", "title must not be blank")

type CreateTodoRequest struct {
	Title string `json:"title"`
}

func (c CreateTodoRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required, validation.By(notBlank)),
	)
}

// UpdateTodoRequest is a partial update: nil fields are left untouched.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	IsCompleted *bool   `json:"isCompleted"`
}

func (u UpdateTodoRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.By(notBlank)),
	)
}

func (u UpdateTodoRequest) ToPatch() core.TodoPatch {
	return core.TodoPatch{
		Title:       u.Title,
		IsCompleted: u.IsCompleted,
	}
}

// notBlank rejects titles that are empty or whitespace only. An absent
// (nil) title is fine: it means the field is not being updated.
func notBlank(value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(v) == "" {
			return errBlankTitle
		}
	case *string:
		if v != nil && strings.TrimSpace(*v) == "" {
			return errBlankTitle
		}
	}
	return nil
}
