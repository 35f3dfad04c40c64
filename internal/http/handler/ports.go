package handler

import (
	"context"
	"net/http"

	"gotodo/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TodoService . TodoService
type TodoService interface {
	Register(ctx context.Context, creds core.Credentials) (core.AuthResult, error)
	Login(ctx context.Context, creds core.Credentials) (core.AuthResult, error)
	ListTodos(ctx context.Context, userID uint64) ([]core.TodoRecord, error)
	CreateTodo(ctx context.Context, userID uint64, title string) (core.TodoRecord, error)
	UpdateTodo(ctx context.Context, userID, todoID uint64, patch core.TodoPatch) (core.TodoRecord, error)
	DeleteTodo(ctx context.Context, userID, todoID uint64) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
