package view

import (
	"context"

	"gotodo/pkg/client"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TodoAPI . TodoAPI
type TodoAPI interface {
	Todos(ctx context.Context) ([]client.Todo, error)
	CreateTodo(ctx context.Context, title string) (client.Todo, error)
	UpdateTodo(ctx context.Context, id uint64, update client.TodoUpdate) (client.Todo, error)
	DeleteTodo(ctx context.Context, id uint64) error
}

//counterfeiter:generate -o fake -fake-name Authenticator . Authenticator
type Authenticator interface {
	Authenticated() bool
}
