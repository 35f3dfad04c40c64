package core

import (
	"context"
	"gotodo/internal/repository"
	tokenIssuer "gotodo/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user *repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateTodo(ctx context.Context, todo *repository.Todo) error
	GetUserTodos(ctx context.Context, userID uint64) ([]repository.Todo, error)
	GetUserTodo(ctx context.Context, userID, todoID uint64) (repository.Todo, error)
	UpdateTodo(ctx context.Context, todo *repository.Todo, fields map[string]any) error
	DeleteUserTodo(ctx context.Context, userID, todoID uint64) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
