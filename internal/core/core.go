package core

import (
	"context"
	"errors"
	"fmt"
	"gotodo/internal/repository"
	tokenIssuer "gotodo/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrUsernameTaken error = errors.New("username already exists")
var ErrTodoNotFound error = errors.New("todo not found")

const bcryptCost = 10
const tokenValidityHours = 24

// TodoCore implements registration, login and the owner-scoped todo
// operations on top of the repository and the token issuer.
type TodoCore struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
}

func NewTodoCore(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer) *TodoCore {
	return &TodoCore{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Register hashes the password, persists the user and signs a token so the
// new user is logged in immediately. The plaintext password is never stored
// or logged.
func (c *TodoCore) Register(ctx context.Context, creds Credentials) (AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username:     creds.Username,
		PasswordHash: string(hash),
	}
	if err = c.repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return AuthResult{}, ErrUsernameTaken
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	token, err := c.issueToken(user)
	if err != nil {
		return AuthResult{}, err
	}

	c.logs.Infow("user registered", "userId", user.ID, "username", user.Username)

	return AuthResult{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}

// Login checks the credentials and signs a token. An unknown username and a
// wrong password produce the same error so callers cannot probe which
// usernames exist.
func (c *TodoCore) Login(ctx context.Context, creds Credentials) (AuthResult, error) {
	user, err := c.repo.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("get user by username: %w", err)
	}

	// bcrypt comparison is constant-time
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := c.issueToken(user)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}

// ListTodos returns the caller's todos, newest first.
func (c *TodoCore) ListTodos(ctx context.Context, userID uint64) ([]TodoRecord, error) {
	todos, err := c.repo.GetUserTodos(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user todos: %w", err)
	}

	return repoTodosToRecords(todos), nil
}

func (c *TodoCore) CreateTodo(ctx context.Context, userID uint64, title string) (TodoRecord, error) {
	todo := repository.Todo{
		Title:       title,
		IsCompleted: false,
		UserID:      userID,
	}
	if err := c.repo.CreateTodo(ctx, &todo); err != nil {
		return TodoRecord{}, fmt.Errorf("create todo: %w", err)
	}

	c.logs.Infow("todo created", "todoId", todo.ID, "userId", userID)

	return repoTodoToRecord(todo), nil
}

// UpdateTodo applies the patch to the caller's todo. A todo that does not
// exist and a todo owned by another user are both reported as not found.
func (c *TodoCore) UpdateTodo(ctx context.Context, userID, todoID uint64, patch TodoPatch) (TodoRecord, error) {
	todo, err := c.repo.GetUserTodo(ctx, userID, todoID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return TodoRecord{}, ErrTodoNotFound
		}
		return TodoRecord{}, fmt.Errorf("get user todo: %w", err)
	}

	fields := map[string]any{}
	if patch.Title != nil {
		todo.Title = *patch.Title
		fields["title"] = *patch.Title
	}
	if patch.IsCompleted != nil {
		todo.IsCompleted = *patch.IsCompleted
		fields["is_completed"] = *patch.IsCompleted
	}

	if err = c.repo.UpdateTodo(ctx, &todo, fields); err != nil {
		return TodoRecord{}, fmt.Errorf("update todo: %w", err)
	}

	return repoTodoToRecord(todo), nil
}

func (c *TodoCore) DeleteTodo(ctx context.Context, userID, todoID uint64) error {
	err := c.repo.DeleteUserTodo(ctx, userID, todoID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("delete user todo: %w", err)
	}

	c.logs.Infow("todo deleted", "todoId", todoID, "userId", userID)
	return nil
}

func (c *TodoCore) issueToken(user repository.User) (string, error) {
	tokenInfo := tokenIssuer.TokenInfo{
		UserID:     user.ID,
		Username:   user.Username,
		Expiration: tokenValidityHours,
	}
	token := c.jwtIssuer.Generate(tokenInfo)
	signed, err := c.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func repoTodoToRecord(todo repository.Todo) TodoRecord {
	return TodoRecord{
		ID:          todo.ID,
		Title:       todo.Title,
		IsCompleted: todo.IsCompleted,
		UserID:      todo.UserID,
	}
}

func repoTodosToRecords(todos []repository.Todo) []TodoRecord {
	records := make([]TodoRecord, len(todos))
	for i, todo := range todos {
		records[i] = repoTodoToRecord(todo)
	}
	return records
}
