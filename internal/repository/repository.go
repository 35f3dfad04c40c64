package repository

import (
	"context"
	"errors"
	"fmt"
	"gotodo/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already exists")
var ErrTodoNotFound error = errors.New("todo not found")

type TodoRepository struct {
	db Storage
}

func NewTodoRepository(db Storage) *TodoRepository {
	return &TodoRepository{
		db: db,
	}
}

func (r *TodoRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Todo{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser persists the user and fills its generated id.
func (r *TodoRepository) CreateUser(ctx context.Context, user *User) error {
	err := r.db.Create(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *TodoRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, map[string]any{"username": username}, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// CreateTodo persists the todo and fills its generated id.
func (r *TodoRepository) CreateTodo(ctx context.Context, todo *Todo) error {
	err := r.db.Create(ctx, todo)
	if err != nil {
		return fmt.Errorf("create todo: %w", err)
	}

	return nil
}

// GetUserTodos returns the caller's todos, newest first.
func (r *TodoRepository) GetUserTodos(ctx context.Context, userID uint64) ([]Todo, error) {
	todos := []Todo{}

	err := r.db.GetAllBy(ctx, map[string]any{"user_id": userID}, "id DESC", &todos)
	if err != nil {
		return nil, fmt.Errorf("get user todos: %w", err)
	}

	return todos, nil
}

// GetUserTodo looks up a todo constrained by both id and owner. A todo that
// exists but belongs to another user is reported as not found.
func (r *TodoRepository) GetUserTodo(ctx context.Context, userID, todoID uint64) (Todo, error) {
	var todo Todo

	err := r.db.GetOneBy(ctx, map[string]any{"id": todoID, "user_id": userID}, &todo)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Todo{}, ErrTodoNotFound
		}
		return Todo{}, fmt.Errorf("get user todo: %w", err)
	}

	return todo, nil
}

// UpdateTodo applies only the given fields to the todo row.
func (r *TodoRepository) UpdateTodo(ctx context.Context, todo *Todo, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	err := r.db.Updates(ctx, todo, fields)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}

	return nil
}

// DeleteUserTodo removes the todo constrained by id and owner.
func (r *TodoRepository) DeleteUserTodo(ctx context.Context, userID, todoID uint64) error {
	affected, err := r.db.DeleteWhere(ctx, &Todo{}, map[string]any{"id": todoID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete user todo: %w", err)
	}

	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}
