package client

import "fmt"

type User struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type Todo struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
	UserID      uint64 `json:"userId"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// TodoUpdate is a partial update: nil fields are not sent.
type TodoUpdate struct {
	Title       *string `json:"title,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
}

// APIError is a non-2xx response decoded into the server's error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}
