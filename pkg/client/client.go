package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client is a typed HTTP client for the todo API. It attaches the bearer
// token to every request once one is set.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
}

// SetToken sets the bearer token attached to subsequent requests. An empty
// token clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Register(ctx context.Context, username, password string) (AuthResponse, error) {
	var result AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", Credentials{Username: username, Password: password}, &result)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("register: %w", err)
	}
	return result, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (AuthResponse, error) {
	var result AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", Credentials{Username: username, Password: password}, &result)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("login: %w", err)
	}
	return result, nil
}

func (c *Client) Todos(ctx context.Context) ([]Todo, error) {
	var todos []Todo
	err := c.do(ctx, http.MethodGet, "/api/todos", nil, &todos)
	if err != nil {
		return nil, fmt.Errorf("fetch todos: %w", err)
	}
	return todos, nil
}

func (c *Client) CreateTodo(ctx context.Context, title string) (Todo, error) {
	var todo Todo
	err := c.do(ctx, http.MethodPost, "/api/todos", map[string]string{"title": title}, &todo)
	if err != nil {
		return Todo{}, fmt.Errorf("create todo: %w", err)
	}
	return todo, nil
}

func (c *Client) UpdateTodo(ctx context.Context, id uint64, update TodoUpdate) (Todo, error) {
	var todo Todo
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/todos/%d", id), update, &todo)
	if err != nil {
		return Todo{}, fmt.Errorf("update todo: %w", err)
	}
	return todo, nil
}

func (c *Client) DeleteTodo(ctx context.Context, id uint64) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/todos/%d", id), nil, nil)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, result any) error {
	var reqBody *bytes.Buffer = &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
		apiErr.Message = envelope.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}
