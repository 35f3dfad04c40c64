package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gotodo/internal/core"
	"gotodo/internal/http/handler/middleware"
	"gotodo/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Register   = "POST /auth/register"
	Login      = "POST /auth/login"
	ListTodos  = "GET /api/todos"
	CreateTodo = "POST /api/todos"
	UpdateTodo = "PUT /api/todos/{id}"
	DeleteTodo = "DELETE /api/todos/{id}"
)

type TodoHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	todos            TodoService
}

func NewTodoHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, todoService TodoService) *TodoHandler {
	return &TodoHandler{
		logs:             logger,
		requestValidator: requestValidator,
		todos:            todoService,
	}
}

func (h *TodoHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "Username and password are required.",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	result, err := h.todos.Register(r.Context(), req.ToCredentials())
	if err != nil {
		resp := Response{
			Message: "Server error during registration.",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUsernameTaken) {
			httpCode = http.StatusConflict
			resp.Message = "Username already exists."
			resp.Error = err.Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, result, http.StatusCreated, requestId)
}

func (h *TodoHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "Username and password are required.",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	result, err := h.todos.Login(r.Context(), req.ToCredentials())
	if err != nil {
		resp := Response{
			Message: "Server error during login.",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidCredentials) {
			httpCode = http.StatusUnauthorized
			resp.Message = "Invalid username or password."
			resp.Error = err.Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleListTodos(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userId, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondUnauthenticated(w, requestId, ListTodos)
		return
	}

	todos, err := h.todos.ListTodos(r.Context(), userId)
	if err != nil {
		h.respond(w, Response{
			Message: "Error fetching todos",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list todos",
			"error", err,
			"handler", ListTodos,
			"request_id", requestId)
		return
	}

	h.respond(w, todos, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleCreateTodo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userId, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondUnauthenticated(w, requestId, CreateTodo)
		return
	}

	var req payload.CreateTodoRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "Title is required.",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateTodo,
			"request_id", requestId)
		return
	}

	todo, err := h.todos.CreateTodo(r.Context(), userId, req.Title)
	if err != nil {
		h.respond(w, Response{
			Message: "Error creating todo",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to create todo",
			"error", err,
			"handler", CreateTodo,
			"request_id", requestId)
		return
	}

	h.respond(w, todo, http.StatusCreated, requestId)
}

func (h *TodoHandler) HandleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userId, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondUnauthenticated(w, requestId, UpdateTodo)
		return
	}

	todoId, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		// a malformed id is indistinguishable from a nonexistent one
		h.respond(w, Response{
			Message: "Todo not found",
		}, http.StatusNotFound, requestId)
		return
	}

	var req payload.UpdateTodoRequest
	err = h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "Invalid request payload.",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateTodo,
			"request_id", requestId)
		return
	}

	todo, err := h.todos.UpdateTodo(r.Context(), userId, todoId, req.ToPatch())
	if err != nil {
		resp := Response{
			Message: "Error updating todo",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrTodoNotFound) {
			httpCode = http.StatusNotFound
			resp.Message = "Todo not found"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to update todo",
			"error", err,
			"handler", UpdateTodo,
			"request_id", requestId)
		return
	}

	h.respond(w, todo, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userId, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondUnauthenticated(w, requestId, DeleteTodo)
		return
	}

	todoId, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respond(w, Response{
			Message: "Todo not found",
		}, http.StatusNotFound, requestId)
		return
	}

	err = h.todos.DeleteTodo(r.Context(), userId, todoId)
	if err != nil {
		resp := Response{
			Message: "Error deleting todo",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrTodoNotFound) {
			httpCode = http.StatusNotFound
			resp.Message = "Todo not found"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to delete todo",
			"error", err,
			"handler", DeleteTodo,
			"request_id", requestId)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TodoHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func (h *TodoHandler) respondUnauthenticated(w http.ResponseWriter, requestId, handlerName string) {
	h.respond(w, Response{
		Message: "Access denied. No token provided.",
	}, http.StatusUnauthorized, requestId)
	h.logs.Errorw("missing authenticated user id in request context",
		"handler", handlerName,
		"request_id", requestId)
}

func requestID(r *http.Request) string {
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}
