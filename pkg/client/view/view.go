package view

import (
	"context"
	"fmt"
	"sort"

	"gotodo/pkg/client"
)

// Model is the client-side todo collection, keyed by id so lookups and
// replacements are O(1) and duplicate ids cannot occur. The collection is a
// cache of server state: toggles and removals are applied optimistically
// and rolled back to the pre-mutation snapshot when the server call fails.
type Model struct {
	api     TodoAPI
	session Authenticator

	todos     map[uint64]client.Todo
	authed    bool
	lastError string
}

func NewModel(api TodoAPI, session Authenticator) *Model {
	return &Model{
		api:     api,
		session: session,
		todos:   map[uint64]client.Todo{},
	}
}

// Load fetches the full list from the server. Without an authenticated
// session the collection stays empty and the model reports the
// unauthenticated state.
func (m *Model) Load(ctx context.Context) error {
	m.lastError = ""
	m.authed = m.session.Authenticated()

	if !m.authed {
		m.todos = map[uint64]client.Todo{}
		return nil
	}

	todos, err := m.api.Todos(ctx)
	if err != nil {
		m.lastError = err.Error()
		return fmt.Errorf("load todos: %w", err)
	}

	fresh := make(map[uint64]client.Todo, len(todos))
	for _, todo := range todos {
		fresh[todo.ID] = todo
	}
	m.todos = fresh

	return nil
}

// Add creates a todo on the server and inserts it into the collection only
// once the created entity comes back: the server-assigned id is the map
// key, so there is nothing to apply optimistically.
func (m *Model) Add(ctx context.Context, title string) (client.Todo, error) {
	m.lastError = ""

	todo, err := m.api.CreateTodo(ctx, title)
	if err != nil {
		m.lastError = err.Error()
		return client.Todo{}, fmt.Errorf("add todo: %w", err)
	}

	m.todos[todo.ID] = todo
	return todo, nil
}

// Toggle flips the completion flag optimistically, then confirms with the
// server. On failure the entry reverts to its pre-mutation value.
func (m *Model) Toggle(ctx context.Context, id uint64) error {
	m.lastError = ""

	snapshot, ok := m.todos[id]
	if !ok {
		return fmt.Errorf("toggle todo: no entry with id %d", id)
	}

	updated := snapshot
	updated.IsCompleted = !snapshot.IsCompleted
	m.todos[id] = updated

	_, err := m.api.UpdateTodo(ctx, id, client.TodoUpdate{IsCompleted: &updated.IsCompleted})
	if err != nil {
		m.todos[id] = snapshot
		m.lastError = err.Error()
		return fmt.Errorf("toggle todo: %w", err)
	}

	return nil
}

// Remove deletes the entry optimistically, then confirms with the server.
// On failure the collection reverts to its pre-mutation snapshot.
func (m *Model) Remove(ctx context.Context, id uint64) error {
	m.lastError = ""

	snapshot := make(map[uint64]client.Todo, len(m.todos))
	for key, todo := range m.todos {
		snapshot[key] = todo
	}

	delete(m.todos, id)

	if err := m.api.DeleteTodo(ctx, id); err != nil {
		m.todos = snapshot
		m.lastError = err.Error()
		return fmt.Errorf("remove todo: %w", err)
	}

	return nil
}

// Partition splits the collection into incomplete and completed todos,
// each newest first. It is recomputed from the collection on every call:
// no derived state is stored.
func (m *Model) Partition() (incomplete, completed []client.Todo) {
	for _, todo := range m.todos {
		if todo.IsCompleted {
			completed = append(completed, todo)
		} else {
			incomplete = append(incomplete, todo)
		}
	}

	sortNewestFirst(incomplete)
	sortNewestFirst(completed)
	return incomplete, completed
}

// All returns the collection newest first.
func (m *Model) All() []client.Todo {
	todos := make([]client.Todo, 0, len(m.todos))
	for _, todo := range m.todos {
		todos = append(todos, todo)
	}

	sortNewestFirst(todos)
	return todos
}

func (m *Model) Get(id uint64) (client.Todo, bool) {
	todo, ok := m.todos[id]
	return todo, ok
}

func (m *Model) Len() int {
	return len(m.todos)
}

func (m *Model) Authenticated() bool {
	return m.authed
}

// ErrorMessage is the message of the last failed operation, cleared by the
// next one.
func (m *Model) ErrorMessage() string {
	return m.lastError
}

func sortNewestFirst(todos []client.Todo) {
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].ID > todos[j].ID
	})
}
