package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"

	"gotodo/internal/core"
	corefake "gotodo/internal/core/fake"
	"gotodo/internal/http/handler"
	"gotodo/internal/http/handler/middleware"
	"gotodo/internal/http/payload"
	"gotodo/internal/repository"
	"gotodo/pkg/client"
	tokenIssuer "gotodo/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

// inMemoryRepo backs the fake repository with maps so a full
// register/login/CRUD flow can run over a real HTTP server.
type inMemoryRepo struct {
	users      map[string]repository.User
	todos      map[uint64]repository.Todo
	nextUserId uint64
	nextTodoId uint64
}

func newInMemoryRepo(fakeRepo *corefake.Repository) *inMemoryRepo {
	mem := &inMemoryRepo{
		users: map[string]repository.User{},
		todos: map[uint64]repository.Todo{},
	}

	fakeRepo.CreateUserStub = func(_ context.Context, user *repository.User) error {
		if _, exists := mem.users[user.Username]; exists {
			return repository.ErrUsernameTaken
		}
		mem.nextUserId++
		user.ID = mem.nextUserId
		mem.users[user.Username] = *user
		return nil
	}
	fakeRepo.GetUserByUsernameStub = func(_ context.Context, username string) (repository.User, error) {
		user, exists := mem.users[username]
		if !exists {
			return repository.User{}, repository.ErrUserNotFound
		}
		return user, nil
	}
	fakeRepo.CreateTodoStub = func(_ context.Context, todo *repository.Todo) error {
		mem.nextTodoId++
		todo.ID = mem.nextTodoId
		mem.todos[todo.ID] = *todo
		return nil
	}
	fakeRepo.GetUserTodosStub = func(_ context.Context, userId uint64) ([]repository.Todo, error) {
		var todos []repository.Todo
		for _, todo := range mem.todos {
			if todo.UserID == userId {
				todos = append(todos, todo)
			}
		}
		sort.Slice(todos, func(i, j int) bool { return todos[i].ID > todos[j].ID })
		return todos, nil
	}
	fakeRepo.GetUserTodoStub = func(_ context.Context, userId, todoId uint64) (repository.Todo, error) {
		todo, exists := mem.todos[todoId]
		if !exists || todo.UserID != userId {
			return repository.Todo{}, repository.ErrTodoNotFound
		}
		return todo, nil
	}
	fakeRepo.UpdateTodoStub = func(_ context.Context, todo *repository.Todo, _ map[string]any) error {
		mem.todos[todo.ID] = *todo
		return nil
	}
	fakeRepo.DeleteUserTodoStub = func(_ context.Context, userId, todoId uint64) error {
		todo, exists := mem.todos[todoId]
		if !exists || todo.UserID != userId {
			return repository.ErrTodoNotFound
		}
		delete(mem.todos, todoId)
		return nil
	}

	return mem
}

var _ = Describe("API flow", func() {
	var (
		server *httptest.Server
		alice  *client.Client
		bob    *client.Client
		ctx    context.Context
	)

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()
		fakeRepo := new(corefake.Repository)
		newInMemoryRepo(fakeRepo)

		jwtService := tokenIssuer.NewJWTService([]byte("test-secret"))
		todoCore := core.NewTodoCore(logger, fakeRepo, jwtService)
		todoHlr := handler.NewTodoHandler(logger, payload.DecodeValidator{}, todoCore)
		authMw := middleware.NewAuthMiddleware(logger, jwtService)

		mux := http.NewServeMux()
		mux.HandleFunc(handler.Register, todoHlr.HandleRegister)
		mux.HandleFunc(handler.Login, todoHlr.HandleLogin)
		mux.Handle(handler.ListTodos, authMw.Auth(http.HandlerFunc(todoHlr.HandleListTodos)))
		mux.Handle(handler.CreateTodo, authMw.Auth(http.HandlerFunc(todoHlr.HandleCreateTodo)))
		mux.Handle(handler.UpdateTodo, authMw.Auth(http.HandlerFunc(todoHlr.HandleUpdateTodo)))
		mux.Handle(handler.DeleteTodo, authMw.Auth(http.HandlerFunc(todoHlr.HandleDeleteTodo)))

		server = httptest.NewServer(mux)
		alice = client.New(server.URL)
		bob = client.New(server.URL)
		ctx = context.Background()
	})

	AfterEach(func() {
		server.Close()
	})

	It("runs a full register, create, toggle, cross-user delete flow", func() {
		By("registering alice and receiving a usable token")
		aliceAuth, err := alice.Register(ctx, "alice", "pw1")
		Expect(err).NotTo(HaveOccurred())
		Expect(aliceAuth.Token).NotTo(BeEmpty())
		alice.SetToken(aliceAuth.Token)

		By("creating a todo owned by alice")
		todo, err := alice.CreateTodo(ctx, "buy milk")
		Expect(err).NotTo(HaveOccurred())
		Expect(todo.Title).To(Equal("buy milk"))
		Expect(todo.IsCompleted).To(BeFalse())
		Expect(todo.UserID).To(Equal(aliceAuth.ID))

		By("toggling completion")
		completed := true
		updated, err := alice.UpdateTodo(ctx, todo.ID, client.TodoUpdate{IsCompleted: &completed})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.IsCompleted).To(BeTrue())

		By("rejecting another user's delete with 404")
		bobAuth, err := bob.Register(ctx, "bob", "pw2")
		Expect(err).NotTo(HaveOccurred())
		bob.SetToken(bobAuth.Token)

		err = bob.DeleteTodo(ctx, todo.ID)
		var apiErr *client.APIError
		Expect(errors.As(err, &apiErr)).To(BeTrue())
		Expect(apiErr.Status).To(Equal(http.StatusNotFound))

		By("keeping the todo invisible in bob's list but present in alice's")
		bobTodos, err := bob.Todos(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(bobTodos).To(BeEmpty())

		aliceTodos, err := alice.Todos(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(aliceTodos).To(HaveLen(1))
		Expect(aliceTodos[0].IsCompleted).To(BeTrue())

		By("letting alice delete her own todo")
		Expect(alice.DeleteTodo(ctx, todo.ID)).To(Succeed())
		aliceTodos, err = alice.Todos(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(aliceTodos).To(BeEmpty())
	})

	It("rejects a duplicate username and leaves the first user intact", func() {
		first, err := alice.Register(ctx, "alice", "pw1")
		Expect(err).NotTo(HaveOccurred())

		_, err = bob.Register(ctx, "alice", "other")
		var apiErr *client.APIError
		Expect(errors.As(err, &apiErr)).To(BeTrue())
		Expect(apiErr.Status).To(Equal(http.StatusConflict))

		login, err := alice.Login(ctx, "alice", "pw1")
		Expect(err).NotTo(HaveOccurred())
		Expect(login.ID).To(Equal(first.ID))
	})

	It("returns the same error for a wrong password and an unknown user", func() {
		_, err := alice.Register(ctx, "alice", "pw1")
		Expect(err).NotTo(HaveOccurred())

		_, wrongPassErr := alice.Login(ctx, "alice", "wrong")
		_, unknownErr := alice.Login(ctx, "nobody", "pw1")

		var wrongPassAPIErr, unknownAPIErr *client.APIError
		Expect(errors.As(wrongPassErr, &wrongPassAPIErr)).To(BeTrue())
		Expect(errors.As(unknownErr, &unknownAPIErr)).To(BeTrue())
		Expect(wrongPassAPIErr.Status).To(Equal(http.StatusUnauthorized))
		Expect(wrongPassAPIErr.Message).To(Equal(unknownAPIErr.Message))
	})

	It("gates every todo route behind the bearer token", func() {
		_, err := alice.Todos(ctx)
		var apiErr *client.APIError
		Expect(errors.As(err, &apiErr)).To(BeTrue())
		Expect(apiErr.Status).To(Equal(http.StatusUnauthorized))
		Expect(apiErr.Message).To(Equal("Access denied. No token provided."))

		alice.SetToken("tampered.token.value")
		_, err = alice.Todos(ctx)
		Expect(errors.As(err, &apiErr)).To(BeTrue())
		Expect(apiErr.Status).To(Equal(http.StatusForbidden))
		Expect(apiErr.Message).To(Equal("Invalid or expired token."))
	})
})
