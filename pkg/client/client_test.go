package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"gotodo/pkg/client"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var (
		server *httptest.Server
		mux    *http.ServeMux
		c      *client.Client
		ctx    context.Context
	)

	BeforeEach(func() {
		mux = http.NewServeMux()
		server = httptest.NewServer(mux)
		c = client.New(server.URL)
		ctx = context.Background()
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("Register", func() {
		BeforeEach(func() {
			mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
				var creds client.Credentials
				Expect(json.NewDecoder(r.Body).Decode(&creds)).To(Succeed())
				Expect(creds.Username).To(Equal("testuser"))

				w.WriteHeader(http.StatusCreated)
				_ = json.NewEncoder(w).Encode(client.AuthResponse{
					ID:       42,
					Username: creds.Username,
					Token:    "signed.token",
				})
			})
		})

		It("should return the issued token", func() {
			resp, err := c.Register(ctx, "testuser", "testpass")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.ID).To(Equal(uint64(42)))
			Expect(resp.Token).To(Equal("signed.token"))
		})
	})

	Describe("Login", func() {
		When("the credentials are wrong", func() {
			BeforeEach(func() {
				mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusUnauthorized)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"message": "Invalid username or password.",
					})
				})
			})

			It("should surface the server message as an APIError", func() {
				_, err := c.Login(ctx, "testuser", "wrongpass")

				var apiErr *client.APIError
				Expect(errors.As(err, &apiErr)).To(BeTrue())
				Expect(apiErr.Status).To(Equal(http.StatusUnauthorized))
				Expect(apiErr.Message).To(Equal("Invalid username or password."))
			})
		})
	})

	Describe("Todos", func() {
		var gotAuth string

		BeforeEach(func() {
			mux.HandleFunc("GET /api/todos", func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				_ = json.NewEncoder(w).Encode([]client.Todo{
					{ID: 2, Title: "second", UserID: 42},
					{ID: 1, Title: "first", IsCompleted: true, UserID: 42},
				})
			})
		})

		It("should attach the bearer token and decode the list", func() {
			c.SetToken("signed.token")

			todos, err := c.Todos(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(todos).To(HaveLen(2))
			Expect(todos[0].ID).To(Equal(uint64(2)))
			Expect(gotAuth).To(Equal("Bearer signed.token"))
		})

		It("should send no authorization header when no token is set", func() {
			_, err := c.Todos(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(gotAuth).To(BeEmpty())
		})
	})

	Describe("CreateTodo", func() {
		BeforeEach(func() {
			mux.HandleFunc("POST /api/todos", func(w http.ResponseWriter, r *http.Request) {
				var body map[string]string
				Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())

				w.WriteHeader(http.StatusCreated)
				_ = json.NewEncoder(w).Encode(client.Todo{
					ID:    7,
					Title: body["title"],
				})
			})
		})

		It("should return the created todo", func() {
			todo, err := c.CreateTodo(ctx, "buy milk")
			Expect(err).NotTo(HaveOccurred())
			Expect(todo.ID).To(Equal(uint64(7)))
			Expect(todo.Title).To(Equal("buy milk"))
		})
	})

	Describe("UpdateTodo", func() {
		BeforeEach(func() {
			mux.HandleFunc("PUT /api/todos/{id}", func(w http.ResponseWriter, r *http.Request) {
				Expect(r.PathValue("id")).To(Equal("7"))

				var update client.TodoUpdate
				Expect(json.NewDecoder(r.Body).Decode(&update)).To(Succeed())
				Expect(update.Title).To(BeNil())
				Expect(*update.IsCompleted).To(BeTrue())

				_ = json.NewEncoder(w).Encode(client.Todo{
					ID:          7,
					Title:       "buy milk",
					IsCompleted: true,
				})
			})
		})

		It("should send only the set fields", func() {
			completed := true
			todo, err := c.UpdateTodo(ctx, 7, client.TodoUpdate{IsCompleted: &completed})
			Expect(err).NotTo(HaveOccurred())
			Expect(todo.IsCompleted).To(BeTrue())
		})
	})

	Describe("DeleteTodo", func() {
		When("the todo exists", func() {
			BeforeEach(func() {
				mux.HandleFunc("DELETE /api/todos/{id}", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNoContent)
				})
			})

			It("should succeed on a 204 with no body", func() {
				Expect(c.DeleteTodo(ctx, 7)).To(Succeed())
			})
		})

		When("the todo does not exist", func() {
			BeforeEach(func() {
				mux.HandleFunc("DELETE /api/todos/{id}", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
					_ = json.NewEncoder(w).Encode(map[string]string{"message": "Todo not found"})
				})
			})

			It("should surface the server message as an APIError", func() {
				err := c.DeleteTodo(ctx, 7)

				var apiErr *client.APIError
				Expect(errors.As(err, &apiErr)).To(BeTrue())
				Expect(apiErr.Status).To(Equal(http.StatusNotFound))
				Expect(apiErr.Message).To(Equal("Todo not found"))
			})
		})
	})
})
