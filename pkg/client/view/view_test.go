package view_test

import (
	"context"
	"errors"

	"gotodo/pkg/client"
	"gotodo/pkg/client/view"
	"gotodo/pkg/client/view/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Model", func() {
	var (
		fakeAPI     *fake.TodoAPI
		fakeSession *fake.Authenticator
		model       *view.Model
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeAPI = new(fake.TodoAPI)
		fakeSession = new(fake.Authenticator)
		fakeSession.AuthenticatedReturns(true)
		model = view.NewModel(fakeAPI, fakeSession)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	load := func(todos ...client.Todo) {
		fakeAPI.TodosReturns(todos, nil)
		Expect(model.Load(ctx)).To(Succeed())
	}

	Describe("Load", func() {
		When("the session is authenticated", func() {
			BeforeEach(func() {
				fakeAPI.TodosReturns([]client.Todo{
					{ID: 1, Title: "first"},
					{ID: 2, Title: "second", IsCompleted: true},
				}, nil)
			})

			It("should fill the collection from the server", func() {
				Expect(model.Load(ctx)).To(Succeed())
				Expect(model.Authenticated()).To(BeTrue())
				Expect(model.Len()).To(Equal(2))

				todo, ok := model.Get(2)
				Expect(ok).To(BeTrue())
				Expect(todo.IsCompleted).To(BeTrue())
			})
		})

		When("the session is not authenticated", func() {
			BeforeEach(func() {
				fakeSession.AuthenticatedReturns(false)
			})

			It("should leave the collection empty without calling the server", func() {
				Expect(model.Load(ctx)).To(Succeed())
				Expect(model.Authenticated()).To(BeFalse())
				Expect(model.Len()).To(Equal(0))
				Expect(fakeAPI.TodosCallCount()).To(Equal(0))
			})
		})

		When("the fetch fails", func() {
			BeforeEach(func() {
				fakeAPI.TodosReturns(nil, fakeErr)
			})

			It("should return the error and record the message", func() {
				Expect(model.Load(ctx)).To(MatchError(fakeErr))
				Expect(model.ErrorMessage()).To(Equal(fakeErr.Error()))
			})
		})
	})

	Describe("Add", func() {
		BeforeEach(func() {
			fakeAPI.CreateTodoReturns(client.Todo{ID: 7, Title: "buy milk"}, nil)
		})

		It("should insert the todo only after the server assigns its id", func() {
			todo, err := model.Add(ctx, "buy milk")
			Expect(err).NotTo(HaveOccurred())
			Expect(todo.ID).To(Equal(uint64(7)))
			Expect(model.Len()).To(Equal(1))

			_, argTitle := fakeAPI.CreateTodoArgsForCall(0)
			Expect(argTitle).To(Equal("buy milk"))
		})

		When("the server call fails", func() {
			BeforeEach(func() {
				fakeAPI.CreateTodoReturns(client.Todo{}, fakeErr)
			})

			It("should leave the collection untouched", func() {
				_, err := model.Add(ctx, "buy milk")
				Expect(err).To(MatchError(fakeErr))
				Expect(model.Len()).To(Equal(0))
				Expect(model.ErrorMessage()).To(Equal(fakeErr.Error()))
			})
		})
	})

	Describe("Toggle", func() {
		BeforeEach(func() {
			load(client.Todo{ID: 1, Title: "first"})
			fakeAPI.UpdateTodoReturns(client.Todo{ID: 1, Title: "first", IsCompleted: true}, nil)
		})

		It("should flip the completion flag and confirm with the server", func() {
			Expect(model.Toggle(ctx, 1)).To(Succeed())

			todo, _ := model.Get(1)
			Expect(todo.IsCompleted).To(BeTrue())

			Expect(fakeAPI.UpdateTodoCallCount()).To(Equal(1))
			_, argId, argUpdate := fakeAPI.UpdateTodoArgsForCall(0)
			Expect(argId).To(Equal(uint64(1)))
			Expect(argUpdate.Title).To(BeNil())
			Expect(*argUpdate.IsCompleted).To(BeTrue())
		})

		It("should return to the original state after two toggles", func() {
			Expect(model.Toggle(ctx, 1)).To(Succeed())
			Expect(model.Toggle(ctx, 1)).To(Succeed())

			todo, _ := model.Get(1)
			Expect(todo.IsCompleted).To(BeFalse())

			_, _, argUpdate := fakeAPI.UpdateTodoArgsForCall(1)
			Expect(*argUpdate.IsCompleted).To(BeFalse())
		})

		When("the server call fails", func() {
			BeforeEach(func() {
				fakeAPI.UpdateTodoReturns(client.Todo{}, fakeErr)
			})

			It("should revert the entry to its previous state", func() {
				Expect(model.Toggle(ctx, 1)).To(MatchError(fakeErr))

				todo, _ := model.Get(1)
				Expect(todo.IsCompleted).To(BeFalse())
				Expect(model.ErrorMessage()).To(Equal(fakeErr.Error()))
			})
		})

		When("the id is not in the collection", func() {
			It("should fail without calling the server", func() {
				Expect(model.Toggle(ctx, 99)).To(HaveOccurred())
				Expect(fakeAPI.UpdateTodoCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Remove", func() {
		BeforeEach(func() {
			load(
				client.Todo{ID: 1, Title: "first"},
				client.Todo{ID: 2, Title: "second", IsCompleted: true},
			)
		})

		It("should remove the entry and confirm with the server", func() {
			Expect(model.Remove(ctx, 1)).To(Succeed())
			Expect(model.Len()).To(Equal(1))

			_, ok := model.Get(1)
			Expect(ok).To(BeFalse())

			Expect(fakeAPI.DeleteTodoCallCount()).To(Equal(1))
			_, argId := fakeAPI.DeleteTodoArgsForCall(0)
			Expect(argId).To(Equal(uint64(1)))
		})

		When("the server call fails", func() {
			BeforeEach(func() {
				fakeAPI.DeleteTodoReturns(fakeErr)
			})

			It("should restore the collection exactly", func() {
				before := model.All()

				Expect(model.Remove(ctx, 1)).To(MatchError(fakeErr))
				Expect(model.All()).To(Equal(before))
				Expect(model.ErrorMessage()).To(Equal(fakeErr.Error()))
			})
		})
	})

	Describe("Partition", func() {
		BeforeEach(func() {
			load(
				client.Todo{ID: 1, Title: "first"},
				client.Todo{ID: 2, Title: "second", IsCompleted: true},
				client.Todo{ID: 3, Title: "third"},
				client.Todo{ID: 4, Title: "fourth", IsCompleted: true},
			)
		})

		It("should split the collection with each side newest first", func() {
			incomplete, completed := model.Partition()

			Expect(incomplete).To(HaveLen(2))
			Expect(incomplete[0].ID).To(Equal(uint64(3)))
			Expect(incomplete[1].ID).To(Equal(uint64(1)))

			Expect(completed).To(HaveLen(2))
			Expect(completed[0].ID).To(Equal(uint64(4)))
			Expect(completed[1].ID).To(Equal(uint64(2)))
		})

		It("should reflect a toggle in the next call", func() {
			fakeAPI.UpdateTodoReturns(client.Todo{}, nil)
			Expect(model.Toggle(ctx, 3)).To(Succeed())

			incomplete, completed := model.Partition()
			Expect(incomplete).To(HaveLen(1))
			Expect(completed).To(HaveLen(3))
			Expect(completed[0].ID).To(Equal(uint64(4)))
		})
	})

	Describe("All", func() {
		It("should return the collection newest first", func() {
			load(
				client.Todo{ID: 1},
				client.Todo{ID: 3},
				client.Todo{ID: 2},
			)

			todos := model.All()
			Expect(todos).To(HaveLen(3))
			Expect(todos[0].ID).To(Equal(uint64(3)))
			Expect(todos[1].ID).To(Equal(uint64(2)))
			Expect(todos[2].ID).To(Equal(uint64(1)))
		})
	})
})
