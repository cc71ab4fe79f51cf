package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bjaus/humadocs"
)

// User is the sample API's only resource.
type User struct {
	ID    string `json:"id" doc:"Server-assigned identifier"`
	Name  string `json:"name" doc:"Display name"`
	Email string `json:"email" doc:"Contact address"`
}

type userStore struct {
	mu    sync.Mutex
	seq   int
	users map[string]User
}

var store = &userStore{users: map[string]User{}}

func (s *userStore) create(name, email string) User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	u := User{ID: fmt.Sprintf("u%d", s.seq), Name: name, Email: email}
	s.users[u.ID] = u
	return u
}

func (s *userStore) get(id string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *userStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[id]
	delete(s.users, id)
	return ok
}

func (s *userStore) list() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]User, 0, len(s.users))
	for i := 1; i <= s.seq; i++ {
		if u, ok := s.users[fmt.Sprintf("u%d", i)]; ok {
			out = append(out, u)
		}
	}
	return out
}

type ListUsersInput struct{}

type ListUsersOutput struct {
	Body struct {
		Users []User `json:"users"`
	}
}

// ListUsers returns every user known to the server.
// Results are ordered by creation time.
//
//docsgen:operation
func ListUsers(_ context.Context, _ *ListUsersInput) (*ListUsersOutput, error) {
	resp := &ListUsersOutput{}
	resp.Body.Users = store.list()
	return resp, nil
}

type GetUserInput struct {
	ID string `path:"id" doc:"User identifier"`
}

type GetUserOutput struct {
	Body User
}

// GetUser returns a single user by id.
//
//docsgen:operation
func GetUser(_ context.Context, in *GetUserInput) (*GetUserOutput, error) {
	u, ok := store.get(in.ID)
	if !ok {
		return nil, huma.Error404NotFound("no such user: " + in.ID)
	}
	return &GetUserOutput{Body: u}, nil
}

type CreateUserInput struct {
	Body struct {
		Name  string `json:"name" doc:"Display name"`
		Email string `json:"email" doc:"Contact address"`
	}
}

type CreateUserOutput struct {
	Body User
}

// CreateUser creates a user.
// The id is assigned by the server and returned in the body.
//
//docsgen:operation
func CreateUser(_ context.Context, in *CreateUserInput) (*CreateUserOutput, error) {
	return &CreateUserOutput{Body: store.create(in.Body.Name, in.Body.Email)}, nil
}

type PingInput struct{}

type PingOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}

// Ping responds with a static message.
// Use /healthz instead; this route remains for old clients.
//
//docsgen:operation tag="System" deprecated
func Ping(_ context.Context, _ *PingInput) (*PingOutput, error) {
	resp := &PingOutput{}
	resp.Body.Message = "pong"
	return resp, nil
}

// Output-based handlers below are documented inline with RouteInfo rather
// than through docsgen companions.

func healthz(huma.Context) (humadocs.Output, error) {
	return humadocs.Text("ok"), nil
}

func deleteUser(ctx huma.Context) (humadocs.Output, error) {
	if !store.delete(ctx.Param("id")) {
		return nil, huma.Error404NotFound("no such user: " + ctx.Param("id"))
	}
	return humadocs.NoContent{}, nil
}

func downloadAvatar(ctx huma.Context) (humadocs.Output, error) {
	u, ok := store.get(ctx.Param("id"))
	if !ok {
		return nil, huma.Error404NotFound("no such user: " + ctx.Param("id"))
	}
	return humadocs.WithHeaders{
		Header: http.Header{"Cache-Control": []string{"no-store"}},
		Inner:  humadocs.Text("avatar placeholder for " + u.Name),
	}, nil
}
