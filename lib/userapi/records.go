package userapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse is returned when a body does not have the shape
	// an operation needs: not a JSON array, or an element missing a required
	// field or carrying it with the wrong type.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrNoResponse is returned by the reports when a fetch they depend on
	// came back with a non-2xx status.
	ErrNoResponse = errors.New("no response body")
)

type Post struct {
	ID int
}

type Todo struct {
	Title     string
	Completed bool
}

type User struct {
	ID       int
	Name     string
	Username string
	Email    string
}

func decodeArray[T any](body []byte) ([]T, error) {
	var out []T
	err := json.Unmarshal(body, &out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	// `null` decodes into a nil slice without error
	if out == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformedResponse)
	}
	return out, nil
}

func missingField(kind string, index int, field string) error {
	return fmt.Errorf("%w: %s %d is missing %q", ErrMalformedResponse, kind, index, field)
}

func ParsePosts(body []byte) ([]Post, error) {
	raw, err := decodeArray[struct {
		ID *int `json:"id"`
	}](body)
	if err != nil {
		return nil, err
	}

	posts := make([]Post, len(raw))
	for i, p := range raw {
		if p.ID == nil {
			return nil, missingField("post", i, "id")
		}
		posts[i] = Post{ID: *p.ID}
	}
	return posts, nil
}

func ParseTodos(body []byte) ([]Todo, error) {
	raw, err := decodeArray[struct {
		Title     *string `json:"title"`
		Completed *bool   `json:"completed"`
	}](body)
	if err != nil {
		return nil, err
	}

	todos := make([]Todo, len(raw))
	for i, t := range raw {
		if t.Title == nil {
			return nil, missingField("todo", i, "title")
		}
		if t.Completed == nil {
			return nil, missingField("todo", i, "completed")
		}
		todos[i] = Todo{Title: *t.Title, Completed: *t.Completed}
	}
	return todos, nil
}

func ParseUsers(body []byte) ([]User, error) {
	raw, err := decodeArray[struct {
		ID       *int    `json:"id"`
		Name     string  `json:"name"`
		Username *string `json:"username"`
		Email    string  `json:"email"`
	}](body)
	if err != nil {
		return nil, err
	}

	users := make([]User, len(raw))
	for i, u := range raw {
		if u.ID == nil {
			return nil, missingField("user", i, "id")
		}
		if u.Username == nil {
			return nil, missingField("user", i, "username")
		}
		users[i] = User{
			ID:       *u.ID,
			Name:     u.Name,
			Username: *u.Username,
			Email:    u.Email,
		}
	}
	return users, nil
}

// LastPostID returns the largest post id, counting up from 0. An empty
// list (or one with only non-positive ids) yields 0.
func LastPostID(posts []Post) int {
	last := 0
	for _, p := range posts {
		if p.ID > last {
			last = p.ID
		}
	}
	return last
}

// FilterOpen keeps the todos that are not completed, in order.
func FilterOpen(todos []Todo) []Todo {
	var open []Todo
	for _, t := range todos {
		if !t.Completed {
			open = append(open, t)
		}
	}
	return open
}
