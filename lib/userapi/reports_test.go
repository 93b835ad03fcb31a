package userapi

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const comments = `[{"postId":12,"id":56,"body":"first"},
{"postId":12,"id":57,"body":"second"}]
`

func TestCommentsForLastPost(t *testing.T) {
	u := newUpstream(t, routes(map[string]string{
		"/users/1/posts":     `[{"id":5},{"id":12},{"id":3}]`,
		"/posts/12/comments": comments,
	}))
	client := newTestClient(t, u.server.URL+"/users", false)

	report, err := client.CommentsForLastPost(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, CommentsReport{
		UserID: 1,
		PostID: 12,
		File:   filepath.Join(client.dir, "user-1-post-12-comments.json"),
	}, report)
	require.Equal(t, comments, readOutput(t, client.dir, "user-1-post-12-comments.json"))
	require.Equal(t, "Comments for user 1, post 12 written to file.\n", client.out.String())

	requests := u.Requests()
	require.Len(t, requests, 2)
	require.Equal(t, "/users/1/posts", requests[0].Path)
	require.Equal(t, "/posts/12/comments", requests[1].Path)
}

func TestCommentsForLastPostWithoutPosts(t *testing.T) {
	u := newUpstream(t, routes(map[string]string{
		"/users/9/posts":    `[]`,
		"/posts/0/comments": `[]`,
	}))
	client := newTestClient(t, u.server.URL+"/users", false)

	report, err := client.CommentsForLastPost(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, 0, report.PostID)
	require.Equal(t, "[]", readOutput(t, client.dir, "user-9-post-0-comments.json"))
	require.Equal(t, "Comments for user 9, post 0 written to file.\n", client.out.String())
	require.Equal(t, "/posts/0/comments", u.Requests()[1].Path)
}

func TestCommentsResolveAgainstHostRoot(t *testing.T) {
	u := newUpstream(t, routes(map[string]string{
		"/api/v1/users/2/posts": `[{"id":20}]`,
		"/posts/20/comments":    `[]`,
	}))
	client := newTestClient(t, u.server.URL+"/api/v1/users", false)

	report, err := client.CommentsForLastPost(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 20, report.PostID)
}

func TestCommentsForLastPostFailures(t *testing.T) {
	t.Run("posts unavailable", func(t *testing.T) {
		u := newUpstream(t, routes(map[string]string{}))
		client := newTestClient(t, u.server.URL+"/users", false)

		_, err := client.CommentsForLastPost(context.Background(), 1)
		require.ErrorIs(t, err, ErrNoResponse)
		require.Len(t, u.Requests(), 1)
		require.Equal(t, "Failed to get response. Status code: 404\n", client.out.String())
	})

	t.Run("comments unavailable", func(t *testing.T) {
		u := newUpstream(t, routes(map[string]string{
			"/users/1/posts": `[{"id":4}]`,
		}))
		client := newTestClient(t, u.server.URL+"/users", false)

		_, err := client.CommentsForLastPost(context.Background(), 1)
		require.ErrorIs(t, err, ErrNoResponse)
		require.NoFileExists(t, filepath.Join(client.dir, "user-1-post-4-comments.json"))
	})

	t.Run("malformed posts", func(t *testing.T) {
		u := newUpstream(t, routes(map[string]string{
			"/users/1/posts": `[{"title":"no id"}]`,
		}))
		client := newTestClient(t, u.server.URL+"/users", false)

		_, err := client.CommentsForLastPost(context.Background(), 1)
		require.ErrorIs(t, err, ErrMalformedResponse)
		require.Len(t, u.Requests(), 1)
	})
}

func TestOpenTasks(t *testing.T) {
	u := newUpstream(t, routes(map[string]string{
		"/users/1/todos": `[{"title":"A","completed":true},{"title":"B","completed":false}]`,
	}))
	client := newTestClient(t, u.server.URL+"/users", false)

	err := client.OpenTasks(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Open tasks for user 1:\n - B\n", client.out.String())
}

func TestOpenTasksNoneOpen(t *testing.T) {
	u := newUpstream(t, routes(map[string]string{
		"/users/1/todos": `[{"title":"A","completed":true}]`,
	}))
	client := newTestClient(t, u.server.URL+"/users", false)

	require.NoError(t, client.OpenTasks(context.Background(), 1))
	require.Equal(t, "Open tasks for user 1:\n", client.out.String())
}

func TestOpenTasksUnavailable(t *testing.T) {
	u := newUpstream(t, status(http.StatusInternalServerError, ""))
	client := newTestClient(t, u.server.URL+"/users", false)

	err := client.OpenTasks(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(
		t,
		"Failed to get response. Status code: 500\nFailed to get tasks for user 5\n",
		client.out.String(),
	)
}

func TestOpenTasksMalformed(t *testing.T) {
	u := newUpstream(t, routes(map[string]string{
		"/users/1/todos": `[{"title":"A"}]`,
	}))
	client := newTestClient(t, u.server.URL+"/users", false)

	err := client.OpenTasks(context.Background(), 1)
	require.ErrorIs(t, err, ErrMalformedResponse)
	require.Empty(t, client.out.String())
}
