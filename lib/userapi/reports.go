package userapi

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func CommentsFileName(userId, postId int) string {
	return fmt.Sprintf("user-%d-post-%d-comments.json", userId, postId)
}

type CommentsReport struct {
	UserID int
	PostID int
	// File is the path the comments were written to.
	File string
}

// CommentsForLastPost fetches the comments of the user's post with the
// highest id and writes them to user-<user>-post-<post>-comments.json.
// A user without posts resolves to post 0, which is still requested.
func (c *Client) CommentsForLastPost(ctx context.Context, userId int) (CommentsReport, error) {
	ctx, span := tracer.Start(ctx, "client:CommentsForLastPost")
	defer span.End()
	span.SetAttributes(attribute.Int("user_id", userId))

	postsBody, ok, err := c.get(ctx, c.userUrl(userId)+"/posts")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch posts")
		return CommentsReport{}, err
	}
	if !ok {
		span.SetStatus(codes.Error, "posts unavailable")
		return CommentsReport{}, fmt.Errorf("posts of user %d: %w", userId, ErrNoResponse)
	}

	posts, err := ParsePosts([]byte(postsBody))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse posts")
		return CommentsReport{}, fmt.Errorf("posts of user %d: %w", userId, err)
	}
	postId := LastPostID(posts)
	span.SetAttributes(attribute.Int("post_id", postId))

	commentsUrl, err := c.rootUrl(fmt.Sprintf("/posts/%d/comments", postId))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to build comments url")
		return CommentsReport{}, err
	}
	commentsBody, ok, err := c.get(ctx, commentsUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch comments")
		return CommentsReport{}, err
	}
	if !ok {
		span.SetStatus(codes.Error, "comments unavailable")
		return CommentsReport{}, fmt.Errorf("comments of post %d: %w", postId, ErrNoResponse)
	}

	path, err := c.writeFile(CommentsFileName(userId, postId), []byte(commentsBody))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write comments")
		return CommentsReport{}, err
	}

	fmt.Fprintf(c.out, "Comments for user %d, post %d written to file.\n", userId, postId)
	return CommentsReport{UserID: userId, PostID: postId, File: path}, nil
}

// OpenTasks prints the titles of the user's todos that are not completed.
// A failed fetch is reported on the output rather than returned.
func (c *Client) OpenTasks(ctx context.Context, userId int) error {
	ctx, span := tracer.Start(ctx, "client:OpenTasks")
	defer span.End()
	span.SetAttributes(attribute.Int("user_id", userId))

	body, ok, err := c.get(ctx, c.userUrl(userId)+"/todos")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch todos")
		return err
	}
	if !ok {
		fmt.Fprintf(c.out, "Failed to get tasks for user %d\n", userId)
		return nil
	}

	todos, err := ParseTodos([]byte(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse todos")
		return fmt.Errorf("todos of user %d: %w", userId, err)
	}

	fmt.Fprintf(c.out, "Open tasks for user %d:\n", userId)
	for _, t := range FilterOpen(todos) {
		fmt.Fprintf(c.out, " - %s\n", t.Title)
	}
	return nil
}
