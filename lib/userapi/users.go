package userapi

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	CreatedUserFile = "user.json"
	UpdatedUserFile = "updated_user.json"
	jsonContentType = "application/json"
)

// CreateUser writes `data` to user.json and then POSTs to the collection.
// The payload is only sent along when the client was built with
// AttachRequestBody.
func (c *Client) CreateUser(ctx context.Context, data string) (string, bool, error) {
	ctx, span := tracer.Start(ctx, "client:CreateUser")
	defer span.End()

	return c.writeAndSend(ctx, http.MethodPost, c.baseUrl, CreatedUserFile, data)
}

// UpdateUser writes `data` to updated_user.json and then PUTs to the user.
func (c *Client) UpdateUser(ctx context.Context, userId int, data string) (string, bool, error) {
	ctx, span := tracer.Start(ctx, "client:UpdateUser")
	defer span.End()
	span.SetAttributes(attribute.Int("user_id", userId))

	return c.writeAndSend(ctx, http.MethodPut, c.userUrl(userId), UpdatedUserFile, data)
}

func (c *Client) writeAndSend(ctx context.Context, method, link, file, data string) (string, bool, error) {
	span := trace.SpanFromContext(ctx)

	_, err := c.writeFile(file, []byte(data))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write request body")
		return "", false, err
	}

	req := Request{
		Method:      method,
		URL:         link,
		ContentType: jsonContentType,
	}
	if c.attachRequestBody {
		req.Body = []byte(data)
	}

	body, ok, err := c.Do(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
	}
	return body, ok, err
}

// DeleteUser prints whether the deletion succeeded. Only transport faults
// are returned.
func (c *Client) DeleteUser(ctx context.Context, userId int) error {
	ctx, span := tracer.Start(ctx, "client:DeleteUser")
	defer span.End()
	span.SetAttributes(attribute.Int("user_id", userId))

	link := c.userUrl(userId)
	res, err := c.http.R().
		SetContext(ctx).
		Delete(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return fmt.Errorf("DELETE %s: %w", link, err)
	}

	if res.IsSuccess() {
		fmt.Fprintf(c.out, "User %d deleted successfully.\n", userId)
		return nil
	}
	span.SetStatus(codes.Error, res.Status())
	fmt.Fprintf(c.out, "Failed to delete user. Status code: %d\n", res.StatusCode())
	return nil
}

func (c *Client) ListUsers(ctx context.Context) (string, bool, error) {
	ctx, span := tracer.Start(ctx, "client:ListUsers")
	defer span.End()

	return c.get(ctx, c.baseUrl)
}

func (c *Client) GetUserByID(ctx context.Context, userId int) (string, bool, error) {
	ctx, span := tracer.Start(ctx, "client:GetUserByID")
	defer span.End()
	span.SetAttributes(attribute.Int("user_id", userId))

	return c.get(ctx, c.userUrl(userId))
}

// GetUserByUsername queries the collection with ?username=. The username is
// placed into the query as-is, without escaping.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (string, bool, error) {
	ctx, span := tracer.Start(ctx, "client:GetUserByUsername")
	defer span.End()
	span.SetAttributes(attribute.String("username", username))

	return c.get(ctx, c.baseUrl+"?username="+username)
}
