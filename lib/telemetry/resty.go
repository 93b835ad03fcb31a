package telemetry

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/semconv/v1.13.0/httpconv"
	"go.opentelemetry.io/otel/trace"
)

type restyInstrument struct {
	tracer   trace.Tracer
	requests metric.Int64Counter
}

// InstrumentResty opens a span for every request made through `client` and
// counts requests by method and outcome.
func InstrumentResty(client *resty.Client, name string) {
	requests, _ := Meter(name).Int64Counter(
		"http.client.requests",
		metric.WithDescription("HTTP requests issued, by method and status code."),
	)
	i := restyInstrument{
		tracer:   Tracer(name),
		requests: requests,
	}

	client.OnBeforeRequest(i.onBeforeRequest)
	client.OnAfterResponse(i.onAfterResponse)
	client.OnError(i.onError)
}

func (i restyInstrument) onBeforeRequest(_ *resty.Client, req *resty.Request) error {
	ctx, _ := i.tracer.Start(req.Context(), fmt.Sprintf("http %s", req.Method))
	req.SetContext(ctx)
	return nil
}

func (i restyInstrument) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	ctx := res.Request.Context()
	span := trace.SpanFromContext(ctx)
	defer span.End()

	// RawRequest is only populated after the request is sent
	span.SetAttributes(httpconv.ClientRequest(res.Request.RawRequest)...)
	span.SetAttributes(httpconv.ClientResponse(res.RawResponse)...)
	if !res.IsSuccess() {
		span.SetStatus(codes.Error, res.Status())
	}

	i.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", res.Request.Method),
		attribute.String("status", strconv.Itoa(res.StatusCode())),
	))
	return nil
}

func (i restyInstrument) onError(req *resty.Request, err error) {
	ctx := req.Context()
	span := trace.SpanFromContext(ctx)
	defer span.End()

	span.RecordError(err)
	span.SetStatus(codes.Error, "request failed")
	if req.RawRequest != nil {
		span.SetAttributes(httpconv.ClientRequest(req.RawRequest)...)
	}

	i.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", req.Method),
		attribute.String("status", "error"),
	))
}

// RestyLogger routes resty's own warnings through slog.
type RestyLogger struct{}

func (RestyLogger) Errorf(format string, v ...any) {
	slog.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "source", "resty")
}

func (RestyLogger) Warnf(format string, v ...any) {
	slog.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)), "source", "resty")
}

func (RestyLogger) Debugf(format string, v ...any) {
	slog.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "source", "resty")
}
