package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "fantasy-basketball-proxy"
)

type googleErrorEnvelope struct {
	APIVersion string          `json:"apiVersion"`
	Error      googleErrorBody `json:"error"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain       string `json:"domain"`
	Reason       string `json:"reason"`
	Message      string `json:"message"`
	Location     string `json:"location,omitempty"`
	LocationType string `json:"locationType,omitempty"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

var responseBufferPool bytebufferpool.Pool

// writeJSON encodes payload completely before the status line is sent, so a failed
// encode never leaves a partial body behind.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := responseBufferPool.Get()
	defer responseBufferPool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	if mapped.HTTPStatus == http.StatusInternalServerError {
		writeInternalError(ctx, w)
		return
	}

	writeJSON(ctx, w, mapped.HTTPStatus, googleErrorEnvelope{
		APIVersion: googleAPIVersion,
		Error: googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: err.Error(),
			Status:  mapped.Status,
			Errors:  errorItems(err, mapped),
		},
	})
}

// errorItems returns one item per rejected field for validation errors and a single
// item otherwise.
func errorItems(err error, mapped mappedError) []googleErrorItem {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		items := make([]googleErrorItem, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			items = append(items, googleErrorItem{
				Domain:       errorDomain,
				Reason:       fieldReason(f),
				Message:      f.Message,
				Location:     f.Field,
				LocationType: "body",
			})
		}
		return items
	}

	return []googleErrorItem{
		{
			Domain:  errorDomain,
			Reason:  mapped.Reason,
			Message: err.Error(),
		},
	}
}

func fieldReason(f usecase.FieldError) string {
	switch f.Message {
	case msgRequired:
		return "required"
	case msgMalformedBody, msgEmptyBody, msgNotObject:
		return "parseError"
	default:
		return "invalidParameter"
	}
}

// writeInternalError never exposes the underlying error text.
func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	_, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	const msg = "internal server error"

	raw, err := sonic.Marshal(googleErrorEnvelope{
		APIVersion: googleAPIVersion,
		Error: googleErrorBody{
			Code:    http.StatusInternalServerError,
			Message: msg,
			Status:  "INTERNAL",
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  "internalError",
					Message: msg,
				},
			},
		},
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	if err == nil {
		_, _ = w.Write(raw)
	}
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrTeamNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "teamNotFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Reason:     "dependencyUnavailable",
			Status:     "UNAVAILABLE",
		}
	case errors.Is(err, usecase.ErrProvider):
		return mappedError{
			HTTPStatus: http.StatusBadGateway,
			Reason:     "upstreamError",
			Status:     "BAD_GATEWAY",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}
