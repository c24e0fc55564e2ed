package httpapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

const (
	msgRequired      = "is required"
	msgNotInteger    = "must be an integer"
	msgNotString     = "must be a string"
	msgMalformedBody = "malformed JSON payload"
	msgEmptyBody     = "request body is required"
	msgNotObject     = "request body must be a JSON object"
	msgTooLarge      = "request body is too large"
)

var requestJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// teamDataRequest is the body shared by the roster and free agent routes. Pointers
// distinguish absent or null from zero values.
type teamDataRequest struct {
	LeagueID *int64  `json:"league_id" validate:"required"`
	ESPNS2   *string `json:"espn_s2"`
	SWID     *string `json:"swid"`
	TeamName *string `json:"team_name" validate:"required"`
	Year     *int    `json:"year" validate:"required"`
}

func (req teamDataRequest) toInput() usecase.TeamDataInput {
	return usecase.TeamDataInput{
		LeagueID: *req.LeagueID,
		Year:     *req.Year,
		ESPNS2:   req.ESPNS2,
		SWID:     req.SWID,
		TeamName: *req.TeamName,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeTeamDataRequest reads and type-checks the body field by field so every
// offending field is reported. Unknown fields are ignored.
func (h *Handler) decodeTeamDataRequest(ctx context.Context, r *http.Request) (teamDataRequest, error) {
	var req teamDataRequest

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes+1))
	if err != nil {
		return req, usecase.NewValidationError(usecase.FieldError{Field: "body", Message: msgMalformedBody})
	}
	if len(body) > maxRequestBodyBytes {
		return req, usecase.NewValidationError(usecase.FieldError{Field: "body", Message: msgTooLarge})
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return req, usecase.NewValidationError(usecase.FieldError{Field: "body", Message: msgEmptyBody})
	}

	if requestJSON.Get(body).ValueType() != jsoniter.ObjectValue {
		if !requestJSON.Valid(body) {
			return req, usecase.NewValidationError(usecase.FieldError{Field: "body", Message: msgMalformedBody})
		}
		return req, usecase.NewValidationError(usecase.FieldError{Field: "body", Message: msgNotObject})
	}

	var raw map[string]jsoniter.RawMessage
	if err := requestJSON.Unmarshal(body, &raw); err != nil {
		return req, usecase.NewValidationError(usecase.FieldError{Field: "body", Message: msgMalformedBody})
	}

	var fields []usecase.FieldError
	check := func(name, msg string, err error) {
		if err != nil {
			fields = append(fields, usecase.FieldError{Field: name, Message: msg})
		}
	}

	req.LeagueID, err = decodeField[int64](raw["league_id"])
	check("league_id", msgNotInteger, err)
	req.ESPNS2, err = decodeField[string](raw["espn_s2"])
	check("espn_s2", msgNotString, err)
	req.SWID, err = decodeField[string](raw["swid"])
	check("swid", msgNotString, err)
	req.TeamName, err = decodeField[string](raw["team_name"])
	check("team_name", msgNotString, err)
	req.Year, err = decodeField[int](raw["year"])
	check("year", msgNotInteger, err)

	if len(fields) > 0 {
		return req, usecase.NewValidationError(fields...)
	}

	if err := h.validateRequest(ctx, req); err != nil {
		return req, err
	}
	return req, nil
}

// decodeField returns nil for an absent or null value.
func decodeField[T any](raw jsoniter.RawMessage) (*T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var out T
	if err := requestJSON.Unmarshal(trimmed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	err := h.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return usecase.NewValidationError(usecase.FieldError{Field: "body", Message: err.Error()})
	}

	fields := make([]usecase.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := msgRequired
		if fe.Tag() != "required" {
			msg = "failed " + fe.Tag() + " validation"
		}
		fields = append(fields, usecase.FieldError{Field: fe.Field(), Message: msg})
	}
	return usecase.NewValidationError(fields...)
}
