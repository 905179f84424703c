package common

import (
	"encoding/json"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Services return status errors so the taxonomy stays transport independent.
// Handlers only ever translate them with HTTPStatus/WriteError.

func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

func NotFound(msg string) error {
	return status.Error(codes.NotFound, msg)
}

func PermissionDenied(msg string) error {
	return status.Error(codes.PermissionDenied, msg)
}

func Conflict(msg string) error {
	return status.Error(codes.AlreadyExists, msg)
}

func Internal(msg string) error {
	return status.Error(codes.Internal, msg)
}

func Unauthenticated(msg string) error {
	return status.Error(codes.Unauthenticated, msg)
}

// HTTPStatus maps a service error to its HTTP status class. Unknown errors
// (raw gorm/redis failures that escaped the service) become 500.
func HTTPStatus(err error) int {
	s, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch s.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func IsCode(err error, c codes.Code) bool {
	s, ok := status.FromError(err)
	return ok && s.Code() == c
}

type errorBody struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatus(err))

	msg := err.Error()
	if s, ok := status.FromError(err); ok {
		msg = s.Message()
	}
	json.NewEncoder(w).Encode(errorBody{Message: msg})
}

func WriteJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
