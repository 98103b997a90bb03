package errors

// Document store mapping for the MongoDB and Firestore drivers

import (
	"context"
	stderrs "errors"

	"go.mongodb.org/mongo-driver/mongo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsNoDocuments reports whether err is the mongo empty result sentinel
func IsNoDocuments(err error) bool { return stderrs.Is(err, mongo.ErrNoDocuments) }

// FromMongo wraps a mongo driver error with a mapped ErrorCode
func FromMongo(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case IsNoDocuments(err):
		return Wrap(err, ErrorCodeNotFound, msg)
	case mongo.IsDuplicateKeyError(err):
		return Wrap(err, ErrorCodeDuplicateKey, msg)
	case mongo.IsTimeout(err), mongo.IsNetworkError(err),
		stderrs.Is(err, context.Canceled), stderrs.Is(err, context.DeadlineExceeded):
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// IsGRPCNotFound reports whether err carries the gRPC NotFound status
// Firestore reports missing documents this way
func IsGRPCNotFound(err error) bool { return status.Code(err) == codes.NotFound }

// FromFirestore wraps a Firestore error with a mapped ErrorCode
func FromFirestore(err error, msg string) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.NotFound:
		return Wrap(err, ErrorCodeNotFound, msg)
	case codes.AlreadyExists:
		return Wrap(err, ErrorCodeDuplicateKey, msg)
	case codes.Aborted, codes.FailedPrecondition:
		return Wrap(err, ErrorCodeConflict, msg)
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled, codes.ResourceExhausted:
		return Wrap(err, ErrorCodeUnavailable, msg)
	case codes.PermissionDenied, codes.Unauthenticated:
		// credentials of the service itself, not of the caller
		return Wrap(err, ErrorCodeDB, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}
