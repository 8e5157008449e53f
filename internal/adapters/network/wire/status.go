package wire

import (
	"errors"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps domain errors onto gRPC codes. The message keeps the full chain.
func toStatus(err error) error {
	code := codes.Internal
	switch {
	case errors.Is(err, domain.ErrBitNotFound), errors.Is(err, domain.ErrBitNotInScope):
		code = codes.NotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrMalformedID),
		errors.Is(err, domain.ErrArchiveFailed), errors.Is(err, domain.ErrUnsupportedSchema):
		code = codes.InvalidArgument
	case errors.Is(err, domain.ErrRemoteNotFound):
		code = codes.FailedPrecondition
	}
	return status.Error(code, err.Error())
}

// fromStatus restores the domain sentinel a status stands for. Other codes,
// an unreachable server included, keep the status itself in the chain.
func fromStatus(err error, address string) error {
	st, ok := status.FromError(err)
	if !ok {
		return zerr.With(zerr.Wrap(err, "remote call failed"), "remote", address)
	}

	var sentinel error
	switch st.Code() {
	case codes.NotFound:
		sentinel = domain.ErrBitNotFound
	case codes.InvalidArgument:
		sentinel = domain.ErrRemoteRejected
	case codes.FailedPrecondition:
		sentinel = domain.ErrRemoteNotFound
	default:
		return zerr.With(zerr.Wrap(err, "remote call failed"), "remote", address)
	}
	return zerr.With(zerr.Wrap(sentinel, st.Message()), "remote", address)
}
