package rpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hzy1919/pns-sdk/contenturi"
)

var (
	// ErrInvalidLabel is returned by Client.DecodeLabel and Client.LabelHash
	// when the server rejected the label's format.
	ErrInvalidLabel = errors.New("rpc: invalid label")

	errRootLabel = errors.New("the root label has no labelhash")
)

// mapContentRPC turns a status error from a content call back into the
// contenturi sentinel it came from.
func mapContentRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return contenturi.ErrNoProtocol
	case codes.InvalidArgument:
		return contenturi.ErrInvalidPayload
	default:
		return err
	}
}

func mapLabelRPC(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.InvalidArgument {
		return ErrInvalidLabel
	}
	return err
}
