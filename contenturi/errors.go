package contenturi

import "errors"

var (
	// ErrNoProtocol reports that no recognized protocol form matched.
	ErrNoProtocol = errors.New("contenturi: no protocol recognized")
	// ErrInvalidPayload reports a payload that does not decode.
	ErrInvalidPayload = errors.New("contenturi: invalid payload")
	// ErrUnsupported reports a protocol with no binary contenthash mapping.
	ErrUnsupported = errors.New("contenturi: unsupported protocol")
)

func IsNoProtocol(err error) bool { return errors.Is(err, ErrNoProtocol) }
