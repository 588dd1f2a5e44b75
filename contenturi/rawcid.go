package contenturi

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// FromBytes returns an ipfs:// URI naming data as a single raw block: a
// CIDv1 with the "raw" multicodec and a sha2-256 multihash. This is the CID
// `ipfs block put` reports for the same bytes.
func FromBytes(data []byte) (URI, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return URI{}, err
	}
	return URI{Protocol: IPFS, Payload: cid.NewCidV1(cid.Raw, sum).String()}, nil
}
