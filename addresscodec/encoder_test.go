package addresscodec

import (
	"fmt"
	"sync"

	. "gopkg.in/check.v1"
)

func (s *CodecSuite) TestConcurrentRoundTrip(c *C) {
	const (
		workers = 16
		rounds  = 500
	)
	encoder := Default()
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			id := make([]byte, AccountIDLength)
			id[0] = byte(w)
			for i := 0; i < rounds; i++ {
				id[AccountIDLength-2] = byte(i >> 8)
				id[AccountIDLength-1] = byte(i)
				address, err := encoder.EncodeAccountID(id)
				if err != nil {
					errCh <- err
					return
				}
				decoded, err := encoder.DecodeAccountID(address)
				if err != nil {
					errCh <- err
					return
				}
				if b2h(decoded) != b2h(id) {
					errCh <- fmt.Errorf("worker %d round %d: got %X want %X", w, i, decoded, id)
					return
				}
				if !encoder.IsValidAddress(address) {
					errCh <- fmt.Errorf("worker %d round %d: %v reported invalid", w, i, address)
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		c.Error(err)
	}
}

func (s *CodecSuite) TestNilCodec(c *C) {
	for _, encoder := range []*Encoder{NewEncoder(nil), nil} {
		c.Check(encoder.IsValidAddress(AccountRoot), Equals, false)

		_, err := encoder.EncodeAccountID(make([]byte, AccountIDLength))
		c.Check(err, Equals, ErrNilCodec)
		_, err = encoder.DecodeAccountID(AccountRoot)
		c.Check(err, Equals, ErrNilCodec)
		_, err = encoder.EncodeSeed(make([]byte, SeedLength), SeedTypeEd25519)
		c.Check(err, Equals, ErrNilCodec)
		_, err = encoder.DecodeSeed("sn259rEFXrQrWyx3Q7XneWcwV6dfL")
		c.Check(err, Equals, ErrNilCodec)
		_, err = encoder.Identify(AccountRoot)
		c.Check(err, Equals, ErrNilCodec)
	}
}
