package gramtab

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// A candidate is one surviving hypothesis during sequence parsing: the
// output accumulated so far, paired with the remnant input still to be
// consumed by the entries further right.
type candidate struct {
	out *Record
	rem *Record
}

// Simple stringer for debugging purposes.
func (c *candidate) String() string {
	if c == nil {
		return "[nil candidate]"
	}
	return fmt.Sprintf("[%v / %v]", c.out, c.rem)
}

// Candidates are short-lived objects: cross-product sequencing creates
// and discards them at a high rate, most of them on failing branches.
// To avoid multiple allocation of small objects we will pool them.
type candidatePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalCandidatePool *candidatePool

func init() {
	globalCandidatePool = &candidatePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			c := &candidate{}
			return c, nil
		})
	globalCandidatePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalCandidatePool.opool = pool.NewObjectPool(globalCandidatePool.ctx, factory, config)
}

// newPooledCandidate returns a candidate frame, pre-filled with an
// accumulated output and a remnant. The frame is pooled for efficiency.
func newPooledCandidate(out, rem *Record) *candidate {
	o, _ := globalCandidatePool.opool.BorrowObject(globalCandidatePool.ctx)
	c := o.(*candidate)
	c.out = out
	c.rem = rem
	return c
}

// Clears the candidate and puts it back into the pool.
func (c *candidate) releaseIntoPool() {
	c.out = nil
	c.rem = nil
	_ = globalCandidatePool.opool.ReturnObject(globalCandidatePool.ctx, c)
}

func releaseAll(cands []*candidate) {
	for _, c := range cands {
		c.releaseIntoPool()
	}
}
