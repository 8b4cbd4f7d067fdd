package helper

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"
)

// Randomly seeded so numbers do not repeat across process restarts that
// land in the same millisecond.
var orderSeq = rand.Uint32()

// GenerateOrderNumber produces a short human-legible order number:
// a fixed prefix, the creation time in unix milliseconds, and a
// four-digit sequence disambiguator. Back-to-back calls within the same
// millisecond still differ because the sequence is a process-wide atomic
// counter. The order store additionally enforces uniqueness with a
// unique index; on a duplicate-key insert the caller regenerates and
// retries.
func GenerateOrderNumber() string {
	seq := atomic.AddUint32(&orderSeq, 1) % 10000
	return fmt.Sprintf("ORD-%d-%04d", time.Now().UnixMilli(), seq)
}
