// Package parallel contains the bounded fan-out used by the SOM trainer's
// Compete phase.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// DefaultWorkers reports the number of workers to use when the caller does
// not choose one: the logical core count reported by cpuid, or
// runtime.NumCPU when cpuid cannot tell. Never returns less than 1.
func DefaultWorkers() int {
	n := cpuid.CPU.LogicalCores
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n < 1 {
		n = 1
	}

	return n
}

// ForEach calls body(i) for every i in [0, length) using at most limit
// concurrent goroutines. It returns only after every body call has returned,
// so all writes made by body are visible to the caller.
//
// With limit <= 1 the loop runs inline on the calling goroutine, in order.
func ForEach(length, limit int, body func(i int)) {
	if length <= 0 {
		return
	}
	if limit <= 1 {
		for i := 0; i < length; i++ {
			body(i)
		}
		return
	}

	sem := make(chan struct{}, limit) // semaphore with buffer size 'limit'
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
}

// ForEachChunk splits [0, length) into at most limit contiguous chunks and
// calls body(lo, hi) once per chunk, concurrently. Like ForEach it returns
// only after every chunk is done. Chunking keeps goroutine overhead
// proportional to limit instead of length.
func ForEachChunk(length, limit int, body func(lo, hi int)) {
	if length <= 0 {
		return
	}
	if limit < 1 {
		limit = 1
	}
	if limit > length {
		limit = length
	}
	size := (length + limit - 1) / limit

	ForEach(limit, limit, func(k int) {
		lo := k * size
		if lo >= length {
			return
		}
		hi := lo + size
		if hi > length {
			hi = length
		}
		body(lo, hi)
	})
}
