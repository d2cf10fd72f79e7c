package gid_test

import (
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/luma/skiff/internal/gid"
)

var _ = Describe("gid", func() {
	It("returns a non-zero id", func() {
		Expect(gid.Get()).NotTo(BeZero())
	})

	It("is stable within one goroutine", func() {
		Expect(gid.Get()).To(Equal(gid.Get()))
	})

	It("differs across goroutines", func() {
		ids := make(map[uint64]struct{})

		var (
			mu sync.Mutex
			wg sync.WaitGroup
		)

		for i := 0; i < 16; i++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				id := gid.Get()

				mu.Lock()
				ids[id] = struct{}{}
				mu.Unlock()
			}()
		}

		wg.Wait()
		Expect(ids).To(HaveLen(16))
	})
})
