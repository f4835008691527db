package main

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/arqlabs/arc"
	"github.com/arqlabs/arc/registry"
)

// payload is the resource type the monitor manages.
type payload struct {
	label string
}

// runDemo stresses one shared resource from several workers, then
// verifies the lifecycle invariants and prints the registry's view.
func runDemo(workers, rounds int) error {
	reg := registry.New()
	reg.Subscribe(registry.LogObserver{})

	base := arc.MakeShared(payload{label: "demo"}, arc.WithObserver(reg), arc.WithLabel("demo"))
	weak := base.Downgrade()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		seed := base.Clone()
		wg.Add(1)
		go func(h arc.Shared[payload], src int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(src))

			local := []arc.Shared[payload]{h}
			for n := 0; n < rounds; n++ {
				if r.Intn(2) == 0 && len(local) > 0 {
					c := local[r.Intn(len(local))].Clone()
					local = append(local, c)
				} else if len(local) > 0 {
					idx := r.Intn(len(local))
					local[idx].Drop()
					local = append(local[:idx], local[idx+1:]...)
				}
			}
			for i := range local {
				local[i].Drop()
			}
		}(seed, int64(i))
	}
	wg.Wait()

	fmt.Printf("%d workers joined: strong=%d expired=%v\n", workers, base.UseCount(), weak.Expired())

	base.Drop()
	if s, ok := weak.Lock(); ok {
		s.Drop()
		return fmt.Errorf("weak handle promoted after destruction")
	}
	fmt.Println("resource destroyed exactly once; promotion now fails")
	weak.Drop()

	if leaks := reg.Leaks(); len(leaks) > 0 {
		for _, l := range leaks {
			fmt.Printf("LEAK id=%d label=%q strong=%d weak=%d\n", l.ID, l.Label, l.Strong, l.Weak)
		}
		return fmt.Errorf("%d leaked resource(s)", len(leaks))
	}
	fmt.Println("registry clean: no leaks")
	return nil
}
