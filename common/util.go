package common

import (
	"errors"
	"sync"
)

// RunParallel runs every function in its own goroutine and waits for all of
// them to return. It reports the joined error and how many of them failed.
func RunParallel(funcs ...func() error) (error, int) {
	var wg sync.WaitGroup
	errCh := make(chan error, len(funcs))

	for _, fn := range funcs {
		wg.Add(1)
		go func(fn func() error) {
			defer wg.Done()
			if err := fn(); err != nil {
				errCh <- err
			}
		}(fn)
	}
	wg.Wait()
	close(errCh)

	errs := []error{}
	for err := range errCh {
		errs = append(errs, err)
	}
	return errors.Join(errs...), len(errs)
}
