// Package pipeline composes request gates into chi-compatible middleware.
//
// A Stage inspects a request and either hands back the request to continue
// with (possibly carrying a derived context) or returns an error that ends the
// request. One dispatcher runs the stages in order and renders the first error
// through apperror.WriteError, so every gate reports failures the same way.
package pipeline

import (
	"net/http"

	"github.com/user/changelog-api/apperror"
)

// Stage is one step of a request pipeline.
type Stage func(r *http.Request) (*http.Request, error)

// Run executes stages in order. It returns the request to hand downstream, or
// the first stage error.
func Run(r *http.Request, stages ...Stage) (*http.Request, error) {
	for _, stage := range stages {
		next, err := stage(r)
		if err != nil {
			return nil, err
		}
		if next != nil {
			r = next
		}
	}
	return r, nil
}

// Middleware turns stages into a `func(next http.Handler) http.Handler`, the shape
// chi's `Use` and `With` expect.
func Middleware(stages ...Stage) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			out, err := Run(r, stages...)
			if err != nil {
				apperror.WriteError(w, r, err)
				return
			}
			next.ServeHTTP(w, out)
		})
	}
}
