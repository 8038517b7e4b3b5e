package levels

import (
	"errors"
	"fmt"

	"github.com/milk9111/bombsim/logger"
	"github.com/sirupsen/logrus"
)

// ErrUnknownKind is returned for elements whose kind is not registered.
var ErrUnknownKind = errors.New("unknown kind")

// ElementError is a problem with one element of a section file.
type ElementError struct {
	Index int
	Kind  string
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// Report is the outcome of loading a section: how many elements were
// placed, how many were skipped by their switch and what failed.
type Report struct {
	Section  string
	Elements int
	Placed   int
	Skipped  int
	errs     []error
}

func (r *Report) Add(index int, kind string, err error) {
	r.errs = append(r.errs, &ElementError{Index: index, Kind: kind, Err: err})
}

// Errors returns the element errors in file order.
func (r *Report) Errors() []error { return r.errs }

// Err joins every element error, or returns nil when the load was clean.
func (r *Report) Err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return fmt.Errorf("levels: section %s: %w", r.Section, errors.Join(r.errs...))
}

// Log writes the report to the shared logger, one line per error.
func (r *Report) Log() {
	entry := logger.Log.WithFields(logrus.Fields{
		"section":  r.Section,
		"elements": r.Elements,
		"placed":   r.Placed,
		"skipped":  r.Skipped,
	})
	for _, err := range r.errs {
		entry.WithError(err).Warn("element rejected")
	}
	if len(r.errs) == 0 {
		entry.Info("section loaded")
		return
	}
	entry.WithField("errors", len(r.errs)).Error("section failed to load")
}
