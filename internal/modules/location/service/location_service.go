package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"eventdeck/internal/modules/location/domain"
	locationout "eventdeck/internal/modules/location/port/out"
	"eventdeck/internal/platform/clock"
	apperrors "eventdeck/internal/platform/errors"
	"eventdeck/internal/platform/logging"
)

var ErrPermissionDenied = errors.New("location access is disabled")

type Options struct {
	Enabled bool
	Timeout time.Duration
}

// LocationService makes a single lookup attempt per process and remembers
// its result, good or bad.
type LocationService struct {
	opts     Options
	locators []locationout.Locator
	clock    clock.Clock
	log      hclog.Logger

	mu   sync.Mutex
	done bool
	fix  domain.Fix
	err  error
}

func NewLocationService(opts Options, clock clock.Clock, log hclog.Logger, locators ...locationout.Locator) *LocationService {
	return &LocationService{opts: opts, locators: locators, clock: clock, log: logging.OrNull(log).Named("location")}
}

// Locate tries each locator in order and returns the first valid fix. The
// returned error always wraps apperrors.ErrLocationUnavailable.
func (s *LocationService) Locate(ctx context.Context) (domain.Fix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return s.fix, s.err
	}
	s.fix, s.err = s.lookup(ctx)
	if s.err != nil && ctx.Err() != nil && errors.Is(ctx.Err(), context.Canceled) {
		// A cancelled caller is not a lookup attempt.
		return s.fix, s.err
	}
	s.done = true
	if s.err != nil {
		s.log.Warn("location unavailable", "error", s.err)
	} else {
		s.log.Info("location resolved", "source", s.fix.Source, "label", s.fix.DisplayLabel())
	}
	return s.fix, s.err
}

func (s *LocationService) lookup(ctx context.Context) (domain.Fix, error) {
	if !s.opts.Enabled {
		return domain.Fix{}, fmt.Errorf("%w: %w", apperrors.ErrLocationUnavailable, ErrPermissionDenied)
	}
	if len(s.locators) == 0 {
		return domain.Fix{}, fmt.Errorf("%w: no locator configured", apperrors.ErrLocationUnavailable)
	}
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}
	var errs []error
	for _, locator := range s.locators {
		fix, err := locator.Locate(ctx)
		if err == nil {
			err = fix.Validate()
		}
		if err != nil {
			errs = append(errs, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if fix.At.IsZero() {
			fix.At = s.clock.Now()
		}
		return fix, nil
	}
	return domain.Fix{}, fmt.Errorf("%w: %w", apperrors.ErrLocationUnavailable, errors.Join(errs...))
}
