// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/patrickmn/go-cache"

	"github.com/danielhkuo/myballot/auth"
	"github.com/danielhkuo/myballot/ballot"
	"github.com/danielhkuo/myballot/catalog"
	"github.com/danielhkuo/myballot/models"
	"github.com/danielhkuo/myballot/notes"
	"github.com/danielhkuo/myballot/profile"
	"github.com/danielhkuo/myballot/settings"
	"github.com/danielhkuo/myballot/storage"
)

// InfoKey holds the device's registration metadata
const InfoKey = "device"

const defaultFlowTTL = 30 * time.Minute

var (
	ErrNotRegistered = errors.New("device not registered")
	// ErrUnavailable means the device's stored state could not be read.
	// Nothing is cached, so a later call retries the load.
	ErrUnavailable = errors.New("device storage unavailable")
)

type Options struct {
	Storage storage.Opener
	Catalog *catalog.Catalog
	Clock   clockwork.Clock
	// Salt keys the HMAC that turns device UUIDs into partition IDs
	Salt string
	// FlowTTL is how long an idle reminder flow is kept
	FlowTTL time.Duration
	Logger  *slog.Logger
}

// Registry hands out one Session per device for the life of the process
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	storage storage.Opener
	catalog *catalog.Catalog
	clock   clockwork.Clock
	salt    string
	logger  *slog.Logger
	flows   *flowCache
}

func NewRegistry(opts Options) *Registry {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.FlowTTL <= 0 {
		opts.FlowTTL = defaultFlowTTL
	}
	return &Registry{
		sessions: make(map[string]*Session),
		storage:  opts.Storage,
		catalog:  opts.Catalog,
		clock:    opts.Clock,
		salt:     opts.Salt,
		logger:   opts.Logger,
		flows:    &flowCache{c: cache.New(opts.FlowTTL, opts.FlowTTL*2)},
	}
}

// Catalog returns the shared reference data
func (r *Registry) Catalog() *catalog.Catalog {
	return r.catalog
}

// Session returns the session for a device UUID, loading it on first use
func (r *Registry) Session(ctx context.Context, deviceUUID string) (*Session, error) {
	if err := auth.ValidateDeviceUUID(deviceUUID); err != nil {
		return nil, err
	}
	id := auth.DeviceKey(deviceUUID, r.salt)

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		return s, nil
	}

	logger := r.logger.With("device_id", id)
	st := r.storage.Open(id)
	// The session is cached past this request
	loadCtx := context.WithoutCancel(ctx)

	ballotStore, err := ballot.New(loadCtx, ballot.Options{
		Storage:  st,
		Catalog:  r.catalog,
		Clock:    r.clock,
		Location: r.catalog.Location(),
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	prefs, err := settings.Open(loadCtx, st, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	prof, err := profile.Open(loadCtx, st, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	s := &Session{
		ID:        id,
		Ballot:    ballotStore,
		Settings:  prefs,
		Profile:   prof,
		storage:   st,
		catalog:   r.catalog,
		clock:     r.clock,
		logger:    logger,
		flows:     r.flows,
		notebooks: make(map[int]*notes.Notebook),
	}
	r.sessions[id] = s
	logger.Info("device session loaded")
	return s, nil
}

// Register records the device's platform. It reports whether the device
// was seen for the first time.
func (r *Registry) Register(ctx context.Context, s *Session, platform string) (models.DeviceInfo, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := r.clock.Now().UTC()
	var info models.DeviceInfo
	found, err := storage.LoadJSON(ctx, s.storage, InfoKey, &info)
	if err != nil {
		s.logger.Warn("Replacing unreadable device info", "error", err)
		found = false
	}
	if !found {
		info = models.DeviceInfo{ID: s.ID, CreatedAt: now}
	}
	info.Platform = platform
	info.LastSeenAt = now

	if err := storage.SaveJSON(ctx, s.storage, InfoKey, info); err != nil {
		return models.DeviceInfo{}, false, fmt.Errorf("failed to save device info: %w", err)
	}
	return info, !found, nil
}

// Info returns the registration metadata and bumps its last-seen time
func (r *Registry) Info(ctx context.Context, s *Session) (models.DeviceInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var info models.DeviceInfo
	found, err := storage.LoadJSON(ctx, s.storage, InfoKey, &info)
	if err != nil {
		return models.DeviceInfo{}, err
	}
	if !found {
		return models.DeviceInfo{}, ErrNotRegistered
	}

	info.LastSeenAt = r.clock.Now().UTC()
	if err := storage.SaveJSON(ctx, s.storage, InfoKey, info); err != nil {
		s.logger.Error("Failed to update last seen", "error", err)
	}
	return info, nil
}
