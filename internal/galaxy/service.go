package galaxy

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"

	"starmap-server/internal/shared/config"
	"starmap-server/internal/shared/errors"
	"starmap-server/internal/system"
)

// Notifier pushes progress events to connected clients. The websocket
// hub implements it; a nil-safe no-op is substituted in tests.
type Notifier interface {
	Publish(eventType string, payload interface{})
}

type noopNotifier struct{}

func (noopNotifier) Publish(string, interface{}) {}

type Service struct {
	repo      *Repository
	cache     *SystemCache
	generator *Generator
	notifier  Notifier
	presets   []Preset
	logger    *slog.Logger
}

func NewService(repo *Repository, cache *SystemCache, generator *Generator, notifier Notifier, presets []Preset, logger *slog.Logger) *Service {
	logger.Debug("Initializing galaxy service")

	if notifier == nil {
		notifier = noopNotifier{}
	}

	return &Service{
		repo:      repo,
		cache:     cache,
		generator: generator,
		notifier:  notifier,
		presets:   presets,
		logger:    logger,
	}
}

func (s *Service) Presets() []Preset {
	return s.presets
}

// resolveSize turns a preset key or explicit size into a validated
// system count. Preset sizes obey the same configured bounds as
// explicit sizes.
func (s *Service) resolveSize(preset string, size int) (int, error) {
	cfg := config.GlobalConfig.Galaxy

	if preset != "" {
		for _, p := range s.presets {
			if p.Key == preset {
				if p.Systems < cfg.MinSize || p.Systems > cfg.MaxSize {
					return 0, errors.Validationf("preset %q size %d outside [%d, %d]", p.Key, p.Systems, cfg.MinSize, cfg.MaxSize)
				}
				return p.Systems, nil
			}
		}
		return 0, errors.Validationf("unknown galaxy preset: %s", preset)
	}

	if size == 0 {
		return cfg.DefaultSize, nil
	}
	if size < cfg.MinSize || size > cfg.MaxSize {
		return 0, errors.Validationf("galaxy size must be between %d and %d", cfg.MinSize, cfg.MaxSize)
	}
	return size, nil
}

// CreateSave starts a new game. When seed is nil a random one is drawn;
// everything else about the galaxy follows from the seed, so the save
// row only records seed, size and progress.
func (s *Service) CreateSave(ctx context.Context, commander, name string, seed *int64, preset string, size int) (*Save, error) {
	logger := s.logger.With("component", "galaxy_service", "operation", "create_save", "commander", commander)

	resolvedSize, err := s.resolveSize(preset, size)
	if err != nil {
		return nil, err
	}

	var resolvedSeed int64
	if seed != nil {
		resolvedSeed = *seed
	} else {
		resolvedSeed, err = randomSeed()
		if err != nil {
			logger.Error("Failed to draw random seed", "error", err)
			return nil, fmt.Errorf("failed to draw random seed: %w", err)
		}
	}

	gal := s.generator.Generate(resolvedSeed, resolvedSize)

	save, err := s.repo.CreateSave(ctx, commander, name, resolvedSeed, resolvedSize, gal.StartIndex)
	if err != nil {
		logger.Error("Failed to create save", "error", err)
		return nil, fmt.Errorf("failed to create save: %w", err)
	}

	logger.Info("Save created", "save_id", save.ID, "seed", resolvedSeed, "size", resolvedSize)
	s.notifier.Publish("save.created", save)
	return save, nil
}

func randomSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]))
	if seed < 0 {
		seed = -seed
	}
	return seed, nil
}

// requireSave maps the repository's missing-row result (nil, nil) to a
// typed not-found error.
func requireSave(save *Save, id int) (*Save, error) {
	if save == nil {
		return nil, errors.NotFoundf("save %d not found", id)
	}
	return save, nil
}

// GetSave loads a save owned by commander.
func (s *Service) GetSave(ctx context.Context, commander string, id int) (*Save, error) {
	save, err := s.repo.GetSave(ctx, id)
	if err != nil {
		return nil, err
	}
	if save, err = requireSave(save, id); err != nil {
		return nil, err
	}
	if save.Commander != commander {
		return nil, errors.Forbidden("save belongs to another commander")
	}
	return save, nil
}

func (s *Service) ListSaves(ctx context.Context, commander string) ([]Save, error) {
	return s.repo.ListSavesByCommander(ctx, commander)
}

func (s *Service) DeleteSave(ctx context.Context, commander string, id int) error {
	if _, err := s.GetSave(ctx, commander, id); err != nil {
		return err
	}
	return s.repo.DeleteSave(ctx, id)
}

// Map returns the galaxy layout for a save: system positions only, no
// body detail. Regenerated from the seed on every call.
func (s *Service) Map(ctx context.Context, commander string, saveID int) (*Galaxy, *Save, error) {
	save, err := s.GetSave(ctx, commander, saveID)
	if err != nil {
		return nil, nil, err
	}
	return s.generator.Generate(save.Seed, save.Size), save, nil
}

// Systems generates every system of a galaxy, in index order.
func (s *Service) Systems(gal *Galaxy) []*system.System {
	return s.generator.Systems(gal)
}

// GetSystem returns the fully generated system at index, cached by
// (seed, index). The Discovered flag comes from the save's progress,
// never from the cache entry.
func (s *Service) GetSystem(ctx context.Context, commander string, saveID, index int) (*system.System, error) {
	save, err := s.GetSave(ctx, commander, saveID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= save.Size {
		return nil, errors.Validationf("system index %d out of range", index)
	}

	sys := s.cache.Get(ctx, save.Seed, index)
	if sys == nil {
		gal := s.generator.Generate(save.Seed, save.Size)
		sys = s.generator.SystemAt(gal, index)
		s.cache.Put(ctx, save.Seed, index, sys)
	}

	sys.Discovered = containsSystem(save.Discovered, index)
	return sys, nil
}

func containsSystem(discovered []int64, index int) bool {
	for _, d := range discovered {
		if d == int64(index) {
			return true
		}
	}
	return false
}

// Discover records travel to a system: it must be reachable through an
// active gate from the save's current system. The discovered set only
// ever grows.
func (s *Service) Discover(ctx context.Context, commander string, saveID, index int, network NetworkChecker) (*Save, error) {
	logger := s.logger.With("component", "galaxy_service", "operation", "discover", "save_id", saveID, "system", index)

	save, err := s.GetSave(ctx, commander, saveID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= save.Size {
		return nil, errors.Validationf("system index %d out of range", index)
	}
	if index != save.CurrentSystem && !network.Connected(save.CurrentSystem, index) {
		return nil, errors.Validationf("no warp gate links system %d to system %d", save.CurrentSystem, index)
	}

	discovered := save.Discovered
	if !containsSystem(discovered, index) {
		discovered = append(discovered, int64(index))
	}

	updated, err := s.repo.UpdateProgress(ctx, save.ID, index, discovered)
	if err != nil {
		logger.Error("Failed to update progress", "error", err)
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}
	// The save can be deleted between the ownership check and the update.
	if updated, err = requireSave(updated, save.ID); err != nil {
		return nil, err
	}

	logger.Info("System discovered", "discovered_count", len(updated.Discovered))
	s.notifier.Publish("system.discovered", map[string]interface{}{
		"save_id": updated.ID,
		"system":  index,
	})
	return updated, nil
}

// NetworkChecker is the slice of the warp network the discovery rules
// need.
type NetworkChecker interface {
	Connected(a, b int) bool
}
