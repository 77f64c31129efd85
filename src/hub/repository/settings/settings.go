// Package settings provides durable storage for the hub's record collections.
// Records are caller-supplied JSON and remain opaque to the daemon; the file
// on disk is the single source of truth shared with external editors.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	tally "github.com/uber-go/tally"
	"github.com/whoisryosuke/blender-hub2/src/hub/entity"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/errors"
	hubfs "github.com/whoisryosuke/blender-hub2/src/hub/internal/fs"
	"github.com/whoisryosuke/blender-hub2/src/hub/model"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_configKeySettingsFile = "settings.filePath"
	_defaultSettingsDir    = "blender-hub"
	_defaultSettingsFile   = "settings.json"
	_tempPattern           = "settings-*.json"

	_debounceTimeout = 50 * time.Millisecond
)

// _collectionOrder fixes the acquisition order when every key lock is held.
var _collectionOrder = []entity.CollectionKey{
	entity.CollectionInstallations,
	entity.CollectionProjects,
}

// Repository is a durable store of record collections keyed by fixed
// collection identifiers.
type Repository interface {
	// Get returns the current records of a collection.
	Get(ctx context.Context, key entity.CollectionKey) ([]model.Record, error)
	// Set replaces the full contents of a collection.
	Set(ctx context.Context, key entity.CollectionKey, records []model.Record) error
	// Append adds one record to a collection and returns the updated
	// collection. The read-modify-write sequence is serialized per key, so
	// concurrent appends to the same collection never lose records.
	Append(ctx context.Context, key entity.CollectionKey, record model.Record) ([]model.Record, error)
}

// Params define values to be used by the settings repository.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	FS        hubfs.HubFS
	Stats     tally.Scope
}

type repository struct {
	path   string
	fs     hubfs.HubFS
	logger *zap.SugaredLogger
	stats  tally.Scope

	// keyLocks serialize read-modify-write sequences per collection key.
	keyLocks map[entity.CollectionKey]*sync.Mutex

	// stateMu guards the cached settings and file writes.
	stateMu sync.Mutex
	cached  model.Settings

	watcher       *fsnotify.Watcher
	debounceMu    sync.Mutex
	debounceTimer *time.Timer
	closer        chan bool
}

// New creates a Repository backed by a JSON settings file.
func New(p Params) (Repository, error) {
	r := &repository{
		fs:     p.FS,
		logger: p.Logger,
		stats:  p.Stats,
		keyLocks: map[entity.CollectionKey]*sync.Mutex{
			entity.CollectionInstallations: {},
			entity.CollectionProjects:      {},
		},
		closer: make(chan bool),
	}

	if err := r.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: r.onStart,
		OnStop:  r.onStop,
	})

	return r, nil
}

func (r *repository) processConfig(cfg config.Provider) error {
	if err := cfg.Get(_configKeySettingsFile).Populate(&r.path); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeySettingsFile, err)
	}

	if r.path == "" {
		confDir, err := r.fs.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolving default settings location: %w", err)
		}
		r.path = filepath.Join(confDir, _defaultSettingsDir, _defaultSettingsFile)
	}

	return nil
}

func (r *repository) onStart(ctx context.Context) error {
	dir := filepath.Dir(r.path)
	if err := r.fs.MkdirAll(dir); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	if err := r.reload(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		r.logger.Warnf("Failed to create settings watcher, external edits will not be picked up: %v", err)
		return nil
	}
	// The file is replaced by rename on every write, so the directory is
	// watched rather than the file itself.
	if err := watcher.Add(dir); err != nil {
		r.logger.Warnf("Failed to watch settings directory, external edits will not be picked up: %v", err)
		if closeErr := watcher.Close(); closeErr != nil {
			r.logger.Warnf("Failed to close settings change watcher: %v", closeErr)
		}
		return nil
	}

	r.watcher = watcher
	go r.handleChanges(r.closer)
	return nil
}

func (r *repository) onStop(ctx context.Context) error {
	close(r.closer)
	return nil
}

// Get returns the current records of the given collection.
func (r *repository) Get(ctx context.Context, key entity.CollectionKey) ([]model.Record, error) {
	r.stateMu.Lock()
	defer r.stateMu.Unlock()

	records, err := collection(&r.cached, key)
	if err != nil {
		return nil, err
	}
	out := make([]model.Record, len(*records))
	copy(out, *records)
	return out, nil
}

// Set replaces the full contents of the given collection.
func (r *repository) Set(ctx context.Context, key entity.CollectionKey, records []model.Record) error {
	lock, err := r.keyLock(key)
	if err != nil {
		return err
	}
	lock.Lock()
	defer lock.Unlock()

	r.stateMu.Lock()
	defer r.stateMu.Unlock()

	target, err := collection(&r.cached, key)
	if err != nil {
		return err
	}
	*target = append([]model.Record(nil), records...)
	return r.persist(key)
}

// Append adds one record to the given collection and returns the updated
// collection.
func (r *repository) Append(ctx context.Context, key entity.CollectionKey, record model.Record) ([]model.Record, error) {
	lock, err := r.keyLock(key)
	if err != nil {
		return nil, err
	}
	lock.Lock()
	defer lock.Unlock()

	r.stateMu.Lock()
	defer r.stateMu.Unlock()

	target, err := collection(&r.cached, key)
	if err != nil {
		return nil, err
	}
	*target = append(*target, record)
	if err := r.persist(key); err != nil {
		return nil, err
	}

	out := make([]model.Record, len(*target))
	copy(out, *target)
	return out, nil
}

func (r *repository) keyLock(key entity.CollectionKey) (*sync.Mutex, error) {
	lock, ok := r.keyLocks[key]
	if !ok {
		return nil, &errors.UnknownCollectionError{Collection: string(key)}
	}
	return lock, nil
}

// collection resolves the slice backing a collection key.
func collection(s *model.Settings, key entity.CollectionKey) (*[]model.Record, error) {
	switch key {
	case entity.CollectionInstallations:
		return &s.Installations, nil
	case entity.CollectionProjects:
		return &s.Projects, nil
	default:
		return nil, &errors.UnknownCollectionError{Collection: string(key)}
	}
}

// persist writes the cached settings to disk. The write goes to a temp file
// first and is moved into place by rename, so readers never observe a
// partially written file. Callers must hold stateMu.
func (r *repository) persist(key entity.CollectionKey) error {
	data, err := json.MarshalIndent(&r.cached, "", "  ")
	if err != nil {
		return &errors.StorageWriteError{Collection: string(key), Err: err}
	}

	f, err := r.fs.TempFile(filepath.Dir(r.path), _tempPattern)
	if err != nil {
		return &errors.StorageWriteError{Collection: string(key), Err: err}
	}

	if _, err := f.Write(data); err != nil {
		err = multierr.Combine(err, f.Close(), r.fs.Remove(f.Name()))
		return &errors.StorageWriteError{Collection: string(key), Err: err}
	}
	if err := f.Close(); err != nil {
		err = multierr.Append(err, r.fs.Remove(f.Name()))
		return &errors.StorageWriteError{Collection: string(key), Err: err}
	}
	if err := r.fs.Rename(f.Name(), r.path); err != nil {
		err = multierr.Append(err, r.fs.Remove(f.Name()))
		return &errors.StorageWriteError{Collection: string(key), Err: err}
	}

	r.stats.Counter("settings_writes").Inc(1)
	r.logger.Infow("Settings saved", "file", r.path, "collection", string(key))
	return nil
}

// reload replaces the cached settings with the current file contents.
// A missing file is treated as empty settings.
// Every key lock is taken for the duration of the read, so a reload
// triggered by the repository's own rename cannot replace the cache with a
// snapshot older than a concurrent write.
func (r *repository) reload() error {
	for _, key := range _collectionOrder {
		r.keyLocks[key].Lock()
	}
	defer func() {
		for _, key := range _collectionOrder {
			r.keyLocks[key].Unlock()
		}
	}()

	exists, err := r.fs.FileExists(r.path)
	if err != nil {
		return fmt.Errorf("checking settings file: %w", err)
	}
	if !exists {
		return nil
	}

	data, err := r.fs.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("reading settings file: %w", err)
	}

	var loaded model.Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing settings file %q: %w", r.path, err)
	}

	r.stateMu.Lock()
	r.cached = loaded
	r.stateMu.Unlock()
	r.stats.Counter("settings_reloads").Inc(1)
	return nil
}

// handleDebounce coalesces bursts of file events into a single reload.
func (r *repository) handleDebounce(event fsnotify.Event) {
	if event.Name != r.path {
		return
	}

	r.debounceMu.Lock()
	defer r.debounceMu.Unlock()

	if r.debounceTimer != nil {
		r.debounceTimer.Stop()
	}
	r.debounceTimer = time.AfterFunc(_debounceTimeout, func() {
		r.debounceMu.Lock()
		r.debounceTimer = nil
		r.debounceMu.Unlock()

		if err := r.reload(); err != nil {
			r.logger.Warnf("Failed to reload settings: %v", err)
		}
	})
}

func (r *repository) handleChanges(closer chan bool) {
	for {
		select {
		case event := <-r.watcher.Events:
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			r.handleDebounce(event)

		case err := <-r.watcher.Errors:
			r.logger.Warnf("Failure in settings change watcher: %v", err)
		case <-closer:
			r.debounceMu.Lock()
			if r.debounceTimer != nil {
				r.debounceTimer.Stop()
				r.debounceTimer = nil
			}
			r.debounceMu.Unlock()

			if err := r.watcher.Close(); err != nil {
				r.logger.Warnf("Failed to close settings change watcher: %v", err)
			}
			return
		}
	}
}
