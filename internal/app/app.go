// Package app wires the GestiX detection pipeline to its consumers: it owns
// the camera, detector, classifier, voter, mailbox and resolver, constructed
// once at startup and shared by reference, never through package globals.
package app

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ayusman/gestix/internal/action"
	"github.com/ayusman/gestix/internal/capture"
	"github.com/ayusman/gestix/internal/config"
	"github.com/ayusman/gestix/internal/detector"
	"github.com/ayusman/gestix/internal/gesture"
	"github.com/ayusman/gestix/internal/mailbox"
	"github.com/ayusman/gestix/internal/plugin"
	"github.com/ayusman/gestix/internal/store"
)

// App hosts the producer (detection pipeline) and the consumer read surface.
// The mailbox is the only mutable state shared between the two; everything
// else is owned by exactly one side.
type App struct {
	config     config.Config
	camera     capture.Camera
	detector   detector.Detector
	classifier *gesture.Classifier
	voter      *gesture.Voter
	wave       *gesture.WaveDetector
	mailbox    *mailbox.Mailbox
	store      *store.Store
	plugins    *plugin.Manager
	dispatcher *plugin.Dispatcher

	mu       sync.RWMutex
	resolver *action.Resolver
	started  bool
}

// New creates an App from the given configuration. The store may be nil, in
// which case bindings come from the compiled-in defaults (plus the bindings
// file) and fired actions are not logged.
func New(cfg config.Config, st *store.Store) (*App, error) {
	table, err := config.LoadBindings(cfg.BindingsFile)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:     cfg,
		camera:     capture.NewCamera(cfg.CameraID),
		classifier: gesture.NewClassifier(cfg.Thresholds()),
		voter:      gesture.NewVoter(cfg.VoteFrames),
		wave:       gesture.NewWaveDetector(cfg.WaveWindow, cfg.WaveAmplitude),
		mailbox:    mailbox.New(cfg.Debounce, cfg.Staleness),
		store:      st,
		resolver:   action.NewResolver(table),
	}

	if cfg.PluginDir != "" {
		a.plugins = plugin.NewManager(cfg.PluginDir)
		if err := a.plugins.Discover(); err != nil {
			log.Printf("Plugin discovery failed: %v", err)
		}
		a.dispatcher = plugin.NewDispatcher(a.plugins, nil)
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	if err := a.ReloadBindings(); err != nil {
		return nil, err
	}

	return a, nil
}

// SetCamera replaces the camera implementation. Call before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.camera = c
}

// SetDetector replaces the hand detector implementation. Call before Start.
func (a *App) SetDetector(d detector.Detector) {
	a.detector = d
}

// ReloadBindings rebuilds the resolver from the bindings file plus any
// enabled overrides stored in the database. Safe to call while running.
func (a *App) ReloadBindings() error {
	table, err := config.LoadBindings(a.config.BindingsFile)
	if err != nil {
		return err
	}

	if a.store != nil {
		bindings, err := a.store.Bindings().List()
		if err != nil {
			return err
		}
		for _, b := range bindings {
			if b.Enabled {
				table[gesture.Label(b.Gesture)] = action.Action(b.Action)
			}
		}
	}

	a.mu.Lock()
	a.resolver = action.NewResolver(table)
	a.mu.Unlock()

	return nil
}

// Start opens the camera and launches the producer goroutine. A camera that
// cannot open is fatal to the producer only: the liveness flag drops so the
// consumer sees a pipeline that never became live, and the error is returned
// for logging.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.started {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		a.mailbox.SetRunning(false)
		return err
	}

	a.mailbox.SetRunning(true)
	a.started = true
	go a.runPipeline()

	log.Println("Detection pipeline started")
	return nil
}

// Stop lowers the liveness flag and releases the camera. The producer
// goroutine notices the flag at the top of its next iteration; no
// in-progress external call is interrupted. The detector stays open so the
// pipeline can be restarted.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.started {
		return
	}
	a.started = false

	a.mailbox.SetRunning(false)

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	log.Println("Detection pipeline stopped")
}

// Close stops the pipeline and releases the detector. The App cannot be
// restarted afterwards.
func (a *App) Close() {
	a.Stop()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}
}

// Running reports the shared liveness flag.
func (a *App) Running() bool {
	return a.mailbox.IsRunning()
}

// Gesture returns the current debounced gesture, applying the mailbox's
// consume-on-read and staleness rules. Non-blocking; called at the
// consumer's own cadence.
func (a *App) Gesture() gesture.Label {
	return a.mailbox.Get()
}

// PollAction reads the mailbox once and resolves the result to an action
// token. Edge-triggered fires are appended to the event log when a store is
// configured; level-triggered poses are not logged, since the consumer
// re-reads them every tick for as long as they are held.
func (a *App) PollAction() action.Action {
	g := a.mailbox.Get()

	a.mu.RLock()
	act := a.resolver.Resolve(g)
	a.mu.RUnlock()

	if act != action.NoAction && g.Trait() == gesture.EdgeTriggered {
		if a.store != nil {
			e := &store.Event{
				ID:      uuid.NewString(),
				Gesture: g.String(),
				Action:  string(act),
			}
			if err := a.store.Events().Insert(e); err != nil {
				log.Printf("Failed to record event: %v", err)
			}
		}

		if a.dispatcher != nil {
			// Plugins run off the consumer's tick; their latency must not
			// delay the next poll.
			go a.dispatcher.Dispatch(string(act), g.String())
		}
	}

	return act
}

// Resolver returns the current resolver.
func (a *App) Resolver() *action.Resolver {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.resolver
}

// Mailbox returns the shared gesture mailbox.
func (a *App) Mailbox() *mailbox.Mailbox {
	return a.mailbox
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	return a.detector
}

// Store returns the store, which may be nil.
func (a *App) Store() *store.Store {
	return a.store
}

// Plugins returns the plugin manager, which may be nil when no plugin
// directory is configured.
func (a *App) Plugins() *plugin.Manager {
	return a.plugins
}
