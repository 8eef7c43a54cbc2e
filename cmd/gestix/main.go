// Command gestix runs the hand gesture control daemon: camera capture,
// gesture classification, the HTTP API and the system tray.
package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ayusman/gestix/internal/app"
	"github.com/ayusman/gestix/internal/config"
	"github.com/ayusman/gestix/internal/server"
	"github.com/ayusman/gestix/internal/store"
	"github.com/ayusman/gestix/internal/tray"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cameraID int
		addr     string
		dbPath   string
		bindings string
		headless bool
	)

	root := &cobra.Command{
		Use:   "gestix",
		Short: "Hand gesture control daemon",
		Long: `GestiX watches a webcam, classifies hand gestures and exposes the
debounced result to consumers over an HTTP API. Gesture-to-action bindings
can be remapped per deployment through a YAML file or the API.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags override the environment when set.
			if cmd.Flags().Changed("camera") {
				cfg.CameraID = cameraID
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			}
			if cmd.Flags().Changed("bindings") {
				cfg.BindingsFile = bindings
			}

			return run(cfg, headless)
		},
	}

	root.Flags().IntVar(&cameraID, "camera", 0, "camera device ID")
	root.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	root.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	root.Flags().StringVar(&bindings, "bindings", "", "YAML gesture binding file")
	root.Flags().BoolVar(&headless, "headless", false, "run without the system tray")

	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gestix %s\n", version)
		},
	}
}

func run(cfg config.Config, headless bool) error {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	st, err := store.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	a, err := app.New(cfg, st)
	if err != nil {
		return err
	}

	// A missing camera should not take down the API surface; the pipeline
	// just never becomes live.
	if err := a.Start(); err != nil {
		log.Printf("Pipeline not started: %v", err)
	}
	defer a.Close()

	srv := server.New(server.Config{
		StaticDir: findWebDir(),
		App:       a,
	})

	go func() {
		log.Printf("Listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if headless {
		waitForSignal()
		return nil
	}

	runTray(a, cfg.Addr)
	return nil
}

// runTray blocks in the system tray loop, mirroring pipeline state into the
// menu and translating menu clicks into pipeline control.
func runTray(a *app.App, addr string) {
	t := tray.New()

	t.OnToggle(func(enabled bool) {
		if enabled {
			if err := a.Start(); err != nil {
				log.Printf("Failed to start pipeline: %v", err)
			}
		} else {
			a.Stop()
		}
	})
	t.OnSettings(func() {
		if err := openBrowser(settingsURL(addr)); err != nil {
			log.Printf("Failed to open settings: %v", err)
		}
	})
	t.OnQuit(func() {
		a.Stop()
	})

	go func() {
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			label, _ := a.Mailbox().Peek()
			t.SetLastGesture(label.String())
		}
	}()

	t.Run()
}

// settingsURL turns a listen address into a browsable URL; a bare port
// resolves to localhost.
func settingsURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

// openBrowser opens the URL in the default browser.
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

func waitForSignal() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	<-ch
	log.Println("Shutting down")
}

// findWebDir searches for the web directory in common locations.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	for _, p := range []string{"web", "../web", "../../web"} {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			if abs, err := filepath.Abs(p); err == nil {
				return abs
			}
			return p
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, ".gestix", "web")
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}

	return ""
}
