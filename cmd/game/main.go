package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spark/internal/application/game"
	"github.com/younwookim/spark/internal/application/replay"
	"github.com/younwookim/spark/internal/application/scene/playing"
	"github.com/younwookim/spark/internal/application/session"
	"github.com/younwookim/spark/internal/application/system"
	"github.com/younwookim/spark/internal/infrastructure/config"
	"github.com/younwookim/spark/internal/infrastructure/watch"
)

func main() {
	// Parse command line flags
	levelFlag := flag.String("level", "demo", "Level to play (levels/<name>.json)")
	configFlag := flag.String("config", "", "Config directory on disk (default: embedded configs)")
	watchFlag := flag.Bool("watch", false, "Reload physics.json when it changes (needs -config)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headless and print the result")
	flag.Parse()

	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		res, err := replayFile(cfg, loader, *replayFlag)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Println(res)
		return
	}

	levels, err := system.LoadLevel(context.Background(), loader, *levelFlag)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	sess, err := session.New(cfg, levels)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	var opts []playing.Option
	if *recordFlag != "" {
		opts = append(opts, playing.WithRecording(*recordFlag))
	}
	if *watchFlag {
		if *configFlag == "" {
			log.Fatalf("-watch needs -config")
		}
		w, err := watch.NewWatcher(*configFlag)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *configFlag, err)
		}
		defer func() { _ = w.Close() }()

		reload := make(chan *config.PhysicsConfig, 1)
		go forwardReloads(w.Events, w.Errors, loader, reload)
		opts = append(opts, playing.WithReload(reload))
		log.Printf("Watching %s", *configFlag)
	}

	display := cfg.Physics.Display
	g := game.New(playing.New(cfg, *levelFlag, sess, opts...),
		display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	scale := max(display.Scale, 1)
	ebiten.SetWindowSize(display.ScreenWidth*scale, display.ScreenHeight*scale)
	ebiten.SetWindowTitle("Spark")
	ebiten.SetTPS(display.Framerate)

	// Run game; a cleared stage ends it with ebiten.Termination
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// newLoader reads configs from dir, or from the embedded copy when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// forwardReloads reloads physics.json for every change reported on events
// and hands the result to the scene. Only the newest config is kept when
// the scene has not picked up the previous one yet. Other files need a
// restart. It returns once events is closed.
func forwardReloads(events <-chan string, errs <-chan error, loader *config.Loader, out chan *config.PhysicsConfig) {
	for {
		select {
		case path, ok := <-events:
			if !ok {
				return
			}
			if filepath.Base(path) != "physics.json" {
				log.Printf("%s changed, restart to apply", path)
				continue
			}
			cfg, err := loader.LoadPhysics()
			if err != nil {
				log.Printf("Reload failed: %v", err)
				continue
			}
			select {
			case <-out:
			default:
			}
			out <- cfg
			log.Printf("Reloaded %s", path)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Printf("Watch error: %v", err)
		}
	}
}

// replayFile runs the recording at path on the level it was recorded on
func replayFile(cfg *config.GameConfig, loader *config.Loader, path string) (ReplayResult, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return ReplayResult{}, err
	}
	replayer := replay.NewReplayer(*data)

	levels, err := system.LoadLevel(context.Background(), loader, replayer.Level())
	if err != nil {
		return ReplayResult{}, err
	}
	sess, err := session.New(cfg, levels)
	if err != nil {
		return ReplayResult{}, err
	}

	log.Printf("Replaying %s: %d frames on %s", path, replayer.TotalFrames(), replayer.Level())
	return RunReplay(sess, replayer), nil
}
