package main

import (
	"fmt"
	"os"

	"github.com/meghashyamc/gametools/audio"
	"github.com/meghashyamc/gametools/config"
	"github.com/meghashyamc/gametools/logger"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	seconds := pflag.Float64P("seconds", "s", cfg.GetCountdownSeconds(), "countdown length in seconds")
	mute := pflag.BoolP("mute", "m", !cfg.GetAudioEnabled(), "do not play the chime on completion")
	pflag.Parse()

	if *seconds <= 0 {
		fmt.Fprintf(os.Stderr, "countdown length must be positive, got %v\n", *seconds)
		os.Exit(2)
	}

	// The terminal is owned by tcell, so logs only go to stderr at warn and above.
	log := logger.New("warn")

	chime := audio.NewChime()
	if !*mute {
		if err := chime.Init(); err != nil {
			// Non-fatal, the countdown runs without sound
			log.Warn("audio initialization failed", "err", err)
		}
	}
	defer chime.Close()

	app, err := newApp(*seconds, chime, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start terminal: %s\n", err)
		os.Exit(1)
	}
	app.run()
}
