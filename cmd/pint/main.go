package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/pint/app"
	"github.com/lixenwraith/pint/audio"
	"github.com/lixenwraith/pint/terminal"
)

func main() {
	os.Exit(realMain())
}

// realMain returns the process exit code so deferred cleanup runs before exit
func realMain() int {
	cfg := app.LoadConfig()

	flag.IntVar(&cfg.Goal, "goal", cfg.Goal, "Daily water goal in ounces (1-65535)")
	flag.IntVar(&cfg.Step, "step", cfg.Step, "Ounces added per drink (1-65535)")
	flag.BoolVar(&cfg.Unicode, "unicode", cfg.Unicode, "Use eighth-block glyphs for sub-cell gauge precision")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write debug logs to "+logDir+"/"+logFileName)
	audioFlag := flag.Bool("audio", true, "Play sound cues (PINT_AUDIO_ENABLED also applies)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, *audioFlag, terminal.New); err != nil {
		fmt.Fprintf(os.Stderr, "pint: %v\n", err)
		return 1
	}
	return 0
}

// run wires audio, app and terminal together and drives the loop
// A panic is turned into an error after the terminal is restored
func run(cfg app.Config, audioEnabled bool, newTerminal func() (terminal.Terminal, error)) (err error) {
	// Audio is optional, failures leave the app silent
	audioCfg := audio.LoadAudioConfig()
	audioCfg.Enabled = audioCfg.Enabled && audioEnabled
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	a, err := app.New(cfg, sounds)
	if err != nil {
		return err
	}

	term, err := newTerminal()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	// Panic Recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			term.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPINT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			log.Printf("crashed: %v", r)
			err = fmt.Errorf("crashed: %v", r)
		}
	}()

	log.Printf("goal %d, step %d, unicode %v, audio %v", cfg.Goal, cfg.Step, cfg.Unicode, sounds.Enabled())
	return a.Run(term)
}
