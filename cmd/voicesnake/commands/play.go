package commands

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/battlesnakeio/voicesnake/audio"
	"github.com/battlesnakeio/voicesnake/audio/microphone"
	"github.com/battlesnakeio/voicesnake/config"
	"github.com/battlesnakeio/voicesnake/recognizer"
	"github.com/battlesnakeio/voicesnake/recognizer/vosk"
	"github.com/battlesnakeio/voicesnake/render"
	"github.com/battlesnakeio/voicesnake/render/window"
	"github.com/battlesnakeio/voicesnake/rules"
	"github.com/battlesnakeio/voicesnake/voice"
	"github.com/battlesnakeio/voicesnake/worker"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	deviceIndex = config.DeviceIndex
	modelPath   string
	wavPath     string
	surfaceName = "window"
	tickRate    = config.TickRate
	seed        uint64
	grace       = config.ShutdownGrace
	debug       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays a game, say up, down, left or right to steer",
	RunE: func(*cobra.Command, []string) error {
		return play()
	},
}

func init() {
	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)
}

func addPlayFlags(c *cobra.Command) {
	c.Flags().IntVar(&deviceIndex, "device", deviceIndex, "audio input device index, see the devices command; negative uses the default input")
	c.Flags().StringVar(&modelPath, "model", modelPath, "recognizer model directory (default \"model\" next to the binary)")
	c.Flags().StringVar(&wavPath, "wav", wavPath, "replay a 16 kHz mono wav file instead of listening to the microphone")
	c.Flags().StringVar(&surfaceName, "surface", surfaceName, "where to draw the game: window or terminal")
	c.Flags().DurationVar(&tickRate, "tick", tickRate, "time between snake moves")
	c.Flags().Uint64Var(&seed, "seed", seed, "food placement seed (default random)")
	c.Flags().DurationVar(&grace, "grace", grace, "how long voice control gets to shut down once the game is over")
	c.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	c.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
	c.Flags().BoolVar(&debug, "debug", debug, "verbose logging")
}

func play() error {
	if debug {
		log.SetLevel(log.DebugLevel)
	}
	vosk.SetVerbose(debug)
	prometheus()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	surface, err := newSurface(surfaceName)
	if err != nil {
		return err
	}
	defer surface.Close()

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	game := rules.NewGame(config.GridWidth, config.GridHeight, seed)
	heading := voice.NewHeading(game.Heading)

	listener := &voice.Listener{
		Source:  newSource(),
		Open:    openRecognizer,
		Heading: heading,
	}

	voiceCtx, stopVoice := context.WithCancel(ctx)
	defer stopVoice()
	voiceDone := make(chan struct{})
	go func() {
		defer close(voiceDone)
		if err := listener.Listen(voiceCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("voice control stopped")
			if v, ok := surface.(voiceIndicator); ok {
				v.VoiceStopped()
			}
		}
	}()

	runner := &worker.Runner{
		Game:     game,
		Heading:  heading,
		Surface:  surface,
		TickRate: tickRate,
	}
	_, err = runner.Run(ctx)

	stopVoice()
	if !waitFor(voiceDone, grace) {
		log.WithField("grace", grace).Warn("voice control did not stop in time, abandoning it")
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "game loop failed")
	}
	return nil
}

func newSource() audio.Source {
	if wavPath != "" {
		return audio.NewFileSource(afero.NewOsFs(), wavPath)
	}
	return microphone.New(deviceIndex)
}

func openRecognizer() (recognizer.Recognizer, error) {
	path, err := recognizer.ModelPath(afero.NewOsFs(), modelPath)
	if err != nil {
		return nil, err
	}
	log.WithField("model", path).Info("loading recognizer model")
	rec, err := vosk.New(path, config.SampleRate)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func newSurface(name string) (render.Surface, error) {
	switch name {
	case "window":
		w, err := window.New(config.WindowWidth, config.WindowHeight, config.CellSize, config.WindowTitle)
		if err != nil {
			return nil, err
		}
		return w, nil
	case "terminal":
		t, err := render.NewTerminal()
		if err != nil {
			return nil, err
		}
		return holdLogs(t, os.Stderr), nil
	default:
		return nil, errors.Errorf("unknown surface %q, use window or terminal", name)
	}
}

// voiceIndicator is a surface that can show voice control has stopped.
type voiceIndicator interface {
	VoiceStopped()
}

// quietTerminal holds back log lines while the board owns the screen and
// writes them out once the terminal is restored.
type quietTerminal struct {
	render.Surface
	logs bytes.Buffer
	out  io.Writer
}

func holdLogs(s render.Surface, out io.Writer) *quietTerminal {
	q := &quietTerminal{Surface: s, out: out}
	log.SetOutput(&q.logs)
	return q
}

func (q *quietTerminal) VoiceStopped() {
	if v, ok := q.Surface.(voiceIndicator); ok {
		v.VoiceStopped()
	}
}

func (q *quietTerminal) Close() error {
	err := q.Surface.Close()
	log.SetOutput(q.out)
	if _, werr := q.logs.WriteTo(q.out); werr != nil && err == nil {
		err = errors.Wrap(werr, "unable to write held back logs")
	}
	return err
}

// waitFor reports whether done closed within d.
func waitFor(done <-chan struct{}, d time.Duration) bool {
	select {
	case <-done:
		return true
	case <-time.After(d):
		return false
	}
}
