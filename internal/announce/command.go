package announce

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Command speaks through an external text-to-speech program such as espeak
// or say. Each announcement interrupts the one still playing.
type Command struct {
	name   string
	args   []string
	logger zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCommand parses a command line like "espeak -s 140". The text to speak
// is appended as the final argument. An empty line yields nil.
func NewCommand(line string, logger zerolog.Logger) *Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	return &Command{
		name:   fields[0],
		args:   fields[1:],
		logger: logger.With().Str("component", "announce").Logger(),
	}
}

func (c *Command) Announce(text string) {
	if c == nil || text == "" {
		return
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	args := append(append([]string{}, c.args...), text)
	cmd := exec.CommandContext(ctx, c.name, args...)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()
		if err := cmd.Run(); err != nil && ctx.Err() == nil {
			c.logger.Debug().Err(err).Str("command", c.name).Msg("speech command failed")
		}
	}()
}

// Close stops any utterance in progress and waits for it to exit.
func (c *Command) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()
	c.wg.Wait()
}
