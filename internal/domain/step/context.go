package step

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/maxkapur/topgrade/internal/domain/config"
	"github.com/maxkapur/topgrade/internal/domain/platform"
	"github.com/maxkapur/topgrade/internal/domain/sudo"
	"github.com/maxkapur/topgrade/internal/ports"
)

// Context carries run mode, privilege state and configuration into every
// step. It is constructed once per run and not mutated afterwards; the only
// internal state change is the sudo credential cache, which is idempotent.
type Context struct {
	ctx      context.Context
	mode     RunMode
	sudo     *sudo.Sudo
	cfg      *config.Config
	plat     *platform.Platform
	caps     *platform.Capabilities
	hostname string

	probe  ports.CommandRunner
	stream ports.StreamRunner
	logger ports.Logger
	out    io.Writer
	lookup sudo.LookupFunc
}

// Params bundles everything needed to build a Context. Zero fields get
// safe defaults so tests can populate only what they assert on.
type Params struct {
	Ctx          context.Context
	Mode         RunMode
	Sudo         *sudo.Sudo
	Config       *config.Config
	Platform     *platform.Platform
	Capabilities *platform.Capabilities
	Hostname     string

	Probe  ports.CommandRunner
	Stream ports.StreamRunner
	Logger ports.Logger
	Out    io.Writer
	Lookup sudo.LookupFunc
}

// NewContext builds an execution context from params.
func NewContext(p Params) *Context {
	c := &Context{
		ctx:      p.Ctx,
		mode:     p.Mode,
		sudo:     p.Sudo,
		cfg:      p.Config,
		plat:     p.Platform,
		caps:     p.Capabilities,
		hostname: p.Hostname,
		probe:    p.Probe,
		stream:   p.Stream,
		logger:   p.Logger,
		out:      p.Out,
		lookup:   p.Lookup,
	}
	if c.ctx == nil {
		c.ctx = context.Background()
	}
	if c.cfg == nil {
		c.cfg = config.New()
	}
	if c.plat == nil {
		c.plat = platform.Detect()
	}
	if c.caps == nil {
		c.caps = platform.CapabilitiesFor(c.plat)
	}
	if c.logger == nil {
		c.logger = ports.NewNopLogger()
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.lookup == nil {
		c.lookup = exec.LookPath
	}
	return c
}

// Context returns the cancellation context for this run.
func (c *Context) Context() context.Context {
	return c.ctx
}

// Mode returns the run mode.
func (c *Context) Mode() RunMode {
	return c.mode
}

// Sudo returns the elevation provider, nil when none was detected.
func (c *Context) Sudo() *sudo.Sudo {
	return c.sudo
}

// Config returns the read-only configuration view.
func (c *Context) Config() *config.Config {
	return c.cfg
}

// Platform returns the detected platform.
func (c *Context) Platform() *platform.Platform {
	return c.plat
}

// Capabilities returns the applicable step groups.
func (c *Context) Capabilities() *platform.Capabilities {
	return c.caps
}

// Hostname returns the local host name, used to keep remote dispatch from
// recursing into the invoking host.
func (c *Context) Hostname() string {
	return c.hostname
}

// Probe returns the capture runner for cheap checks.
func (c *Context) Probe() ports.CommandRunner {
	return c.probe
}

// Stream returns the interactive process runner.
func (c *Context) Stream() ports.StreamRunner {
	return c.stream
}

// Logger returns the run logger.
func (c *Context) Logger() ports.Logger {
	return c.logger
}

// Out returns the writer for user-facing step output.
func (c *Context) Out() io.Writer {
	return c.out
}

// RequireTool resolves a binary on PATH, or reports the step as not
// applicable. The lookup happens even in simulate mode: a tool that is not
// installed is skipped, not simulated.
func (c *Context) RequireTool(name string) (string, error) {
	path, err := c.lookup(name)
	if err != nil {
		return "", Skipf("%s is not installed", name)
	}
	return path, nil
}

// HasTool reports whether a binary is on PATH.
func (c *Context) HasTool(name string) bool {
	_, err := c.lookup(name)
	return err == nil
}
