// Package gameboy composes cartridge, mmu, cpu, ppu, timer, interrupt,
// joypad and serial into the runnable console described in spec.md §2
// and §5, and drives the outer per-frame pacing loop.
package gameboy

import (
	"os"
	"time"

	"gbcore/internal/addr"
	"gbcore/internal/cartridge"
	"gbcore/internal/cpu"
	"gbcore/internal/interrupt"
	"gbcore/internal/joypad"
	"gbcore/internal/mmu"
	"gbcore/internal/ppu"
	"gbcore/internal/serial"
	"gbcore/internal/timer"
	"gbcore/pkg/log"
)

const (
	// ClockSpeed is the LR35902's nominal clock rate in Hz.
	ClockSpeed = 4194304
	// FrameRate is the Game Boy's refresh rate rounded to whole frames
	// per second; the exact rate is ClockSpeed/4/cyclesPerFrame, about
	// 59.73 Hz.
	FrameRate = 60
	// cyclesPerFrame is the number of M-cycles (ClockSpeed/4) a single
	// 154-scanline frame takes: 70224 T-cycles / 4.
	cyclesPerFrame = 17556
	// FrameDuration is the wall-clock time cyclesPerFrame M-cycles take
	// at ClockSpeed/4, about 16.74 ms.
	FrameDuration = time.Second * cyclesPerFrame / (ClockSpeed / 4)
)

// Console is a single emulated Game Boy: one cartridge plumbed through
// one memory controller, CPU, and PPU.
type Console struct {
	CPU     *cpu.CPU
	MMU     *mmu.MMU
	PPU     *ppu.PPU
	Cart    *cartridge.Cartridge
	IRQ     *interrupt.Controller
	Timer   *timer.Controller
	Joypad  *joypad.Controller
	Serial  *serial.Controller

	log log.Logger

	cycles uint
}

// Config configures a Console via functional options, grounded on the
// teacher's GameBoyOpt pattern.
type Config struct {
	logger      log.Logger
	isColor     bool
	saveSink    cartridge.SaveSink
	serialPeer  serial.Transport
}

// Option configures a Console at construction time.
type Option func(*Config)

// WithLogger attaches a logger; the default is log.Null().
func WithLogger(l log.Logger) Option {
	return func(c *Config) { c.logger = l }
}

// WithColor forces CGB mode regardless of the cartridge header's
// color-mode flag (useful for testing CGB-only features against DMG
// titles).
func WithColor(on bool) Option {
	return func(c *Config) { c.isColor = on }
}

// WithSaveSink wires battery-backed save RAM/RTC persistence.
func WithSaveSink(sink cartridge.SaveSink) Option {
	return func(c *Config) { c.saveSink = sink }
}

// WithSerialPeer attaches an external serial transport.
func WithSerialPeer(t serial.Transport) Option {
	return func(c *Config) { c.serialPeer = t }
}

// New builds a Console from an in-memory ROM image.
func New(rom []byte, opts ...Option) (*Console, error) {
	cfg := &Config{logger: log.Null()}
	for _, opt := range opts {
		opt(cfg)
	}

	cart, err := cartridge.FromBytes(rom, cfg.saveSink)
	if err != nil {
		cfg.logger.Warnf("cartridge load degraded: %v", err)
	}

	isColor := cfg.isColor || cart.Header().ColorMode

	irq := interrupt.New()
	t := timer.New(irq)
	pad := joypad.New(irq)
	ser := serial.New(irq)
	if cfg.serialPeer != nil {
		ser.Attach(cfg.serialPeer)
	}
	video := ppu.New(irq, isColor)
	bus := mmu.New(cart, video, t, irq, pad, ser, isColor)
	// The CPU starts in its post-boot register state at 0x0100, so the
	// boot ROM overlay is unmapped as the boot ROM itself would leave it.
	bus.Write(addr.BootOff, 0x01)
	core := cpu.New(bus, irq)
	core.SetLogger(cfg.logger)

	return &Console{
		CPU: core, MMU: bus, PPU: video, Cart: cart,
		IRQ: irq, Timer: t, Joypad: pad, Serial: ser,
		log: cfg.logger,
	}, nil
}

// Load builds a Console from a ROM file on disk.
func Load(path string, opts ...Option) (*Console, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(data, opts...)
}

// Frame runs the console until one full scanline frame (17556
// M-cycles) has elapsed, advances the cartridge RTC by the matching
// wall-clock duration, and returns the completed framebuffer.
func (c *Console) Frame() ppu.Frame {
	var elapsed uint
	for elapsed < cyclesPerFrame {
		elapsed += uint(c.CPU.Step())
	}
	c.cycles += elapsed
	c.Cart.Tick(FrameDuration)
	return c.PPU.Frame()
}

// Press sets a button's level, the §6 joypad source hook surfaced at
// console scope.
func (c *Console) Press(b joypad.Button, down bool) { c.Joypad.Set(b, down) }

// Close flushes any pending RTC state to the save sink.
func (c *Console) Close() { c.Cart.PersistRTC() }
