package cpu

import (
	"gbcore/internal/interrupt"
	"gbcore/pkg/log"
)

// mode tracks HALT/STOP/EI-delay states the way the base Step loop
// needs to branch on, mirroring the teacher's mode machine.
type mode uint8

const (
	modeNormal mode = iota
	modeHalt
	modeHaltBug
	modeStop
	modeEnableIME // EI was executed; IME takes effect after the next instruction
)

// Bus is the memory-mapped interface the CPU drives: a single M-cycle
// Tick, byte Read/Write, and the CGB speed-switch hook. internal/mmu.MMU
// satisfies this.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
	Tick()
	ArmedSpeedSwitch() bool
}

// CPU executes the Sharp LR35902 instruction set against a Bus.
type CPU struct {
	Registers
	SP, PC uint16

	mode mode
	irq  *interrupt.Controller
	bus  Bus

	halted bool

	stepCycles int // M-cycles ticked during the current Step call

	log           log.Logger
	illegalLogged map[uint8]bool // illegal opcodes already warned about
}

// New returns a CPU in its post-boot-ROM register state (spec.md §3).
func New(bus Bus, irq *interrupt.Controller) *CPU {
	c := &CPU{bus: bus, irq: irq, log: log.Null(), illegalLogged: make(map[uint8]bool)}
	c.SetAF(0x01B0)
	c.SetBC(0x0013)
	c.SetDE(0x00D8)
	c.SetHL(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
	return c
}

// SetLogger attaches a Logger used to warn (once per distinct opcode)
// when an illegal opcode is encountered; the default is log.Null().
func (c *CPU) SetLogger(l log.Logger) { c.log = l.With("cpu") }

// Step executes exactly one instruction (or one HALT/STOP-idle
// M-cycle) and services a pending interrupt, returning the number of
// M-cycles consumed.
func (c *CPU) Step() int {
	c.stepCycles = 0

	switch c.mode {
	case modeNormal:
		c.execute(c.fetch())
	case modeHalt, modeStop:
		c.tick()
		if c.irq.HasPending() {
			c.mode = modeNormal
		}
	case modeEnableIME:
		c.irq.IME = true
		c.mode = modeNormal
		c.execute(c.fetch())
	case modeHaltBug:
		// the HALT bug: PC fails to advance past the next opcode, so
		// it is fetched and executed twice
		op := c.fetch()
		c.PC--
		c.mode = modeNormal
		c.execute(op)
	}

	if c.irq.IME && c.irq.HasPending() {
		c.dispatchInterrupt()
	}
	return c.stepCycles
}

// tick advances every bus-side component by one M-cycle.
func (c *CPU) tick() {
	c.bus.Tick()
	c.stepCycles++
}

// fetch reads the opcode at PC, ticking once, and advances PC.
func (c *CPU) fetch() uint8 {
	v := c.bus.Read(c.PC)
	c.tick()
	c.PC++
	return v
}

// readOperand behaves like fetch; named separately for readability at
// call sites, matching the teacher's readInstruction/readOperand split.
func (c *CPU) readOperand() uint8 { return c.fetch() }

func (c *CPU) readWord() uint16 {
	lo := c.readOperand()
	hi := c.readOperand()
	return bits16(hi, lo)
}

func bits16(hi, lo uint8) uint16 { return uint16(hi)<<8 | uint16(lo) }

func (c *CPU) readMem(addr uint16) uint8 {
	v := c.bus.Read(addr)
	c.tick()
	return v
}

func (c *CPU) writeMem(addr uint16, v uint8) {
	c.bus.Write(addr, v)
	c.tick()
}

func (c *CPU) push(v uint16) {
	c.SP--
	c.writeMem(c.SP, uint8(v>>8))
	c.SP--
	c.writeMem(c.SP, uint8(v))
}

func (c *CPU) pop() uint16 {
	lo := c.readMem(c.SP)
	c.SP++
	hi := c.readMem(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// dispatchInterrupt implements spec.md §4.3's interrupt-service
// sequence: two idle M-cycles, push PC, jump to vector, clear IME.
func (c *CPU) dispatchInterrupt() {
	c.tick()
	c.tick()

	vector, flag, ok := c.irq.Next()
	if !ok {
		return
	}
	c.irq.Clear(flag)
	c.irq.IME = false

	c.push(c.PC)
	c.PC = vector
	c.tick()
}

// Halt is invoked by the HALT opcode handler. Per spec.md's HALT-bug
// supplement: if IME is clear but an interrupt is already pending, the
// next opcode byte is fetched twice instead of actually halting.
func (c *CPU) Halt() {
	if !c.irq.IME && c.irq.HasPending() {
		c.mode = modeHaltBug
		return
	}
	c.mode = modeHalt
}

// Stop is invoked by the STOP opcode handler. On CGB hardware with an
// armed KEY1 switch, STOP performs the double-speed transition and
// returns at once (SPEC_FULL.md's CGB supplement); otherwise the CPU
// idles in STOP mode, like HALT, until an interrupt is pending.
func (c *CPU) Stop() {
	c.readOperand() // STOP's mandatory (ignored) operand byte
	if c.bus.ArmedSpeedSwitch() {
		return
	}
	c.mode = modeStop
}

// EnableIMEDelayed implements EI: IME takes effect after the
// instruction following EI, not immediately.
func (c *CPU) EnableIMEDelayed() { c.mode = modeEnableIME }

// DisableIME implements DI.
func (c *CPU) DisableIME() { c.irq.IME = false }
