// Package serial implements the SB/SC registers (FF01/FF02) described in
// spec.md §4 and §6. Per spec.md §1's explicit non-goal, actual byte
// transfer to a peer is out of scope beyond this register-level stub:
// a transfer always completes against either an attached Transport or,
// absent one, an open line that shifts in all-1 bits.
package serial

import "gbcore/internal/interrupt"

// Transport is the §6 serial link hook: a half-duplex byte exchange.
type Transport interface {
	Read() (b uint8, ok bool)
	Write(b uint8) (ok bool)
}

const transferCyclesPerBit = 128 // 8192 Hz internal clock, in M-cycles

// Controller is the serial port state machine.
type Controller struct {
	data    uint8 // SB
	control uint8 // SC, bits 7 (start) and 0 (internal clock) are live

	transferring bool
	bitsLeft     uint8
	cycleCounter uint16

	transport Transport
	irq       *interrupt.Controller
}

// New returns a Controller wired to raise SERIAL interrupts on irq.
func New(irq *interrupt.Controller) *Controller {
	return &Controller{irq: irq}
}

// Attach wires an external peer; nil detaches it, reverting to the
// open-line stub.
func (c *Controller) Attach(t Transport) { c.transport = t }

// ReadSB returns the SB register.
func (c *Controller) ReadSB() uint8 { return c.data }

// WriteSB sets the SB register.
func (c *Controller) WriteSB(v uint8) { c.data = v }

// ReadSC returns the SC register; unused bits read back as 1.
func (c *Controller) ReadSC() uint8 { return c.control | 0x7E }

// WriteSC sets the SC register and, if it requests an internally-clocked
// transfer, arms the shift sequence.
func (c *Controller) WriteSC(v uint8) {
	c.control = v
	if v&0x80 != 0 && v&0x01 != 0 && !c.transferring {
		c.transferring = true
		c.bitsLeft = 8
		c.cycleCounter = 0
	}
}

// Tick advances the serial shift clock by one M-cycle.
func (c *Controller) Tick() {
	if !c.transferring {
		return
	}
	c.cycleCounter++
	if c.cycleCounter < transferCyclesPerBit {
		return
	}
	c.cycleCounter = 0

	outBit := c.data&0x80 != 0
	var inBit bool
	if c.transport != nil {
		c.transport.Write(boolToByte(outBit))
		if b, ok := c.transport.Read(); ok {
			inBit = b != 0
		} else {
			inBit = true
		}
	} else {
		inBit = true // open line reads as 1
	}

	c.data = c.data<<1 | boolToByte(inBit)
	c.bitsLeft--
	if c.bitsLeft == 0 {
		c.transferring = false
		c.control &^= 0x80
		c.irq.Request(flagSerial)
	}
}

const flagSerial uint8 = 1 << 3

func boolToByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
