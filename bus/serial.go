package bus

import (
	"errors"
	"log"
	"net"
	"strings"
	"time"
)

// Serial port status bits, mirroring a minimal UART: a byte is waiting
// to be read, or the output holding register is free to accept one.
const (
	statusRxReady = 1 << iota
	statusTxReady
)

// ErrSerialDetach is returned by Poll when the controlling connection
// has gone away.
var ErrSerialDetach = errors.New("bus: serial console detached")

// SerialPort is a one-byte-wide memory-mapped UART backed by a TCP
// connection: three consecutive 32-bit registers (data-in, data-out,
// status) at offsets 0, 4, 8 within whatever span Router maps it to. A
// guest program polls the status register's ready bits the way it
// would poll real UART hardware.
type SerialPort struct {
	conn net.Conn
	in   uint32
	out  uint32
	stat uint32
}

// ListenSerial opens a TCP listener and blocks until a console attaches,
// returning the connected port.
func ListenSerial(addr string) (*SerialPort, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	log.Printf("bus: waiting for serial console to attach on %s...", ln.Addr())
	conn, err := ln.Accept()
	if err != nil {
		return nil, err
	}
	return &SerialPort{conn: conn, stat: statusTxReady}, nil
}

// Close closes the underlying connection.
func (s *SerialPort) Close() error { return s.conn.Close() }

// Poll drives the console connection: flushes a pending output byte and
// checks for a newly arrived input byte, each with a short deadline so
// a single Poll call never blocks the CPU loop for long. It returns
// whether either register changed.
func (s *SerialPort) Poll() (bool, error) {
	s.conn.SetDeadline(time.Now().Add(time.Millisecond))
	changed := false

	if s.stat&statusTxReady == 0 {
		var b [1]byte
		b[0] = byte(s.out)
		if _, err := s.conn.Write(b[:]); err != nil {
			if isTimeout(err) {
				return changed, nil
			}
			return changed, errors.Join(ErrSerialDetach, err)
		}
		s.stat |= statusTxReady
		changed = true
	}

	if s.stat&statusRxReady == 0 {
		var b [1]byte
		if _, err := s.conn.Read(b[:]); err != nil {
			if isTimeout(err) {
				return changed, nil
			}
			return changed, errors.Join(ErrSerialDetach, err)
		}
		s.in = uint32(b[0])
		s.stat |= statusRxReady
		changed = true
	}

	return changed, nil
}

func isTimeout(err error) bool {
	return strings.HasSuffix(err.Error(), "i/o timeout")
}

func (s *SerialPort) Read8(addr uint32) uint8  { return uint8(s.Read32(addr)) }
func (s *SerialPort) Read16(addr uint32) uint16 { return uint16(s.Read32(addr)) }

func (s *SerialPort) Read32(addr uint32) uint32 {
	switch addr / 4 {
	case 0:
		s.stat &^= statusRxReady
		return s.in
	case 1:
		return s.out
	case 2:
		return s.stat
	default:
		return 0
	}
}

func (s *SerialPort) Write8(addr uint32, v uint8)   { s.Write32(addr, uint32(v)) }
func (s *SerialPort) Write16(addr uint32, v uint16) { s.Write32(addr, uint32(v)) }

func (s *SerialPort) Write32(addr uint32, v uint32) {
	switch addr / 4 {
	case 1:
		s.out = v
		s.stat &^= statusTxReady
	case 2:
		s.stat = v
	}
}
