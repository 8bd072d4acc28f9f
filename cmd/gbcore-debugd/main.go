// Command gbcore-debugd runs a Console headlessly and exposes its
// register file and a disassembly of the code at PC over a websocket,
// as the debugger-view shell of SPEC_FULL.md §11. It sends no
// framebuffer and no memory-access events. It is a non-core
// collaborator: the core never knows it's being watched.
package main

import (
	"flag"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"gbcore/internal/cpu"
	"gbcore/internal/gameboy"
	gblog "gbcore/pkg/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// snapshot is the JSON payload sent to a connected client on connect
// and again after each message the client sends: register state plus
// the disassembly of eight instructions starting at PC.
type snapshot struct {
	PC, SP     uint16
	A, F       uint8
	B, C, D, E uint8
	H, L       uint8
	Disasm     []string
}

type server struct {
	console *gameboy.Console
	mu      sync.Mutex
}

func (s *server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("gbcore-debugd: upgrade:", err)
		return
	}
	defer conn.Close()

	for {
		s.mu.Lock()
		snap := s.snapshot()
		s.mu.Unlock()

		if err := conn.WriteJSON(snap); err != nil {
			return
		}
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (s *server) snapshot() snapshot {
	c := s.console.CPU
	pc := c.PC
	var lines []string
	for i := 0; i < 8; i++ {
		text, length := cpu.Disassemble(s.console.MMU.Read, pc)
		lines = append(lines, text)
		pc += length
	}
	return snapshot{
		PC: c.PC, SP: c.SP,
		A: c.A, F: c.F, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		Disasm: lines,
	}
}

// run steps the console continuously, one frame at a time.
func (s *server) run() {
	for {
		s.mu.Lock()
		s.console.Frame()
		s.mu.Unlock()
	}
}

func main() {
	romPath := flag.String("rom", "", "path to a .gb/.gbc ROM image")
	addr := flag.String("addr", ":8090", "listen address")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("gbcore-debugd: -rom is required")
	}

	console, err := gameboy.Load(*romPath, gameboy.WithLogger(gblog.New()))
	if err != nil {
		log.Fatalf("gbcore-debugd: loading rom: %v", err)
	}

	s := &server{console: console}
	go s.run()

	mux := http.NewServeMux()
	mux.HandleFunc("/debug", s.handleSocket)

	log.Printf("gbcore-debugd: listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
