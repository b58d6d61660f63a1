package cmd

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// spinner provides a simple text-based progress indicator for the long
// Gemini call.
type spinner struct {
	message string
	quit    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
	active  bool
}

func newSpinner(message string) (s *spinner) {
	s = &spinner{
		message: message,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	return s
}

func (s *spinner) start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go func() {
		frames := `|/-\`
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()

		fmt.Printf("%s ", s.message)
		for i := 0; ; i++ {
			select {
			case <-s.quit:
				// Clear the line before handing the terminal back
				fmt.Printf("\r%s\r", strings.Repeat(" ", len(s.message)+2))
				close(s.done)
				return
			case <-ticker.C:
				fmt.Printf("\r%s %c", s.message, frames[i%len(frames)])
			}
		}
	}()
}

func (s *spinner) stopSpinner() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.mu.Unlock()

	close(s.quit)
	<-s.done
}
