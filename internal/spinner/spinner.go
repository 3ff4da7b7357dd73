package spinner

import (
	"fmt"
	"time"

	"github.com/sqlping/sqlping/internal/styles"
)

// Wait animates a block spinner with an elapsed timer until done receives.
func Wait(done chan struct{}) {
	stages := []string{"▉", "▊", "▋", "▌", "▍", "▎", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}
	var passed time.Duration
	for {
		for _, s := range stages {
			select {
			case <-done:
				fmt.Print("\r")
				return
			default:
				fmt.Printf("\r%s %.2fs", s, passed.Seconds())
				passed += 100 * time.Millisecond
				time.Sleep(100 * time.Millisecond)
			}
		}
	}
}

// CircleWait animates a pulsing dot while a connection attempt is in flight.
func CircleWait(done chan struct{}) {
	stages := []string{" ", ".", "o", "O", "@", "*"}
	for {
		for _, s := range stages {
			select {
			case <-done:
				fmt.Print("\r")
				return
			default:
				fmt.Printf("\r%s Connecting...", styles.Success.Render(s))
				time.Sleep(100 * time.Millisecond)
			}
		}
	}
}
