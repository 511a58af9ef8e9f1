package integration

import (
	"context"
	"io"
	"testing"
	"time"

	"memcheck/internal/app"
)

func TestInterrupt_RunForever_Exit130(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	done := make(chan int, 1)
	go func() {
		done <- app.RunContext(ctx, []string{
			"--words", "256", "-w", "2", "--iterations", "0",
		}, io.Discard, io.Discard)
	}()

	select {
	case code := <-done:
		if code != 130 {
			t.Fatalf("expected exit 130 on cancel, got %d", code)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run-forever mode ignored cancellation")
	}
}
