//go:build ignore
package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ananth/nexchat/internal/api"
	"github.com/ananth/nexchat/internal/config"
)

func main() {
	fmt.Println("=== Backend Stream Check ===")
	fmt.Println()

	cfg, _ := config.LoadConfig()
	client, err := api.NewClient(cfg.BackendURL)
	if err != nil {
		fmt.Printf("Client error: %v\n", err)
		return
	}
	defer client.Close()

	fmt.Printf("Backend: %s\n", client.BaseURL())
	fmt.Printf("[%s] Streaming...\n", time.Now().Format("15:04:05"))
	start := time.Now()

	done := make(chan error, 1)
	fragments := 0
	var reply strings.Builder

	go func() {
		done <- client.StreamMessage(context.Background(), "Say OK and nothing else.", func(fragment string) {
			fragments++
			reply.WriteString(fragment)
			if fragments == 1 {
				fmt.Printf("[%s] First fragment after %v\n", time.Now().Format("15:04:05"), time.Since(start))
			}
		})
	}()

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	deadline := time.After(180 * time.Second)

	for {
		select {
		case err := <-done:
			fmt.Printf("[%s] Done in %v (%d fragments)\n", time.Now().Format("15:04:05"), time.Since(start), fragments)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("Reply: %s\n", reply.String())

			if err := client.ClearSession(context.Background()); err != nil {
				fmt.Printf("Clear failed: %v\n", err)
			} else {
				fmt.Println("Session cleared")
			}
			return
		case <-ticker.C:
			fmt.Printf("[%s] Waiting... (%v elapsed)\n", time.Now().Format("15:04:05"), time.Since(start))
		case <-deadline:
			fmt.Println("TIMEOUT!")
			return
		}
	}
}
