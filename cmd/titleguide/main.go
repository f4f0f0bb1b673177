package main

// #region imports
import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"titleguide/internal/assistant"
	"titleguide/internal/chatbot"
	"titleguide/internal/draft"
	"titleguide/internal/httpserver"
	"titleguide/internal/remote"
	"titleguide/internal/script"
)

// #endregion

// #region main
func main() {
	mode := "serve"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "serve":
		runServe()
	case "chat":
		runChat()
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [serve|chat]\n", os.Args[0])
		os.Exit(2)
	}
}

// #endregion main

// #region serve

func runServe() {
	dbPath := envOr("TITLEGUIDE_DB", "titleguide.db")
	addr := envOr("TITLEGUIDE_ADDR", ":8080")

	store, err := draft.NewStore(dbPath, nil)
	if err != nil {
		log.Fatalf("failed to open draft store: %v", err)
	}
	defer store.Close()

	remoteCfg := remote.DefaultConfig()
	remoteCfg.APIKey = os.Getenv("OPENROUTER_API_KEY")
	if v := os.Getenv("TITLEGUIDE_MODEL"); v != "" {
		remoteCfg.Model = v
	}
	client := remote.NewClient(remoteCfg)
	if !client.Configured() {
		log.Println("[SERVE] OPENROUTER_API_KEY not set; voice parsing and AI help disabled")
	}

	srv := httpserver.New(httpserver.Config{
		Address: addr,
		Drafts:  store,
		Matcher: chatbot.NewMatcher(nil),
		Remote:  client,
		Memory:  assistant.NewMemory(nil),
		Script:  script.NewEngine(nil, nil),
	})

	go func() {
		log.Printf("[SERVE] listening on %s (db: %s)", addr, dbPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[SERVE] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// #endregion serve

// #region chat

// runChat is a terminal loop over the intent catalog, handy for
// trying out trigger phrases without a browser.
func runChat() {
	matcher := chatbot.NewMatcher(nil)

	fmt.Println("Title submission assistant ready.")
	fmt.Println("Ask about evidence, release dates, credits... ('quit' to exit)")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}

		m := matcher.Match(input)
		fmt.Printf("\n%s\n\n", m.Answer)
		fmt.Printf("[%s] confidence=%.2f\n", m.Intent, m.Confidence)
	}
}

// #endregion chat

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
