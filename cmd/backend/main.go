package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aman1chaudhary/agrocast-dashboard/internal/server"
)

func main() {
	addr := getenvDefault("ACD_ADDR", ":8080")

	build := server.BuildInfo{
		Version: getenvDefault("ACD_VERSION", "dev"),
		Commit:  getenvDefault("ACD_COMMIT", "unknown"),
	}

	// Document store
	mongoURL := getenvDefault("ACD_MONGO_URL", "")
	dbName := getenvDefault("ACD_DB_NAME", "")
	usersCollection := getenvDefault("ACD_USERS_COLLECTION", "")
	if mongoURL == "" || dbName == "" || usersCollection == "" {
		log.Printf("service=backend msg=%q", "missing ACD_MONGO_URL, ACD_DB_NAME or ACD_USERS_COLLECTION")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := server.OpenStore(ctx, mongoURL, dbName, usersCollection)
	cancel()
	if err != nil {
		log.Printf("service=backend msg=%q err=%v", "mongo_connect_failed", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close(context.Background()) }()

	// Media store
	media, err := server.NewMediaStore()
	if err != nil {
		log.Printf("service=backend msg=%q err=%v", "media_connect_failed", err)
		os.Exit(1)
	}

	srv := server.New(server.Config{
		Addr:      addr,
		Build:     build,
		Store:     store,
		Media:     media,
		StaticDir: getenvDefault("ACD_STATIC_DIR", "./build"),
	})

	// Start the HTTP server in a background goroutine so we can
	// listen for OS signals while the server runs.
	errCh := make(chan error, 1)
	go func() {
		log.Printf("service=backend msg=%q addr=%s version=%s commit=%s",
			"starting", addr, build.Version, build.Commit)
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("service=backend msg=%q signal=%s", "shutting_down", sig.String())
		// Give the server 5 seconds to finish in-flight requests.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("service=backend msg=%q err=%v", "shutdown_error", err)
			os.Exit(1)
		}
		log.Printf("service=backend msg=%q", "shutdown_complete")
	case err := <-errCh:
		if err != nil {
			log.Printf("service=backend msg=%q err=%v", "server_error", err)
			os.Exit(1)
		}
	}
}

// getenvDefault reads an environment variable and returns a default value if not set.
func getenvDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
