/* main.go
 * The "main" method for running the feed server.
 * Usage: go run main.go -addr=":8080" -db="esports" -cache="cache"
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"esports-feeds/external"
	"esports-feeds/notify"
	"esports-feeds/store"
	"esports-feeds/web"

	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()

	// Flags
	addrPtr := flag.String("addr", ":8080", "Address for the HTTP server to listen on")
	dbPtr := flag.String("db", "esports", "MongoDB database name")
	cachePtr := flag.String("cache", "cache", "Directory for the JSON snapshot fallback cache")

	flag.Parse()

	if err != nil {
		log.Println("No .env file loaded, relying on environment")
	}

	client := external.NewClient(os.Getenv("LIQUIPEDIADB_API_KEY"))

	s, err := store.NewStore(*dbPtr, os.Getenv("MONGO_URI"), *cachePtr, client)
	if err != nil {
		log.Fatalf("failed to initialize store: %v", err)
	}
	defer func() {
		if err = s.Client.Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	// Error notifications are optional; the server runs without them
	if webhookID := os.Getenv("DISCORD_WEBHOOK_ID"); webhookID != "" {
		notifier, err := notify.NewNotifier(webhookID, os.Getenv("DISCORD_WEBHOOK_TOKEN"))
		if err != nil {
			log.Fatalf("failed to initialize notifier: %v", err)
		}
		s.Notifier = notifier
	}

	if err := web.Start(web.Config{Addr: *addrPtr, Store: s}); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
