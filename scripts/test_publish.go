// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Публикует событие в stream:listing:score и ждёт результат в stream:listing:scored.
// go run scripts/test_publish.go -listing <uuid>
func main() {
	addr := flag.String("redis", "localhost:6379", "redis address")
	listingID := flag.String("listing", "", "listing id")
	wait := flag.Duration("wait", 60*time.Second, "how long to wait for the result")
	flag.Parse()

	id, err := uuid.Parse(*listingID)
	if err != nil {
		log.Fatalf("invalid -listing: %v", err)
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: *addr})
	defer client.Close()

	payload, _ := json.Marshal(map[string]any{"listing_id": id})
	msgID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:listing:score",
		Values: map[string]interface{}{"data": string(payload)},
	}).Result()
	if err != nil {
		log.Fatalf("publish: %v", err)
	}
	fmt.Printf("Published %s: %s\n", msgID, payload)

	deadline := time.Now().Add(*wait)
	lastID := "$"
	for time.Now().Before(deadline) {
		streams, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{"stream:listing:scored", lastID},
			Block:   5 * time.Second,
		}).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			log.Fatalf("read: %v", err)
		}
		for _, msg := range streams[0].Messages {
			lastID = msg.ID
			data, _ := msg.Values["data"].(string)
			var result map[string]any
			if json.Unmarshal([]byte(data), &result) == nil && result["listing_id"] == id.String() {
				fmt.Printf("Scored: %s\n", data)
				return
			}
		}
	}
	log.Fatalf("no result for %s within %v", id, *wait)
}
