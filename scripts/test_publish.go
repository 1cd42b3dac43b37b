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

// Публикует RouteImportEvent и ждёт RouteImportedEvent от воркера.
//
//	go run scripts/test_publish.go -file route_info_vibrations.csv

type RouteImportEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	DatasetID string    `json:"dataset_id"`
	File      string    `json:"file"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	file := flag.String("file", "route_info_vibrations.csv", "CSV file name inside DATA_DIR")
	datasetID := flag.String("dataset", "route_info_vibrations", "Dataset ID")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := RouteImportEvent{
		RequestID: uuid.New(),
		DatasetID: *datasetID,
		File:      *file,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Запоминаем хвост стрима ответов, чтобы не читать старые события
	lastID := "$"
	if msgs, err := client.XRevRangeN(ctx, "stream:route:imported", "+", "-", 1).Result(); err == nil && len(msgs) > 0 {
		lastID = msgs[0].ID
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:route:import",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: stream:route:import\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Dataset: %s (%s)\n", event.DatasetID, event.File)

	fmt.Printf("\nWaiting for response in stream:route:imported...\n")

	if lastID == "$" {
		lastID = "0"
	}

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{"stream:route:imported", lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil && err != redis.Nil {
			log.Fatalf("Failed to read responses: %v", err)
		}

		for _, stream := range results {
			for _, msg := range stream.Messages {
				lastID = msg.ID

				dataStr, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}

				var response map[string]interface{}
				if err := json.Unmarshal([]byte(dataStr), &response); err != nil {
					continue
				}

				if response["request_id"] == event.RequestID.String() {
					fmt.Printf("\nResponse received\n")
					pretty, _ := json.MarshalIndent(response, "", "  ")
					fmt.Printf("%s\n", pretty)
					return
				}
			}
		}
	}

	fmt.Println("Timeout waiting for response")
}
