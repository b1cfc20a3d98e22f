package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Minimal shape to detect pre-migration records that still embed full
// build objects instead of referencing them by ID.
type loadoutRecord struct {
	SkillBuild   json.RawMessage `json:"skillBuild"`
	SpiritBuild  json.RawMessage `json:"spiritBuild"`
	SkillBuildID string          `json:"skillBuildId"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for legacy loadout records...")

	iter := client.Scan(ctx, 0, "loadout:*", 0).Iterator()

	var legacyKeys []string
	var corruptKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		// Owner index sets live under the same prefix.
		if strings.HasPrefix(key, "loadout:owner:") {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var rec loadoutRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptKeys = append(corruptKeys, key)
			continue
		}

		// Stored records should carry build IDs only. An embedded object
		// under skillBuild/spiritBuild means the record predates the
		// ID-reference storage format.
		if isEmbeddedObject(rec.SkillBuild) || isEmbeddedObject(rec.SpiritBuild) {
			fmt.Printf("✗ Legacy embedded builds in %s\n", key)
			legacyKeys = append(legacyKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys: %d legacy, %d corrupt\n", checkedCount, len(legacyKeys), len(corruptKeys))

	if len(legacyKeys) == 0 && len(corruptKeys) == 0 {
		fmt.Println("No legacy or corrupt loadouts found!")
		return
	}

	for _, key := range legacyKeys {
		fmt.Printf("  legacy:  %s\n", key)
	}
	for _, key := range corruptKeys {
		fmt.Printf("  corrupt: %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE the corrupt entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete! Legacy records were reported only; re-save them through the API to migrate.")
}

// isEmbeddedObject reports whether the raw field holds a JSON object.
func isEmbeddedObject(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "{")
}
