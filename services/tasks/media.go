package tasks

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wayfare/config"
	"wayfare/models"
	"wayfare/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeMediaResolve = "media:resolve"

const mediaResultPrefix = "media:result:"

// MediaTaskPayload carries one activity's pending media plan to the worker.
type MediaTaskPayload struct {
	Key         string          `json:"key"`
	Destination string          `json:"destination"`
	Activity    models.Activity `json:"activity"`
}

// MediaResult is what the worker leaves behind for the UI layer to poll.
type MediaResult struct {
	Photos     []string  `json:"photos"`
	ResolvedAt time.Time `json:"resolvedAt"`
}

// MediaKey derives the deterministic lookup key for one activity's resolved
// media. The position within the day disambiguates activities that repeat a
// title.
func MediaKey(destination, dayLabel string, position int, title string) string {
	h := sha1.Sum([]byte(strings.ToLower(strings.TrimSpace(destination)) + "|" + dayLabel + "|" + strconv.Itoa(position) + "|" + title))
	return hex.EncodeToString(h[:])
}

// EnqueueMediaTasks schedules resolution for every pending media request in
// the itinerary and returns lookup keys for the caller, indexed by
// "<day>|<position>|<title>". Enqueue failures are best-effort; the itinerary
// response never waits on imagery.
func EnqueueMediaTasks(client *asynq.Client, destination string, it *models.Itinerary) map[string]string {
	logger := utils.GetLogger()
	keys := make(map[string]string)

	for _, day := range it.DailyPlans {
		for i, a := range day.Activities {
			if a.Media == nil {
				continue
			}
			key := MediaKey(destination, day.Day, i, a.Title)
			payload, err := json.Marshal(MediaTaskPayload{
				Key:         key,
				Destination: destination,
				Activity:    a,
			})
			if err != nil {
				continue
			}
			task := asynq.NewTask(TypeMediaResolve, payload)
			if _, err := client.Enqueue(task, asynq.MaxRetry(2), asynq.Timeout(time.Minute)); err != nil {
				logger.Warn(fmt.Sprintf("failed to enqueue media task for %q: %v", a.Title, err))
				continue
			}
			keys[day.Day+"|"+strconv.Itoa(i)+"|"+a.Title] = key
		}
	}
	return keys
}

// StoreMediaResult writes the resolved photo URLs under the media key.
func StoreMediaResult(ctx context.Context, key string, photos []string) error {
	b, err := json.Marshal(MediaResult{Photos: photos, ResolvedAt: time.Now()})
	if err != nil {
		return err
	}
	ttl := time.Duration(config.AppConfig.MediaResultTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return utils.GetCacheClient().Set(ctx, mediaResultPrefix+key, b, ttl).Err()
}

// GetMediaResult fetches a resolved media entry; nil means not resolved yet.
func GetMediaResult(ctx context.Context, key string) (*MediaResult, error) {
	data, err := utils.GetCacheClient().Get(ctx, mediaResultPrefix+key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result MediaResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
