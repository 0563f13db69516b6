package rooms

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"stayhub/internal/shared/constants"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// HoldManager places short-lived holds on rooms while a customer walks
// through the booking wizard. A hold covers every night of the stay, so
// two customers racing for the same room on overlapping dates cannot
// both reach checkout.
type HoldManager struct {
	redis *redis.Client
}

func NewHoldManager(redisClient *redis.Client) *HoldManager {
	return &HoldManager{redis: redisClient}
}

// One key per room per night. The script either claims every key or
// none of them.
const luaAtomicRoomHold = `
-- KEYS[1] = hold meta key
-- KEYS[2] = user holds key
-- ARGV[1] = hold_id
-- ARGV[2] = user_id
-- ARGV[3] = ttl_seconds
-- ARGV[4..N] = room-night keys

local meta_key = KEYS[1]
local user_holds_key = KEYS[2]
local hold_id = ARGV[1]
local user_id = ARGV[2]
local ttl = tonumber(ARGV[3])

-- Check every room-night first
for i = 4, #ARGV do
    if redis.call("EXISTS", ARGV[i]) == 1 then
        return {0, ARGV[i]}
    end
end

local created_at = redis.call("TIME")[1]

redis.call("HMSET", meta_key,
    "user_id", user_id,
    "night_count", #ARGV - 3,
    "created_at", created_at
)
redis.call("EXPIRE", meta_key, ttl)

local hold_value = user_id .. ":" .. hold_id
for i = 4, #ARGV do
    redis.call("SETEX", ARGV[i], ttl, hold_value)
    redis.call("SADD", meta_key .. ":nights", ARGV[i])
end
redis.call("EXPIRE", meta_key .. ":nights", ttl)

redis.call("SADD", user_holds_key, hold_id)
redis.call("EXPIRE", user_holds_key, ttl)

return {1, "success"}
`

const luaAtomicRoomRelease = `
-- KEYS[1] = hold meta key
-- KEYS[2] = user holds key
-- ARGV[1] = hold_id

local meta_key = KEYS[1]
local user_holds_key = KEYS[2]
local hold_id = ARGV[1]

if redis.call("EXISTS", meta_key) == 0 then
    return {0, "hold_not_found"}
end

local nights = redis.call("SMEMBERS", meta_key .. ":nights")
for i = 1, #nights do
    redis.call("DEL", nights[i])
end

redis.call("SREM", user_holds_key, hold_id)
redis.call("DEL", meta_key)
redis.call("DEL", meta_key .. ":nights")

return {1, #nights}
`

// HoldRooms atomically holds the given rooms for every night of
// [checkIn, checkOut). Returns the generated hold ID.
func (h *HoldManager) HoldRooms(ctx context.Context, userID string, roomIDs []uuid.UUID, checkIn, checkOut time.Time, ttl time.Duration) (string, error) {
	if h.redis == nil {
		return "", fmt.Errorf("redis client not available")
	}

	holdID := uuid.New().String()

	keys := []string{
		constants.BuildHoldMetaKey(holdID),
		constants.BuildUserHoldsKey(userID),
	}
	args := []interface{}{
		holdID,
		userID,
		strconv.Itoa(int(ttl.Seconds())),
	}

	for _, roomID := range roomIDs {
		for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
			args = append(args, constants.BuildRoomHoldKey(roomID.String(), night.Format("2006-01-02")))
		}
	}

	result, err := h.redis.EvalSha(ctx, luaAtomicRoomHold, keys, args...).Result()
	if err != nil {
		// Script may not be loaded yet
		result, err = h.redis.Eval(ctx, luaAtomicRoomHold, keys, args...).Result()
		if err != nil {
			return "", fmt.Errorf("failed to execute atomic room hold: %w", err)
		}
	}

	resultArray, ok := result.([]interface{})
	if !ok || len(resultArray) != 2 {
		return "", fmt.Errorf("unexpected result format from Lua script")
	}

	success, ok := resultArray[0].(int64)
	if !ok {
		return "", fmt.Errorf("invalid success flag in Lua script result")
	}

	if success == 0 {
		conflictKey, ok := resultArray[1].(string)
		if ok {
			return "", fmt.Errorf("room night already held: %s", conflictKey)
		}
		return "", fmt.Errorf("failed to hold rooms")
	}

	return holdID, nil
}

// ReleaseHold atomically releases a hold and returns the number of
// room-nights freed.
func (h *HoldManager) ReleaseHold(ctx context.Context, userID, holdID string) (int, error) {
	if h.redis == nil {
		return 0, fmt.Errorf("redis client not available")
	}

	keys := []string{
		constants.BuildHoldMetaKey(holdID),
		constants.BuildUserHoldsKey(userID),
	}

	result, err := h.redis.EvalSha(ctx, luaAtomicRoomRelease, keys, holdID).Result()
	if err != nil {
		result, err = h.redis.Eval(ctx, luaAtomicRoomRelease, keys, holdID).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to execute atomic room release: %w", err)
		}
	}

	resultArray, ok := result.([]interface{})
	if !ok || len(resultArray) != 2 {
		return 0, fmt.Errorf("unexpected result format from Lua script")
	}

	success, ok := resultArray[0].(int64)
	if !ok {
		return 0, fmt.Errorf("invalid success flag in Lua script result")
	}

	if success == 0 {
		reason, ok := resultArray[1].(string)
		if ok {
			return 0, fmt.Errorf("failed to release hold: %s", reason)
		}
		return 0, fmt.Errorf("failed to release hold")
	}

	releasedCount, ok := resultArray[1].(int64)
	if !ok {
		return 0, fmt.Errorf("invalid released count in Lua script result")
	}

	return int(releasedCount), nil
}

// PreloadScripts loads the hold scripts into Redis at startup.
func (h *HoldManager) PreloadScripts(ctx context.Context) error {
	if h.redis == nil {
		return fmt.Errorf("redis client not available")
	}

	if _, err := h.redis.ScriptLoad(ctx, luaAtomicRoomHold).Result(); err != nil {
		return fmt.Errorf("failed to load room hold script: %w", err)
	}

	if _, err := h.redis.ScriptLoad(ctx, luaAtomicRoomRelease).Result(); err != nil {
		return fmt.Errorf("failed to load room release script: %w", err)
	}

	return nil
}
