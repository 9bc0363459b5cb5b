package game_constants

import "time"

// Room defaults, used when the creator leaves a setting out
const DEFAULT_MAX_PLAYERS = 6
const DEFAULT_SMALL_BLIND = 5
const DEFAULT_BIG_BLIND = 10
const DEFAULT_STARTING_CHIPS = 1000

const ROOM_CODE_LENGTH = 6

// bcrypt cost for user and room passwords
const PASSWORD_COST = 12

const TOKEN_TTL = 24 * time.Hour

// Snapshots cached in Redis expire after this long without a write
const SNAPSHOT_TTL = 24 * time.Hour

// Socket.io events
const (
	EVENT_JOIN_ROOM    = "join_room"
	EVENT_LEAVE_ROOM   = "leave_room"
	EVENT_ROOM_UPDATED = "room_updated"
	EVENT_HAND_RESULT  = "hand_result"
	EVENT_ERROR        = "error"
)
