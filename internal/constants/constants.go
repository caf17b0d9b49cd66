package constants

import "time"

// ContextKeyUserID is the gin context key carrying the authenticated user's ID.
const ContextKeyUserID = "user_id"

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = 24 * time.Hour
