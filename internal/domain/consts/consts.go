package consts

import "time"

const (
	DBCtxTimeout      = 2 * time.Second
	StoreCtxTimeout   = 2 * time.Second
	SuccessResetDelay = 3 * time.Second
)

// persisted state keys
const (
	KeyUser  = "user"
	KeyToken = "token"
	KeyCart  = "cart"
)
