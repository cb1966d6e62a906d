package domain

import "time"

// Session is the persisted login record. The backing store removes the
// document on its own once ExpireAt elapses (TTL index), so nothing in the
// application polls for expiry.
type Session struct {
	Token        string    `bson:"token" json:"token"`
	AddressChain string    `bson:"addressChain" json:"addressChain"`
	Username     string    `bson:"username" json:"username"`
	UserRole     string    `bson:"userRole" json:"userRole"`
	ExpireAt     time.Time `bson:"expireAt" json:"expireAt"`
}

// SessionTicket is the caller-facing projection of a freshly created session.
// It deliberately carries neither the username nor the address chain.
type SessionTicket struct {
	Token    string    `json:"token"`
	ExpireAt time.Time `json:"expireAt"`
}
