package domain

import "time"

// Follow is one directed edge of the follow graph. following A→B implies
// nothing about B→A.
type Follow struct {
	FollowerID  int64     `json:"follower_id"`
	FollowingID int64     `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// FollowCounts holds the two aggregate counts shown on a profile.
type FollowCounts struct {
	Followers int64 `json:"follower_count"`
	Following int64 `json:"following_count"`
}

// FollowListEntry is one row of a followers or following listing, annotated
// with whether the viewing user follows that user.
type FollowListEntry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	IsFollowing bool   `json:"is_following"`
}
