package cache

// PlaytimeCache maps user ids to their total playtime in seconds
type PlaytimeCache interface {
	Get(userID uint64) (int, bool)
	Put(userID uint64, seconds int)
}
