package utils

// APIVersion prefixes every versioned route.
const APIVersion = "/v1.0"

// SelectionCachePrefix is the prefix of selection session keys in Redis.
const SelectionCachePrefix = "selection:"

// UserIDHeader carries the id of the requesting user.
const UserIDHeader = "X-User-ID"
