package client

// Set commands.

// SAdd adds member to the set at key. Returns false if it was already a
// member.
func (c *Client) SAdd(key, member string) (bool, error) {
	return replyBool(c.Do("SADD", key, member))
}

// SRem removes member from the set at key.
func (c *Client) SRem(key, member string) (bool, error) {
	return replyBool(c.Do("SREM", key, member))
}

// SPop removes and returns a random member of the set at key.
func (c *Client) SPop(key string) (string, error) {
	return replyString(c.Do("SPOP", key))
}

// SMove atomically moves member from the set at srckey to the set at
// dstkey.
func (c *Client) SMove(srckey, dstkey, member string) (bool, error) {
	return replyBool(c.Do("SMOVE", srckey, dstkey, member))
}

// SCard returns the cardinality of the set at key.
func (c *Client) SCard(key string) (int64, error) {
	return replyInt(c.Do("SCARD", key))
}

// SIsMember tests whether member is in the set at key.
func (c *Client) SIsMember(key, member string) (bool, error) {
	return replyBool(c.Do("SISMEMBER", key, member))
}

// SInter returns the intersection of the given sets.
func (c *Client) SInter(keys ...string) ([]string, error) {
	if len(keys) == 0 {
		return nil, ErrNoArguments
	}

	return replyStrings(c.Do("SINTER", keys...))
}

// SInterStore stores the intersection of the given sets at dstkey.
func (c *Client) SInterStore(dstkey string, keys ...string) error {
	if len(keys) == 0 {
		return ErrNoArguments
	}

	return replyOK(c.Do("SINTERSTORE", append([]string{dstkey}, keys...)...))
}

// SUnion returns the union of the given sets.
func (c *Client) SUnion(keys ...string) ([]string, error) {
	if len(keys) == 0 {
		return nil, ErrNoArguments
	}

	return replyStrings(c.Do("SUNION", keys...))
}

// SUnionStore stores the union of the given sets at dstkey.
func (c *Client) SUnionStore(dstkey string, keys ...string) error {
	if len(keys) == 0 {
		return ErrNoArguments
	}

	return replyOK(c.Do("SUNIONSTORE", append([]string{dstkey}, keys...)...))
}

// SDiff returns the difference between the first set and the rest.
func (c *Client) SDiff(keys ...string) ([]string, error) {
	if len(keys) == 0 {
		return nil, ErrNoArguments
	}

	return replyStrings(c.Do("SDIFF", keys...))
}

// SDiffStore stores the difference between the first set and the rest at
// dstkey.
func (c *Client) SDiffStore(dstkey string, keys ...string) error {
	if len(keys) == 0 {
		return ErrNoArguments
	}

	return replyOK(c.Do("SDIFFSTORE", append([]string{dstkey}, keys...)...))
}

// SMembers returns every member of the set at key.
func (c *Client) SMembers(key string) ([]string, error) {
	return replyStrings(c.Do("SMEMBERS", key))
}

// SRandMember returns a random member of the set at key without removing
// it.
func (c *Client) SRandMember(key string) (string, error) {
	return replyString(c.Do("SRANDMEMBER", key))
}
