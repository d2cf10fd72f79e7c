package client

// List commands.

// RPush appends value to the tail of the list at key, creating the list
// if needed.
func (c *Client) RPush(key, value string) error {
	return replyOK(c.Do("RPUSH", key, value))
}

// LPush prepends value to the head of the list at key, creating the list
// if needed.
func (c *Client) LPush(key, value string) error {
	return replyOK(c.Do("LPUSH", key, value))
}

// LLen returns the length of the list at key, zero for a missing key.
func (c *Client) LLen(key string) (int64, error) {
	return replyInt(c.Do("LLEN", key))
}

// LRange returns the elements of the list at key between the inclusive,
// possibly negative, indexes start and end.
func (c *Client) LRange(key string, start, end int) ([]string, error) {
	return replyStrings(c.Do("LRANGE", key, itoa(start), itoa(end)))
}

// LTrim trims the list at key so only the given index range remains.
func (c *Client) LTrim(key string, start, end int) error {
	return replyOK(c.Do("LTRIM", key, itoa(start), itoa(end)))
}

// LIndex returns the element at index, counting from the tail when index
// is negative.
func (c *Client) LIndex(key string, index int) (string, error) {
	return replyString(c.Do("LINDEX", key, itoa(index)))
}

// LSet replaces the element at index. Out of range indexes are an error.
func (c *Client) LSet(key string, index int, value string) error {
	return replyOK(c.Do("LSET", key, itoa(index), value))
}

// LRem removes the first count occurrences of value, from the tail when
// count is negative, all of them when count is zero. Returns how many were
// removed.
func (c *Client) LRem(key string, count int, value string) (int64, error) {
	return replyInt(c.Do("LREM", key, itoa(count), value))
}

// LPop atomically removes and returns the head of the list, or ErrNil on a
// missing or empty list.
func (c *Client) LPop(key string) (string, error) {
	return replyString(c.Do("LPOP", key))
}

// RPop atomically removes and returns the tail of the list, or ErrNil on a
// missing or empty list.
func (c *Client) RPop(key string) (string, error) {
	return replyString(c.Do("RPOP", key))
}

// BLPop is the blocking LPop over multiple lists. It blocks the calling
// goroutine for up to seconds (forever when zero) until one of the lists
// has an element; the timeout is enforced by the server, not here. The
// reply is a two element key/value pair, nil on timeout.
func (c *Client) BLPop(seconds int, keys ...string) ([]string, error) {
	if len(keys) == 0 {
		return nil, ErrNoArguments
	}

	return replyStrings(c.Do("BLPOP", append(keys, itoa(seconds))...))
}

// BRPop is the blocking RPop over multiple lists; see BLPop.
func (c *Client) BRPop(seconds int, keys ...string) ([]string, error) {
	if len(keys) == 0 {
		return nil, ErrNoArguments
	}

	return replyStrings(c.Do("BRPOP", append(keys, itoa(seconds))...))
}

// RPopLPush atomically pops the tail of srckey and pushes it onto the head
// of dstkey, returning the element. ErrNil on a missing or empty source.
func (c *Client) RPopLPush(srckey, dstkey string) (string, error) {
	return replyString(c.Do("RPOPLPUSH", srckey, dstkey))
}
