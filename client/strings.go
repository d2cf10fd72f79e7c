package client

// String commands.

// Get returns the value of key, or ErrNil if the key does not exist.
func (c *Client) Get(key string) (string, error) {
	return replyString(c.Do("GET", key))
}

// Set sets key to value.
func (c *Client) Set(key, value string) error {
	return replyOK(c.Do("SET", key, value))
}

// GetSet atomically sets key to value and returns the old value.
func (c *Client) GetSet(key, value string) (string, error) {
	return replyString(c.Do("GETSET", key, value))
}

// MGet returns the values of the given keys. Missing keys yield empty
// strings; the operation itself never fails on them.
func (c *Client) MGet(keys ...string) ([]string, error) {
	if len(keys) == 0 {
		return nil, ErrNoArguments
	}

	return replyStrings(c.Do("MGET", keys...))
}

// SetNX sets key to value only if key does not exist yet.
func (c *Client) SetNX(key, value string) (bool, error) {
	return replyBool(c.Do("SETNX", key, value))
}

// SetEX atomically sets key to value with a timeout in seconds.
func (c *Client) SetEX(key, value string, seconds int) error {
	return replyOK(c.Do("SETEX", key, itoa(seconds), value))
}

// MSet sets each key to its paired value.
func (c *Client) MSet(keysAndValues ...string) error {
	if err := checkPairs(keysAndValues); err != nil {
		return err
	}

	return replyOK(c.Do("MSET", keysAndValues...))
}

// MSetNX sets each key to its paired value only if none of the keys exist.
func (c *Client) MSetNX(keysAndValues ...string) (bool, error) {
	if err := checkPairs(keysAndValues); err != nil {
		return false, err
	}

	return replyBool(c.Do("MSETNX", keysAndValues...))
}

// Incr increments the integer value of key by one and returns the result.
func (c *Client) Incr(key string) (int64, error) {
	return replyInt(c.Do("INCR", key))
}

// IncrBy increments the integer value of key by offset.
func (c *Client) IncrBy(key string, offset int64) (int64, error) {
	if offset == 1 {
		return c.Incr(key)
	}

	return replyInt(c.Do("INCRBY", key, itoa(int(offset))))
}

// Decr decrements the integer value of key by one and returns the result.
func (c *Client) Decr(key string) (int64, error) {
	return replyInt(c.Do("DECR", key))
}

// DecrBy decrements the integer value of key by offset.
func (c *Client) DecrBy(key string, offset int64) (int64, error) {
	if offset == 1 {
		return c.Decr(key)
	}

	return replyInt(c.Do("DECRBY", key, itoa(int(offset))))
}

// Append appends value to key's value and returns the new length.
func (c *Client) Append(key, value string) (int64, error) {
	return replyInt(c.Do("APPEND", key, value))
}

// Substr returns the substring of key's value between the inclusive,
// possibly negative, indexes start and end.
func (c *Client) Substr(key string, start, end int) (string, error) {
	return replyString(c.Do("SUBSTR", key, itoa(start), itoa(end)))
}

func checkPairs(keysAndValues []string) error {
	if len(keysAndValues) < 2 {
		return ErrNoArguments
	}

	if len(keysAndValues)%2 == 1 {
		return ErrUnpairedArguments
	}

	return nil
}
