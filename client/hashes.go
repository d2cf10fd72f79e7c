package client

// Hash commands.

// HGet returns the value of field in the hash at key, or ErrNil when the
// field or key are missing.
func (c *Client) HGet(key, field string) (string, error) {
	return replyString(c.Do("HGET", key, field))
}

// HSet sets field to value in the hash at key, creating the hash if
// needed. Returns true when the field is new.
func (c *Client) HSet(key, field, value string) (bool, error) {
	return replyBool(c.Do("HSET", key, field, value))
}

// HSetNX sets field to value only if the field does not exist yet.
func (c *Client) HSetNX(key, field, value string) (bool, error) {
	return replyBool(c.Do("HSETNX", key, field, value))
}

// HMSet sets each field to its paired value in the hash at key.
func (c *Client) HMSet(key string, fieldsAndValues ...string) error {
	if err := checkPairs(fieldsAndValues); err != nil {
		return err
	}

	return replyOK(c.Do("HMSET", append([]string{key}, fieldsAndValues...)...))
}

// HMSetMap is HMSet taking the fields as a map.
func (c *Client) HMSetMap(key string, fields map[string]string) error {
	fieldsAndValues := make([]string, 0, len(fields)*2)
	for field, value := range fields {
		fieldsAndValues = append(fieldsAndValues, field, value)
	}

	return c.HMSet(key, fieldsAndValues...)
}

// HMGet returns the values of the given fields, empty strings for missing
// ones.
func (c *Client) HMGet(key string, fields ...string) ([]string, error) {
	if len(fields) == 0 {
		return nil, ErrNoArguments
	}

	return replyStrings(c.Do("HMGET", append([]string{key}, fields...)...))
}

// HIncrBy adds offset to the integer value of field and returns the
// result.
func (c *Client) HIncrBy(key, field string, offset int64) (int64, error) {
	return replyInt(c.Do("HINCRBY", key, field, itoa(int(offset))))
}

// HExists tests whether field exists in the hash at key.
func (c *Client) HExists(key, field string) (bool, error) {
	return replyBool(c.Do("HEXISTS", key, field))
}

// HDel removes field from the hash at key.
func (c *Client) HDel(key, field string) (bool, error) {
	return replyBool(c.Do("HDEL", key, field))
}

// HLen returns the number of fields in the hash at key, zero for a
// missing key.
func (c *Client) HLen(key string) (int64, error) {
	return replyInt(c.Do("HLEN", key))
}

// HKeys returns every field name of the hash at key.
func (c *Client) HKeys(key string) ([]string, error) {
	return replyStrings(c.Do("HKEYS", key))
}

// HVals returns every value of the hash at key.
func (c *Client) HVals(key string) ([]string, error) {
	return replyStrings(c.Do("HVALS", key))
}

// HGetAll returns the hash at key flattened as field1, value1, field2,
// value2, ...
func (c *Client) HGetAll(key string) ([]string, error) {
	return replyStrings(c.Do("HGETALL", key))
}

// HGetAllMap is HGetAll folded into a map.
func (c *Client) HGetAllMap(key string) (map[string]string, error) {
	fieldsAndValues, err := c.HGetAll(key)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(fieldsAndValues)/2)
	for i := 0; i+1 < len(fieldsAndValues); i += 2 {
		fields[fieldsAndValues[i]] = fieldsAndValues[i+1]
	}

	return fields, nil
}
