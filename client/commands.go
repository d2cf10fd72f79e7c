package client

// Generic, key space, and connection commands. Each method is a one-line
// mapping from a typed call onto a command name and argument list; the
// protocol work all happens in Conn.Do.

// Auth authenticates against a password protected server. Must be the
// first command on such a server; a no-op on a password free one.
func (c *Client) Auth(password string) error {
	return replyOK(c.Do("AUTH", password))
}

// Ping returns "PONG" from a live server.
func (c *Client) Ping() (string, error) {
	return replyString(c.Do("PING"))
}

// SelectDB selects the database with the given zero-based index. Every new
// connection starts on database 0.
func (c *Client) SelectDB(index int) error {
	return replyOK(c.Do("SELECT", itoa(index)))
}

// Exists tests whether key exists. A key holding an empty string exists.
func (c *Client) Exists(key string) (bool, error) {
	return replyBool(c.Do("EXISTS", key))
}

// Del removes the given keys and returns how many of them existed.
// Deleting zero keys is a caller error, not sent to the wire.
func (c *Client) Del(keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, ErrNoArguments
	}

	return replyInt(c.Do("DEL", keys...))
}

// Type returns "none", "string", "list", "set", "zset", or "hash".
func (c *Client) Type(key string) (string, error) {
	return replyString(c.Do("TYPE", key))
}

// Keys returns all keys matching the glob-style pattern. A full key space
// scan; meant for debugging, not hot paths.
func (c *Client) Keys(pattern string) ([]string, error) {
	return replyStrings(c.Do("KEYS", pattern))
}

// RandomKey returns a randomly selected key, or ErrNil on an empty
// database.
func (c *Client) RandomKey() (string, error) {
	return replyString(c.Do("RANDOMKEY"))
}

// Rename renames oldkey to newkey, overwriting an existing newkey.
func (c *Client) Rename(oldkey, newkey string) error {
	return replyOK(c.Do("RENAME", oldkey, newkey))
}

// RenameNX renames oldkey to newkey unless newkey already exists.
func (c *Client) RenameNX(oldkey, newkey string) (bool, error) {
	return replyBool(c.Do("RENAMENX", oldkey, newkey))
}

// DBSize returns the number of keys in the selected database.
func (c *Client) DBSize() (int64, error) {
	return replyInt(c.Do("DBSIZE"))
}

// Expire sets a timeout in seconds on key.
func (c *Client) Expire(key string, seconds int) (bool, error) {
	return replyBool(c.Do("EXPIRE", key, itoa(seconds)))
}

// ExpireAt sets an absolute unix-time timeout on key.
func (c *Client) ExpireAt(key string, unixtime int64) (bool, error) {
	return replyBool(c.Do("EXPIREAT", key, itoa(int(unixtime))))
}

// TTL returns the remaining time to live of a volatile key in seconds, or
// -1 when the key has no expire or does not exist.
func (c *Client) TTL(key string) (int64, error) {
	return replyInt(c.Do("TTL", key))
}

// Move moves key to the given database index. Returns false if the target
// key already existed or the source key did not.
func (c *Client) Move(key string, dbindex int) (bool, error) {
	return replyBool(c.Do("MOVE", key, itoa(dbindex)))
}

// FlushDB deletes every key of the selected database.
func (c *Client) FlushDB() error {
	return replyOK(c.Do("FLUSHDB"))
}

// FlushAll deletes every key of every database.
func (c *Client) FlushAll() error {
	return replyOK(c.Do("FLUSHALL"))
}
