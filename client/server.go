package client

// Server administration commands.

// Save synchronously dumps the whole dataset to disk. The server serves no
// other connection while it runs.
func (c *Client) Save() error {
	return replyOK(c.Do("SAVE"))
}

// BgSave forks the server and saves the dataset in the background.
func (c *Client) BgSave() error {
	return replyOK(c.Do("BGSAVE"))
}

// BgRewriteAOF rewrites the append only file in the background, compacting
// it to the minimal command set that rebuilds the dataset.
func (c *Client) BgRewriteAOF() error {
	return replyOK(c.Do("BGREWRITEAOF"))
}

// LastSave returns the unix time of the last successful save.
func (c *Client) LastSave() (int64, error) {
	return replyInt(c.Do("LASTSAVE"))
}

// Shutdown stops all clients, saves the dataset, and quits the server.
func (c *Client) Shutdown() error {
	return replyOK(c.Do("SHUTDOWN"))
}

// Info returns the server's statistics report.
func (c *Client) Info() (string, error) {
	return replyString(c.Do("INFO"))
}

// SlaveOf reconfigures the server as a replica of the given master.
func (c *Client) SlaveOf(host string, port int) error {
	return replyOK(c.Do("SLAVEOF", host, itoa(port)))
}

// Master turns a replica back into a master without discarding its
// dataset.
func (c *Client) Master() error {
	return replyOK(c.Do("SLAVEOF", "no", "one"))
}
