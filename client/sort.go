package client

// SortOptions shapes a SORT invocation. The zero value sorts the whole
// collection numerically, ascending.
type SortOptions struct {
	// By sorts by the values of the keys this pattern expands to instead
	// of by the elements themselves.
	By string

	// Offset/Count limit the result SQL-style. Count is only consulted
	// when Limit is true.
	Limit  bool
	Offset int
	Count  int

	// Get retrieves the values of these patterns instead of the sorted
	// elements.
	Get []string

	// Desc reverses the order.
	Desc bool

	// Alpha compares lexicographically instead of numerically.
	Alpha bool
}

// Sort sorts the list, set, or sorted set at key.
func (c *Client) Sort(key string, options SortOptions) ([]string, error) {
	return replyStrings(c.Do("SORT", sortArgs(key, options, "")...))
}

// SortStore sorts like Sort but stores the result as a list at dstkey and
// returns its length.
func (c *Client) SortStore(key, dstkey string, options SortOptions) (int64, error) {
	return replyInt(c.Do("SORT", sortArgs(key, options, dstkey)...))
}

func sortArgs(key string, options SortOptions, dstkey string) []string {
	args := []string{key}

	if options.By != "" {
		args = append(args, "BY", options.By)
	}

	if options.Limit {
		args = append(args, "LIMIT", itoa(options.Offset), itoa(options.Count))
	}

	for _, pattern := range options.Get {
		args = append(args, "GET", pattern)
	}

	if options.Desc {
		args = append(args, "DESC")
	}

	if options.Alpha {
		args = append(args, "ALPHA")
	}

	if dstkey != "" {
		args = append(args, "STORE", dstkey)
	}

	return args
}
