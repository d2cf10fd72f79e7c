package client

import (
	"strconv"

	"github.com/luma/skiff/protocol"
)

// Sorted set commands.

// ScoredMember pairs a sorted set member with its score, for the
// WithScores range variants.
type ScoredMember struct {
	Member string
	Score  float64
}

// Aggregate selects how ZUnionStore/ZInterStore combine scores.
type Aggregate string

const (
	AggregateSum Aggregate = "SUM"
	AggregateMin Aggregate = "MIN"
	AggregateMax Aggregate = "MAX"
)

// ZAdd adds member with the given score to the sorted set at key, or
// updates its score if already present. Returns true when the member is
// new.
func (c *Client) ZAdd(key string, score float64, member string) (bool, error) {
	return replyBool(c.Do("ZADD", key, ftoa(score), member))
}

// ZRem removes member from the sorted set at key.
func (c *Client) ZRem(key, member string) (bool, error) {
	return replyBool(c.Do("ZREM", key, member))
}

// ZIncrBy adds offset to member's score, treating a missing member as
// score zero, and returns the new score.
func (c *Client) ZIncrBy(key string, offset float64, member string) (float64, error) {
	return replyFloat(c.Do("ZINCRBY", key, ftoa(offset), member))
}

// ZRank returns the zero-based, low-to-high rank of member, or -1 when the
// member is not in the sorted set.
func (c *Client) ZRank(key, member string) (int64, error) {
	return rankReply(c.Do("ZRANK", key, member))
}

// ZRevRank returns the zero-based, high-to-low rank of member, or -1 when
// the member is not in the sorted set.
func (c *Client) ZRevRank(key, member string) (int64, error) {
	return rankReply(c.Do("ZREVRANK", key, member))
}

// ZRange returns the members between the inclusive, possibly negative,
// indexes start and end, ordered by ascending score.
func (c *Client) ZRange(key string, start, end int) ([]string, error) {
	return replyStrings(c.Do("ZRANGE", key, itoa(start), itoa(end)))
}

// ZRangeWithScores is ZRange plus each member's score.
func (c *Client) ZRangeWithScores(key string, start, end int) ([]ScoredMember, error) {
	return scoredMembers(c.Do("ZRANGE", key, itoa(start), itoa(end), "WITHSCORES"))
}

// ZRevRange is ZRange ordered by descending score.
func (c *Client) ZRevRange(key string, start, end int) ([]string, error) {
	return replyStrings(c.Do("ZREVRANGE", key, itoa(start), itoa(end)))
}

// ZRevRangeWithScores is ZRevRange plus each member's score.
func (c *Client) ZRevRangeWithScores(key string, start, end int) ([]ScoredMember, error) {
	return scoredMembers(c.Do("ZREVRANGE", key, itoa(start), itoa(end), "WITHSCORES"))
}

// ZRangeByScore returns the members with scores between min and max
// inclusive, ordered by ascending score.
func (c *Client) ZRangeByScore(key string, min, max float64) ([]string, error) {
	return replyStrings(c.Do("ZRANGEBYSCORE", key, ftoa(min), ftoa(max)))
}

// ZRangeByScoreLimit is ZRangeByScore restricted to count members starting
// at offset.
func (c *Client) ZRangeByScoreLimit(key string, min, max float64, offset, count int) ([]string, error) {
	return replyStrings(c.Do("ZRANGEBYSCORE",
		key, ftoa(min), ftoa(max), "LIMIT", itoa(offset), itoa(count)))
}

// ZRemRangeByRank removes the members ranked between start and end and
// returns how many were removed.
func (c *Client) ZRemRangeByRank(key string, start, end int) (int64, error) {
	return replyInt(c.Do("ZREMRANGEBYRANK", key, itoa(start), itoa(end)))
}

// ZRemRangeByScore removes the members with scores between min and max
// inclusive and returns how many were removed.
func (c *Client) ZRemRangeByScore(key string, min, max float64) (int64, error) {
	return replyInt(c.Do("ZREMRANGEBYSCORE", key, ftoa(min), ftoa(max)))
}

// ZCard returns the cardinality of the sorted set at key.
func (c *Client) ZCard(key string) (int64, error) {
	return replyInt(c.Do("ZCARD", key))
}

// ZScore returns member's score, or ErrNil when member or key are missing.
func (c *Client) ZScore(key, member string) (float64, error) {
	reply, err := c.Do("ZSCORE", key, member)
	if err != nil || reply == nil {
		return 0, err
	}

	if reply.IsNil() {
		return 0, ErrNil
	}

	return strconv.ParseFloat(reply.Text(), 64)
}

// ZUnionStore stores the union of srckeys at dstkey and returns the
// resulting cardinality. weights may be nil; a zero aggregate means SUM.
func (c *Client) ZUnionStore(dstkey string, srckeys []string, weights []float64, aggregate Aggregate) (int64, error) {
	return c.zstore("ZUNIONSTORE", dstkey, srckeys, weights, aggregate)
}

// ZInterStore stores the intersection of srckeys at dstkey and returns the
// resulting cardinality. weights may be nil; a zero aggregate means SUM.
func (c *Client) ZInterStore(dstkey string, srckeys []string, weights []float64, aggregate Aggregate) (int64, error) {
	return c.zstore("ZINTERSTORE", dstkey, srckeys, weights, aggregate)
}

func (c *Client) zstore(cmd, dstkey string, srckeys []string, weights []float64, aggregate Aggregate) (int64, error) {
	if len(srckeys) == 0 {
		return 0, ErrNoArguments
	}

	args := make([]string, 0, len(srckeys)+len(weights)+4)
	args = append(args, dstkey, itoa(len(srckeys)))
	args = append(args, srckeys...)

	if weights != nil {
		args = append(args, "WEIGHTS")
		for _, weight := range weights {
			args = append(args, ftoa(weight))
		}
	}

	if aggregate != "" {
		args = append(args, "AGGREGATE", string(aggregate))
	}

	return replyInt(c.Do(cmd, args...))
}

// rankReply maps the nil reply of a missing member to rank -1.
func rankReply(r *protocol.Reply, err error) (int64, error) {
	if err != nil || r == nil {
		return 0, err
	}

	if r.IsNil() {
		return -1, nil
	}

	return r.Int, nil
}

// scoredMembers folds the flat member1,score1,member2,score2 shape of a
// WITHSCORES reply into pairs.
func scoredMembers(r *protocol.Reply, err error) ([]ScoredMember, error) {
	flat, err := replyStrings(r, err)
	if err != nil || flat == nil {
		return nil, err
	}

	members := make([]ScoredMember, len(flat)/2)
	for i := range members {
		score, err := strconv.ParseFloat(flat[i*2+1], 64)
		if err != nil {
			return nil, err
		}

		members[i] = ScoredMember{Member: flat[i*2], Score: score}
	}

	return members, nil
}
