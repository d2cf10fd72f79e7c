package client

import (
	"strconv"

	"github.com/luma/skiff/protocol"
)

// The reply* helpers convert a raw reply into the shape a typed command
// method promises. They all pass errors through and map a queued-mode nil
// reply to the zero value, so command methods work unchanged inside a
// transaction.

func replyInt(r *protocol.Reply, err error) (int64, error) {
	if err != nil || r == nil {
		return 0, err
	}

	return r.Int, nil
}

func replyBool(r *protocol.Reply, err error) (bool, error) {
	n, err := replyInt(r, err)
	return n == 1, err
}

// replyString maps a nil bulk string to ErrNil so "missing" never looks
// like the empty string.
func replyString(r *protocol.Reply, err error) (string, error) {
	if err != nil || r == nil {
		return "", err
	}

	if r.Nil {
		return "", ErrNil
	}

	return r.Text(), nil
}

// replyStrings flattens an array reply into strings. A nil array becomes a
// nil slice; nil elements become empty strings.
func replyStrings(r *protocol.Reply, err error) ([]string, error) {
	if err != nil || r == nil || r.Nil {
		return nil, err
	}

	out := make([]string, len(r.Elems))
	for i, e := range r.Elems {
		switch {
		case e == nil || e.Nil:
			out[i] = ""
		case e.Kind == protocol.Integer:
			out[i] = strconv.FormatInt(e.Int, 10)
		default:
			out[i] = e.Text()
		}
	}

	return out, nil
}

func replyFloat(r *protocol.Reply, err error) (float64, error) {
	s, err := replyString(r, err)
	if err != nil || s == "" {
		return 0, err
	}

	return strconv.ParseFloat(s, 64)
}

func replyOK(r *protocol.Reply, err error) error {
	return err
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
