package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/luma/skiff/client"
	"github.com/luma/skiff/protocol"
)

var (
	callHost string
	callPort int
)

func init() {
	flags := CallCmd.PersistentFlags()

	flags.StringVarP(&callHost, "host", "a", "localhost", "The host the key/value server is running on")
	flags.IntVarP(&callPort, "port", "p", client.DefaultPort, "The port the key/value server is listening on")
}

var CallCmd = &cobra.Command{
	Use:   "call COMMAND [ARG...]",
	Short: "Send one command to a key/value server and print the reply",
	Long: `Send one command to a key/value server and print the reply.

Usage
	skiff call PING
	skiff call SET greeting hello
	skiff call LRANGE list 0 -1

`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(client.Options{
			Host: callHost,
			Port: callPort,
			Log:  zap.NewNop(),
		})
		defer c.Close()

		reply, err := c.Do(strings.ToUpper(args[0]), args[1:]...)
		if err != nil {
			return err
		}

		fmt.Print(formatReply(reply, ""))
		return nil
	},
}

// formatReply renders a reply the way redis-cli does, one line per
// scalar, with array elements numbered and indented.
func formatReply(r *protocol.Reply, indent string) string {
	if r == nil {
		return indent + "(nil)\n"
	}

	switch r.Kind {
	case protocol.SimpleString:
		return indent + r.Str + "\n"
	case protocol.Error:
		return indent + "(error) " + r.Str + "\n"
	case protocol.Integer:
		return fmt.Sprintf("%s(integer) %d\n", indent, r.Int)
	case protocol.BulkString:
		if r.Nil {
			return indent + "(nil)\n"
		}
		return fmt.Sprintf("%s%q\n", indent, string(r.Bulk))
	case protocol.Array:
		if r.Nil {
			return indent + "(nil)\n"
		}
		if len(r.Elems) == 0 {
			return indent + "(empty list)\n"
		}

		var b strings.Builder
		for i, elem := range r.Elems {
			b.WriteString(fmt.Sprintf("%s%d) ", indent, i+1))
			b.WriteString(strings.TrimPrefix(formatReply(elem, indent+"   "), indent+"   "))
		}
		return b.String()
	}

	return indent + "(unknown)\n"
}
