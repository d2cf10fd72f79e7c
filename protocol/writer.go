package protocol

// WriteCommand serialises a command name and its arguments as one
// multi-bulk frame of bulk strings and flushes it to the stream. The
// command name is the first element, every argument follows as its own
// bulk frame.
func WriteCommand(f *Framer, cmd string, args ...[]byte) error {
	if err := f.WriteArrayHeader(len(args) + 1); err != nil {
		return err
	}

	if err := f.WriteBulk('$', []byte(cmd)); err != nil {
		return err
	}

	for _, arg := range args {
		if err := f.WriteBulk('$', arg); err != nil {
			return err
		}
	}

	return f.Flush()
}

// StringArgs converts text arguments into the UTF-8 byte strings the wire
// wants. This is the sole place the encoding choice matters.
func StringArgs(ss ...string) [][]byte {
	args := make([][]byte, len(ss))
	for i, s := range ss {
		args[i] = []byte(s)
	}

	return args
}
