package protocol

// This package implements serialising commands and parsing replies for the
// protocol that Skiff uses to talk to a key/value server (the Redis
// protocol, RESP).
//
// === Requests
//
// Every request is a multi-bulk frame: an array of bulk strings where the
// first element is the command name and the rest are its arguments.
//
//   ```
//     *<argc+1>\r\n
//     $<len>\r\n<command>\r\n
//     ($<len>\r\n<arg>\r\n)*
//   ```
//
// Command names and all text arguments are UTF-8 encoded. This is the one
// place an encoding choice is made; the client is text oriented and does
// not support payloads that don't round-trip through UTF-8.
//
// === Replies
//
// A reply is one of five shapes, distinguished by its leading byte.
//
//   ```
//     +<text>\r\n                        simple string
//     -<text>\r\n                        error
//     :<int>\r\n                         integer
//     $<len>\r\n<bytes>\r\n              bulk string
//     $-1\r\n                            nil bulk string
//     *<count>\r\n<count replies>        array, elements are replies
//     *-1\r\n                            nil array
//   ```
//
// A nil bulk string or nil array is the server's way of saying "no such
// value" (missing key, empty blocking pop). It is distinct from an empty
// bulk string or an empty array and is kept distinct in the Reply model.
//
// Arrays nest: an EXEC reply is an array whose elements are the replies of
// the queued commands, which may themselves be arrays.
//
// === Lines
//
// Lines terminate with \r\n. A bare \r that is not followed by \n is
// ordinary data and is preserved, which keeps the parser tolerant of
// binary-unsafe escaping in legacy inputs.
