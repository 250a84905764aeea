package slang

// Version is the interpreter release version.
const Version = "0.1.0"

// BuildDate is stamped by the build via -ldflags; "unknown" otherwise.
var BuildDate = "unknown"
