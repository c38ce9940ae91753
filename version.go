package nabeelscript

// Version is the interpreter release. BuildDate may be overridden at link time
// (-ldflags "-X github.com/Nabeelgit/NabeelScript.BuildDate=...").
const Version = "0.4.0"

var BuildDate = "unknown"
