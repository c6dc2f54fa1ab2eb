package internal

// Version is the fonemas release, overridden at build time with
// -ldflags "-X codeberg.org/snonux/fonemas/internal.Version=...".
var Version = "0.1.0"
