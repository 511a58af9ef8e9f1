package version

// Version is stamped into --version output; overridable at link time with
// -ldflags "-X memcheck/internal/version.Version=...".
var Version = "0.2.0"
