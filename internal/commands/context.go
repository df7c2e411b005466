package commands

import "context"

type contextKey string

const globalFlagsKey contextKey = "globalFlags"

// GlobalFlags holds global CLI flags.
type GlobalFlags struct {
	ConfigFile  string
	URL         string
	Email       string
	Password    string
	Environment string
	Debug       bool
	NoColor     bool
	Quiet       bool
	Verbose     bool
}

// WithGlobalFlags adds global flags to the context.
func WithGlobalFlags(ctx context.Context, flags GlobalFlags) context.Context {
	return context.WithValue(ctx, globalFlagsKey, flags)
}

// GetGlobalFlags retrieves global flags from context.
func GetGlobalFlags(ctx context.Context) GlobalFlags {
	flags, ok := ctx.Value(globalFlagsKey).(GlobalFlags)
	if !ok {
		return GlobalFlags{}
	}
	return flags
}
