// Package profile records runtime profiles of a CLI run.
//
// Register the hidden --cpu-profile, --heap-profile, --block-profile and
// --mutex-profile flags with [Config.RegisterFlags], then wrap the run:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	p := cfg.NewProfiler()
//	err := p.Start()
//	// ...
//	err = p.Stop()
//
// The block and mutex profiles show how long workers wait on each other
// when many files are rendered concurrently.
package profile
