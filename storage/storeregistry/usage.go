package storeregistry

// Usage gates which kinds of binaries may open a backend. Backends link at
// build time: each registers itself from init(), and a binary enables one by
// importing its package, usually as a blank import.
type Usage uint8

const (
	// UsageCLI admits a backend in short-lived command-line tools.
	UsageCLI Usage = 1 << iota
	// UsageDaemon admits a backend in long-running servers such as
	// oraclereg-storaged.
	UsageDaemon
)

func (u Usage) allows(want Usage) bool { return u&want != 0 }
