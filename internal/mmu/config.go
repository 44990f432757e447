package mmu

// Config is the parsed `-f<N> -a<alg> -o<opts>` CLI configuration (§6).
type Config struct {
	NumFrames int
	Algorithm byte

	// Output selectors, each one letter of the `OPFS` subset in `-o`.
	TraceInstructions bool // 'O'
	PerProcessSummary bool // 'P'
	FrameTable        bool // 'F'
	Summary           bool // 'S'

	// Debug selectors, the `xyaf` subset in `-o`. They are parsed and
	// recorded here, but nothing reads them: no debug output is produced.
	DebugEvents  bool // 'x'
	DebugFrames  bool // 'y'
	DebugAging   bool // 'a'
	DebugSummary bool // 'f'
}
