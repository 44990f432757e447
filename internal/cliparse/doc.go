// Package cliparse parses the two CLIs' argument grammars from spec.md
// §6. Neither core package touches os.Args or the `-f16 -af -oOPFS`
// concatenated-flag style directly — stdlib `flag` does not model
// concatenated short options or the `R5:4` scheduler-spec grammar, so
// both are hand-rolled here (see DESIGN.md for why no retrieved library
// fits either grammar).
package cliparse
