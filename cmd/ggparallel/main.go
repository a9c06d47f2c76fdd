// Command ggparallel creates parallel copies of GeoJSON way chains.
//
//	ggparallel offset --in chain.geojson --distance 2 --out copy.geojson
//	ggparallel drag --in chain.geojson --segment 0:0 --pointer 5,2 --preview drag.png
package main

import (
	"fmt"
	"os"

	parallel "github.com/gogpu/gg-parallel"
)

func main() {
	root, st := newRootCommand()
	if err := root.Execute(); err != nil {
		tag := st.cfg.LanguageTag()
		if msg := parallel.Message(tag, err); msg != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", parallel.Title(tag), msg)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps rejected gestures to distinct exit codes.
func exitCode(err error) int {
	switch parallel.Classify(err) {
	case parallel.CodeTopology, parallel.CodeDegenerate:
		return 2
	case parallel.CodeReference, parallel.CodeModifiers:
		return 3
	}
	return 1
}
